package adapter

import (
	"context"
	"fmt"
	"net/http"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "lintfix.dev/pkg/lintfix/internal/model"
)

func testPR() m.PullRequestContext {
	return m.PullRequestContext{Owner: "octo", Repo: "app", Number: 7, HeadRef: "feature"}
}

func TestGitHubChangeLister_DrainsAllPages(t *testing.T) {
	client, mux, baseURL := newTestGitHub(t)

	mux.HandleFunc("/repos/octo/app/pulls/7/files", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))

		switch r.URL.Query().Get("page") {
		case "1", "":
			w.Header().Set("Link", fmt.Sprintf(`<%s/repos/octo/app/pulls/7/files?page=2&per_page=100>; rel="next"`, baseURL))
			fmt.Fprint(w, `[{"filename":"a.ts","status":"modified"},{"filename":"b.png","status":"added"}]`)
		case "2":
			fmt.Fprint(w, `[{"filename":"old.js","status":"removed"},{"filename":"c.tsx","status":"renamed"}]`)
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	})

	files, err := NewGitHubChangeLister(client).ListChangedFiles(context.Background(), testPR())
	require.NoError(t, err)

	assert.Equal(t, []m.ChangedFile{
		{Path: "a.ts", Status: m.StatusModified},
		{Path: "b.png", Status: m.StatusAdded},
		{Path: "old.js", Status: m.StatusRemoved},
		{Path: "c.tsx", Status: m.StatusRenamed},
	}, files)
}

func TestGitHubChangeLister_APIError(t *testing.T) {
	client, mux, _ := newTestGitHub(t)

	mux.HandleFunc("/repos/octo/app/pulls/7/files", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"Server Error"}`, http.StatusInternalServerError)
	})

	_, err := NewGitHubChangeLister(client).ListChangedFiles(context.Background(), testPR())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "octo/app#7")
}

func TestParseNameStatus(t *testing.T) {
	output := "M\tsrc/a.ts\nA\tsrc/b.js\nD\tsrc/gone.ts\nR087\tsrc/old.tsx\tsrc/new.tsx\nC100\tsrc/x.js\tsrc/y.js\nT\tlink.js\n\n"

	files, err := ParseNameStatus(output)
	require.NoError(t, err)

	assert.Equal(t, []m.ChangedFile{
		{Path: "src/a.ts", Status: m.StatusModified},
		{Path: "src/b.js", Status: m.StatusAdded},
		{Path: "src/gone.ts", Status: m.StatusRemoved},
		{Path: "src/new.tsx", Status: m.StatusRenamed},
		{Path: "src/y.js", Status: m.StatusCopied},
		{Path: "link.js", Status: m.StatusChanged},
	}, files)
}

func TestParseNameStatus_QuotedPaths(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   m.ChangedFile
	}{
		{"non-ascii", "M\t\"src/caf\\303\\251.ts\"\n", m.ChangedFile{Path: "src/café.ts", Status: m.StatusModified}},
		{"rename to non-ascii", "R100\tsrc/old.ts\t\"src/\\346\\226\\260.ts\"\n", m.ChangedFile{Path: "src/新.ts", Status: m.StatusRenamed}},
		{"escaped quote", "A\t\"src/say \\\"hi\\\".js\"\n", m.ChangedFile{Path: `src/say "hi".js`, Status: m.StatusAdded}},
		{"unquoted non-ascii", "M\tsrc/café.ts\n", m.ChangedFile{Path: "src/café.ts", Status: m.StatusModified}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := ParseNameStatus(tt.output)
			require.NoError(t, err)
			require.Len(t, files, 1)
			assert.Equal(t, tt.want, files[0])
			assert.True(t, files[0].Path.HasSourceExtension())
		})
	}
}

func TestParseNameStatus_Errors(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{"missing path", "M\n"},
		{"unknown status", "X\tfile.js\n"},
		{"bad quoting", "M\t\"src/\\q.js\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNameStatus(tt.output)
			assert.Error(t, err)
		})
	}
}

func TestParseNameStatus_Empty(t *testing.T) {
	files, err := ParseNameStatus("")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestGitChangeLister_RequiresSHAs(t *testing.T) {
	_, err := NewGitChangeLister(m.Path(t.TempDir())).ListChangedFiles(context.Background(), testPR())
	assert.Error(t, err)
}

func TestGitChangeLister_NotARepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	pr := testPR()
	pr.BaseSHA = "0000000000000000000000000000000000000000"
	pr.HeadSHA = "1111111111111111111111111111111111111111"

	_, err := NewGitChangeLister(m.Path(t.TempDir())).ListChangedFiles(context.Background(), pr)
	assert.Error(t, err)
}
