package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "lintfix.dev/pkg/lintfix/internal/model"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name      string
		workspace m.Path
		filePath  string
		want      m.Path
		wantErr   bool
	}{
		{name: "absolute inside workspace", workspace: "/github/workspace", filePath: "/github/workspace/src/a.ts", want: "src/a.ts"},
		{name: "workspace with trailing slash", workspace: "/github/workspace/", filePath: "/github/workspace/a.ts", want: "a.ts"},
		{name: "relative", workspace: "/github/workspace", filePath: "src/a.ts", want: "src/a.ts"},
		{name: "dot prefix", workspace: "/github/workspace", filePath: "./src/a.ts", want: "src/a.ts"},
		{name: "redundant segments", workspace: "/w", filePath: "/w/src/../lib//b.js", want: "lib/b.js"},
		{name: "outside workspace", workspace: "/github/workspace", filePath: "/etc/passwd", wantErr: true},
		{name: "relative escape", workspace: "/w", filePath: "../secret.ts", wantErr: true},
		{name: "workspace itself", workspace: "/w", filePath: "/w", wantErr: true},
		{name: "absolute without workspace", workspace: "", filePath: "/w/a.ts", wantErr: true},
		{name: "empty", workspace: "/w", filePath: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePath(tt.workspace, tt.filePath)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePath_OutsideWorkspaceError(t *testing.T) {
	_, err := NormalizePath("/w", "/other/a.ts")
	assert.ErrorIs(t, err, errOutsideWorkspace)
}
