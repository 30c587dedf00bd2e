package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "lintfix.dev/pkg/lintfix/internal/model"
)

func newTestUI() (*SimpleUI, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return NewSimpleUI(cmd, false), out, errOut
}

func strPtr(s string) *string {
	return &s
}

func TestSimpleUI_DisplayCandidates(t *testing.T) {
	tests := []struct {
		name         string
		candidates   []m.Path
		wantContains []string
	}{
		{"empty", nil, []string{"No changed source files"}},
		{"files", []m.Path{"a.ts", "src/b.jsx"}, []string{"Linting 2 changed file(s)", "  a.ts", "  src/b.jsx"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, out, _ := newTestUI()
			ui.DisplayCandidates(context.Background(), tt.candidates)

			for _, want := range tt.wantContains {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestSimpleUI_DisplayFindings_Stylish(t *testing.T) {
	ui, out, _ := newTestUI()

	findings := []m.LintFinding{
		{
			FilePath: "/work/src/a.ts",
			Messages: []m.LintMessage{
				{RuleID: "no-unused-vars", Severity: 2, Message: "'x' is assigned a value but never used.", Line: 3, Column: 7},
				{RuleID: "semi", Severity: 1, Message: "Missing semicolon.", Line: 10, Column: 2},
			},
			ErrorCount:          1,
			WarningCount:        1,
			FixableWarningCount: 1,
		},
		{FilePath: "/work/src/clean.ts"},
	}

	require.NoError(t, ui.DisplayFindings(context.Background(), findings))

	got := out.String()
	assert.Contains(t, got, "/work/src/a.ts\n")
	assert.NotContains(t, got, "clean.ts")
	assert.Contains(t, got, "3:7")
	assert.Contains(t, got, "'x' is assigned a value but never used")
	assert.NotContains(t, got, "never used.")
	assert.Contains(t, got, "no-unused-vars")
	assert.Contains(t, got, "10:2")
	assert.Contains(t, got, "warning")
	assert.Contains(t, got, "✖ 2 problems (1 error, 1 warning)")
	assert.Contains(t, got, "0 errors and 1 warning potentially fixable with the `--fix` option.")
}

func TestSimpleUI_DisplayFindings_Clean(t *testing.T) {
	ui, out, _ := newTestUI()

	findings := []m.LintFinding{{FilePath: "a.ts", Output: strPtr("fixed")}}

	require.NoError(t, ui.DisplayFindings(context.Background(), findings))
	assert.Empty(t, out.String())
}

func TestSimpleUI_DisplayFindings_CancelledContext(t *testing.T) {
	ui, out, _ := newTestUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ui.DisplayFindings(ctx, []m.LintFinding{{FilePath: "a.ts", ErrorCount: 1}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestSimpleUI_DisplayLintFailure(t *testing.T) {
	ui, out, errOut := newTestUI()

	run := m.LintRun{Invoked: true, Output: "Oops! Something went wrong", Diagnostics: "Cannot find module 'eslint'", ExitCode: 2}
	ui.DisplayLintFailure(context.Background(), run, errors.New("parse lint output"))

	assert.Empty(t, out.String())
	got := errOut.String()
	assert.Contains(t, got, "parse lint output")
	assert.Contains(t, got, "exit code 2")
	assert.Contains(t, got, "Oops! Something went wrong")
	assert.Contains(t, got, "Cannot find module 'eslint'")
}

func TestSimpleUI_DisplayCommitResults(t *testing.T) {
	ui, out, _ := newTestUI()

	results := []m.CommitResult{
		{Path: "src/a.ts", Outcome: m.Committed, CommitSHA: "c0ffee1234567", Diff: m.DiffStat{Added: 2, Deleted: 1}},
		{Path: "src/b.ts", Outcome: m.SkippedWriteConflict, Reason: "branch moved"},
		{Path: "src/c.ts", Outcome: m.SkippedNoOutput},
	}

	require.NoError(t, ui.DisplayCommitResults(context.Background(), results))

	got := out.String()
	assert.Contains(t, got, "src/a.ts")
	assert.Contains(t, got, "committed")
	assert.Contains(t, got, "c0ffee1")
	assert.NotContains(t, got, "c0ffee1234567")
	assert.Contains(t, got, "+2 -1 ~0")
	assert.Contains(t, got, "skipped-write-conflict")
	assert.Contains(t, got, "branch moved")
	assert.Contains(t, got, "skipped-no-output")
	assert.Contains(t, strings.ToLower(got), "1 committed")
}

func TestSimpleUI_DisplayCommitResults_Empty(t *testing.T) {
	ui, out, _ := newTestUI()

	require.NoError(t, ui.DisplayCommitResults(context.Background(), nil))
	assert.Empty(t, out.String())
}

func TestSimpleUI_DisplayReport(t *testing.T) {
	ui, out, _ := newTestUI()

	started := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	report := m.RunReport{
		RunID:       "run-9",
		Repository:  "octo/app",
		PullRequest: 7,
		StartedAt:   started,
		FinishedAt:  started.Add(3 * time.Second),
		Candidates:  []m.Path{"a.ts", "b.ts"},
		Success:     false,
		ErrorCount:  2,
		Failure:     "eslint completed with errors",
		Commits:     []m.CommitResult{{Path: "a.ts", Outcome: m.SkippedNoOutput}},
	}

	require.NoError(t, ui.DisplayReport(context.Background(), report))

	got := out.String()
	assert.Contains(t, got, "Run run-9: failed")
	assert.Contains(t, got, "octo/app#7")
	assert.Contains(t, got, "Files linted: 2 | Errors: 2 | Warnings: 0 | Dry run: false")
	assert.Contains(t, got, "Duration: 3s")
	assert.Contains(t, got, "eslint completed with errors")
	assert.Contains(t, got, "skipped-no-output")
}

func TestNewUI(t *testing.T) {
	ui := NewUI(&cobra.Command{}, false)
	assert.IsType(t, &SimpleUI{}, ui)
}

func TestIsTTY_Nil(t *testing.T) {
	assert.False(t, IsTTY(nil))
}
