// Package controller provides output adapters for displaying lint and commit results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "lintfix.dev/pkg/lintfix/internal/model"
)

// UI defines how pipeline progress and results are presented to the operator.
// Rendering is a side effect only; nothing returned here feeds back into
// pipeline decisions.
type UI interface {
	DisplayCandidates(ctx context.Context, candidates []m.Path)
	DisplayFindings(ctx context.Context, findings []m.LintFinding) error
	DisplayLintFailure(ctx context.Context, run m.LintRun, err error)
	DisplayCommitResults(ctx context.Context, results []m.CommitResult) error
	DisplayReport(ctx context.Context, report m.RunReport) error
}

// NewUI returns the UI implementation for the command's output. Color is only
// used when the output is a terminal.
func NewUI(cmd *cobra.Command, useColor bool) UI {
	return NewSimpleUI(cmd, useColor)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
