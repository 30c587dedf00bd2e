package domain

import (
	"context"
	"log/slog"

	"lintfix.dev/pkg/lintfix/internal/adapter"
	m "lintfix.dev/pkg/lintfix/internal/model"
)

// Linter runs the external linter over a candidate set in dry-run fix mode.
type Linter interface {
	Lint(ctx context.Context, candidates []m.Path) m.LintRun
}

type linter struct {
	adapter.LintRunnerAdapter
	workDir m.Path
}

// NewLinter creates a Linter that runs in workDir.
func NewLinter(runner adapter.LintRunnerAdapter, workDir m.Path) Linter {
	return &linter{LintRunnerAdapter: runner, workDir: workDir}
}

// Lint never starts a process for an empty candidate set.
func (l *linter) Lint(ctx context.Context, candidates []m.Path) m.LintRun {
	if len(candidates) == 0 {
		return m.LintRun{}
	}

	slog.Debug("Running linter", "files", len(candidates), "dir", l.workDir)

	run := l.RunLint(ctx, l.workDir, candidates)
	run.Invoked = true

	slog.Debug("Linter finished", "exit_code", run.ExitCode, "stdout_bytes", len(run.Output))

	return run
}
