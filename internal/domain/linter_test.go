package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	adaptermocks "lintfix.dev/pkg/lintfix/internal/adapter/mocks"
	domain "lintfix.dev/pkg/lintfix/internal/domain"
	m "lintfix.dev/pkg/lintfix/internal/model"
)

func TestLinter_Lint_EmptyCandidatesNeverRunsLinter(t *testing.T) {
	runner := adaptermocks.NewMockLintRunnerAdapter(t)

	run := domain.NewLinter(runner, "/work").Lint(context.Background(), []m.Path{})

	assert.Equal(t, m.LintRun{}, run)
	assert.False(t, run.Invoked)
	runner.AssertNotCalled(t, "RunLint", mock.Anything, mock.Anything, mock.Anything)
}

func TestLinter_Lint_RunsInWorkDir(t *testing.T) {
	runner := adaptermocks.NewMockLintRunnerAdapter(t)
	files := []m.Path{"a.ts", "b.js"}

	runner.EXPECT().RunLint(mock.Anything, m.Path("/work"), files).
		Return(m.LintRun{Output: "[]", Diagnostics: "warn", ExitCode: 1}).Once()

	run := domain.NewLinter(runner, "/work").Lint(context.Background(), files)

	assert.True(t, run.Invoked)
	assert.Equal(t, "[]", run.Output)
	assert.Equal(t, "warn", run.Diagnostics)
	assert.Equal(t, 1, run.ExitCode)
}
