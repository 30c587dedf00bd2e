package adapter

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	m "lintfix.dev/pkg/lintfix/internal/model"
)

// Linter flags that request computed-but-unapplied fixes in JSON form.
const (
	fixDryRunFlag = "--fix-dry-run"
	formatFlag    = "--format"
	formatJSON    = "json"
	endOfOptions  = "--"
)

// DefaultLintCommand runs the workspace's local ESLint installation.
var DefaultLintCommand = []string{"node", "node_modules/eslint/bin/eslint"}

// LintRunnerAdapter abstracts linter execution.
type LintRunnerAdapter interface {
	// RunLint lints files inside workDir without writing fixes to disk.
	// Process failures are reported through the returned LintRun, never as
	// a Go error: a linter that finds errors exits non-zero by design.
	RunLint(ctx context.Context, workDir m.Path, files []m.Path) m.LintRun
}

// LocalLintRunnerAdapter runs the linter as a child process using os/exec.
type LocalLintRunnerAdapter struct {
	command   []string
	extraArgs []string
	timeout   time.Duration
}

// NewLocalLintRunnerAdapter constructs a LocalLintRunnerAdapter. An empty
// command falls back to DefaultLintCommand; a zero timeout disables it.
func NewLocalLintRunnerAdapter(command, extraArgs []string, timeout time.Duration) *LocalLintRunnerAdapter {
	if len(command) == 0 {
		command = DefaultLintCommand
	}

	return &LocalLintRunnerAdapter{
		command:   command,
		extraArgs: extraArgs,
		timeout:   timeout,
	}
}

// Args builds the argument list passed after the executable.
func (a *LocalLintRunnerAdapter) Args(files []m.Path) []string {
	args := make([]string, 0, len(a.command)+len(a.extraArgs)+len(files)+4)
	args = append(args, a.command[1:]...)
	args = append(args, a.extraArgs...)
	args = append(args, fixDryRunFlag, formatFlag, formatJSON, endOfOptions)
	args = append(args, m.Strings(files)...)

	return args
}

// RunLint executes the linter and captures stdout, stderr and the exit code.
func (a *LocalLintRunnerAdapter) RunLint(ctx context.Context, workDir m.Path, files []m.Path) m.LintRun {
	if a.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	// #nosec G204 - the command comes from operator configuration
	cmd := exec.CommandContext(ctx, a.command[0], a.Args(files)...)
	cmd.Dir = string(workDir)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	run := m.LintRun{
		Invoked:     true,
		Output:      stdout.String(),
		Diagnostics: stderr.String(),
	}

	var exitErr *exec.ExitError

	switch {
	case err == nil:
		run.ExitCode = 0
	case errors.As(err, &exitErr):
		run.ExitCode = exitErr.ExitCode()
	default:
		run.ExitCode = -1
		run.Diagnostics = strings.TrimSpace(run.Diagnostics + "\n" + err.Error())
	}

	return run
}
