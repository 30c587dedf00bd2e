// Package domain implements the lint-and-fix pipeline for pull requests.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"lintfix.dev/pkg/lintfix/internal/adapter"
	"lintfix.dev/pkg/lintfix/internal/controller"
	m "lintfix.dev/pkg/lintfix/internal/model"
)

// RunArgs contains the arguments for a full lint-and-fix run.
type RunArgs struct {
	// PullRequest is nil when the run was not triggered by a pull request.
	PullRequest *m.PullRequestContext
	DryRun      bool
	// Report is the path of the YAML run report. Empty disables the report.
	Report m.Path
	RunID  string
}

// ListArgs contains the arguments for listing lint candidates.
type ListArgs struct {
	PullRequest *m.PullRequestContext
}

// ViewArgs contains the arguments for displaying a saved report.
type ViewArgs struct {
	Report m.Path
}

// Workflow drives the pipeline stages in order.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	ChangeResolver
	Linter
	Interpreter
	FixCommitter
	adapter.ReportStore
	controller.UI

	validate *validator.Validate
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	resolver ChangeResolver,
	linter Linter,
	interpreter Interpreter,
	committer FixCommitter,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		ChangeResolver: resolver,
		Linter:         linter,
		Interpreter:    interpreter,
		FixCommitter:   committer,
		ReportStore:    reportStore,
		UI:             ui,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Run resolves the changed files, lints them, reports the findings and,
// unless this is a dry run, commits the proposed fixes. It returns
// ErrLintErrors when any finding has errors and a *ParseError when the
// linter output could not be read. Fixes are committed even when the
// verdict fails.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	report := m.RunReport{
		RunID:      args.RunID,
		DryRun:     args.DryRun,
		StartedAt:  time.Now(),
		Candidates: []m.Path{},
	}

	if err := w.validatePullRequest(args.PullRequest); err != nil {
		return err
	}

	if args.PullRequest != nil {
		report.Repository = args.PullRequest.FullName()
		report.PullRequest = args.PullRequest.Number
	}

	candidates, err := w.Resolve(ctx, args.PullRequest)
	if err != nil {
		slog.Error("Failed to resolve changed files", "error", err)
		return fmt.Errorf("resolve changed files: %w", err)
	}

	report.Candidates = candidates
	w.DisplayCandidates(ctx, candidates)

	if len(candidates) == 0 {
		report.Success = true
		return w.finish(args, &report, nil)
	}

	run := w.Lint(ctx, candidates)

	verdict, err := w.Interpret(run)
	if err != nil {
		w.DisplayLintFailure(ctx, run, err)
		report.Failure = err.Error()

		return w.finish(args, &report, err)
	}

	report.Success = verdict.Success
	report.ErrorCount = verdict.ErrorCount()
	report.WarningCount = verdict.WarningCount()

	if err := w.DisplayFindings(ctx, verdict.Findings); err != nil {
		slog.Warn("Failed to display findings", "error", err)
	}

	if args.DryRun || args.PullRequest == nil {
		slog.Info("Skipping fix commits", "dry_run", args.DryRun)
	} else {
		report.Commits = w.CommitFixes(ctx, *args.PullRequest, verdict.Findings)

		if err := w.DisplayCommitResults(ctx, report.Commits); err != nil {
			slog.Warn("Failed to display commit results", "error", err)
		}
	}

	var runErr error
	if !verdict.Success {
		runErr = ErrLintErrors
		report.Failure = runErr.Error()
	}

	return w.finish(args, &report, runErr)
}

// List resolves and displays the files a run would lint.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.validatePullRequest(args.PullRequest); err != nil {
		return err
	}

	candidates, err := w.Resolve(ctx, args.PullRequest)
	if err != nil {
		return fmt.Errorf("resolve changed files: %w", err)
	}

	w.DisplayCandidates(ctx, candidates)

	return nil
}

// View loads a saved run report and displays it.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(args.Report)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.DisplayReport(ctx, report); err != nil {
		return fmt.Errorf("display report: %w", err)
	}

	return nil
}

func (w *workflow) validatePullRequest(pr *m.PullRequestContext) error {
	if pr == nil {
		return nil
	}

	if err := w.validate.Struct(pr); err != nil {
		return fmt.Errorf("invalid pull request context: %w", err)
	}

	return nil
}

func (w *workflow) finish(args RunArgs, report *m.RunReport, runErr error) error {
	report.FinishedAt = time.Now()

	if args.Report == "" {
		return runErr
	}

	if err := w.SaveReport(args.Report, *report); err != nil {
		slog.Error("Failed to save run report", "path", args.Report, "error", err)
		return errors.Join(runErr, fmt.Errorf("save report: %w", err))
	}

	slog.Debug("Saved run report", "path", args.Report)

	return runErr
}
