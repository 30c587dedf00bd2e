package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "lintfix.dev/pkg/lintfix/internal/model"
)

// SimpleUI implements UI by printing to the cobra command's output streams.
type SimpleUI struct {
	cmd      *cobra.Command
	useColor bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, useColor bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, useColor: useColor}
}

// DisplayCandidates lists the files selected for linting.
func (s *SimpleUI) DisplayCandidates(ctx context.Context, candidates []m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(candidates) == 0 {
		s.printf("No changed source files to lint\n")
		return
	}

	s.printf("Linting %d changed file(s):\n", len(candidates))

	for _, candidate := range candidates {
		s.printf("  %s\n", candidate)
	}
}

// DisplayFindings prints findings in stylish format.
func (s *SimpleUI) DisplayFindings(ctx context.Context, findings []m.LintFinding) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rendered := renderStylish(findings, s.palette(s.cmd.OutOrStdout()))
	if rendered == "" {
		return nil
	}

	_, err := io.WriteString(s.cmd.OutOrStdout(), rendered)

	return err
}

// DisplayLintFailure shows the raw linter output and diagnostics when the
// structured output could not be interpreted.
func (s *SimpleUI) DisplayLintFailure(ctx context.Context, run m.LintRun, err error) {
	if ctx.Err() != nil {
		return
	}

	errOut := s.cmd.ErrOrStderr()
	colors := s.palette(errOut)

	_, _ = fmt.Fprintf(errOut, "%s %v (exit code %d)\n", colors.err.Render("lint failed:"), err, run.ExitCode)

	if output := strings.TrimSpace(run.Output); output != "" {
		_, _ = fmt.Fprintf(errOut, "linter output:\n%s\n", output)
	}

	if diagnostics := strings.TrimSpace(run.Diagnostics); diagnostics != "" {
		_, _ = fmt.Fprintf(errOut, "linter diagnostics:\n%s\n", diagnostics)
	}
}

// DisplayCommitResults prints one row per attempted file.
func (s *SimpleUI) DisplayCommitResults(ctx context.Context, results []m.CommitResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(results) == 0 {
		return nil
	}

	s.printf("\n%s", renderCommitTable(results, s.palette(s.cmd.OutOrStdout())))

	return nil
}

// DisplayReport prints a saved run report.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	colors := s.palette(s.cmd.OutOrStdout())

	status := colors.success.Render("passed")
	if !report.Success {
		status = colors.err.Render("failed")
	}

	s.printf("Run %s: %s\n", report.RunID, status)

	if report.Repository != "" {
		s.printf("Pull request: %s#%d\n", report.Repository, report.PullRequest)
	}

	s.printf("Files linted: %d | Errors: %d | Warnings: %d | Dry run: %t\n",
		len(report.Candidates), report.ErrorCount, report.WarningCount, report.DryRun)

	if !report.StartedAt.IsZero() && !report.FinishedAt.IsZero() {
		s.printf("Duration: %s\n", report.FinishedAt.Sub(report.StartedAt))
	}

	if report.Failure != "" {
		s.printf("Failure: %s\n", colors.err.Render(report.Failure))
	}

	if len(report.Commits) > 0 {
		s.printf("\n%s", renderCommitTable(report.Commits, colors))
	}

	return nil
}

func renderCommitTable(results []m.CommitResult, colors palette) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"File", "Outcome", "Diff", "Detail"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	committed := 0

	for _, result := range results {
		outcome := colors.dim.Render(result.Outcome.String())
		detail := result.Reason

		switch result.Outcome {
		case m.Committed:
			committed++
			outcome = colors.success.Render(result.Outcome.String())
			detail = shortSHA(result.CommitSHA)
		case m.SkippedWriteConflict, m.SkippedWriteError, m.SkippedFetchError:
			outcome = colors.warn.Render(result.Outcome.String())
		case m.SkippedNoRemoteFile, m.SkippedNoOutput, m.SkippedUnchanged:
		}

		diff := ""
		if stat := result.Diff; stat != (m.DiffStat{}) {
			diff = fmt.Sprintf("+%d -%d ~%d", stat.Added, stat.Deleted, stat.Changed)
		}

		table.Append([]string{string(result.Path), outcome, diff, detail})
	}

	table.SetFooter([]string{fmt.Sprintf("%d file(s)", len(results)), fmt.Sprintf("%d committed", committed), "", ""})
	table.Render()

	return buf.String()
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}

	return sha
}

func (s *SimpleUI) palette(w io.Writer) palette {
	return newPalette(lipgloss.NewRenderer(w), s.useColor)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
