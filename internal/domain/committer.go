package domain

import (
	"context"
	"errors"
	"log/slog"

	"lintfix.dev/pkg/lintfix/internal/adapter"
	m "lintfix.dev/pkg/lintfix/internal/model"
)

// DefaultCommitMessage is used when no commit message is configured.
const DefaultCommitMessage = "style(): Auto eslint fix"

// FixCommitter writes proposed fixes back to the pull request's head branch.
type FixCommitter interface {
	CommitFixes(ctx context.Context, pr m.PullRequestContext, findings []m.LintFinding) []m.CommitResult
}

type fixCommitter struct {
	adapter.ContentStore
	workspace m.Path
	message   string
}

// NewFixCommitter creates a FixCommitter. Absolute finding paths are resolved
// against workspace.
func NewFixCommitter(store adapter.ContentStore, workspace m.Path, message string) FixCommitter {
	if message == "" {
		message = DefaultCommitMessage
	}

	return &fixCommitter{ContentStore: store, workspace: workspace, message: message}
}

// CommitFixes processes findings one at a time in the given order. Each write
// is conditioned on the SHA read just before it, so a branch that moved in
// between is reported as a conflict instead of being overwritten. A failure
// on one file never stops the others.
func (c *fixCommitter) CommitFixes(ctx context.Context, pr m.PullRequestContext, findings []m.LintFinding) []m.CommitResult {
	results := make([]m.CommitResult, 0, len(findings))

	for _, finding := range findings {
		result := c.commitFix(ctx, pr, finding)

		logger := slog.With("path", result.Path, "outcome", result.Outcome)
		if result.Reason != "" {
			logger = logger.With("reason", result.Reason)
		}

		switch result.Outcome {
		case m.Committed:
			logger.Info("Committed fix", "commit", result.CommitSHA)
		case m.SkippedFetchError, m.SkippedWriteConflict, m.SkippedWriteError:
			logger.Warn("Fix not committed")
		case m.SkippedNoRemoteFile, m.SkippedNoOutput, m.SkippedUnchanged:
			logger.Debug("Fix skipped")
		}

		results = append(results, result)
	}

	return results
}

func (c *fixCommitter) commitFix(ctx context.Context, pr m.PullRequestContext, finding m.LintFinding) m.CommitResult {
	if !finding.HasFix() {
		return m.CommitResult{Path: m.Path(finding.FilePath), Outcome: m.SkippedNoOutput}
	}

	p, err := NormalizePath(c.workspace, finding.FilePath)
	if err != nil {
		return m.CommitResult{Path: m.Path(finding.FilePath), Outcome: m.SkippedFetchError, Reason: err.Error()}
	}

	ref := m.ContentRef{Owner: pr.Owner, Repo: pr.Repo, Path: p, Ref: pr.HeadRef}

	remote, err := c.ReadFile(ctx, ref)
	if err != nil {
		outcome := m.SkippedFetchError
		if errors.Is(err, adapter.ErrRemoteFileNotFound) {
			outcome = m.SkippedNoRemoteFile
		}

		return m.CommitResult{Path: p, Outcome: outcome, Reason: err.Error()}
	}

	proposed := *finding.Output
	if remote.Content == proposed {
		return m.CommitResult{Path: p, Outcome: m.SkippedUnchanged}
	}

	result := m.CommitResult{Path: p}

	unified, stat, err := FixDiff(p, remote.Content, proposed)
	if err != nil {
		slog.Debug("Failed to compute fix diff", "path", p, "error", err)
	} else {
		result.Diff = stat
		slog.Debug("Proposed fix", "path", p, "diff", unified)
	}

	sha, err := c.WriteFile(ctx, m.ContentWrite{
		ContentRef: ref,
		Content:    []byte(proposed),
		SHA:        remote.SHA,
		Message:    c.message,
	})
	if err != nil {
		result.Outcome = m.SkippedWriteError
		if errors.Is(err, adapter.ErrVersionConflict) {
			result.Outcome = m.SkippedWriteConflict
		}

		result.Reason = err.Error()

		return result
	}

	result.Outcome = m.Committed
	result.CommitSHA = sha

	return result
}
