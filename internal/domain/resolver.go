package domain

import (
	"context"
	"fmt"
	"log/slog"

	"lintfix.dev/pkg/lintfix/internal/adapter"
	m "lintfix.dev/pkg/lintfix/internal/model"
)

// ChangeResolver determines which files of a pull request should be linted.
type ChangeResolver interface {
	Resolve(ctx context.Context, pr *m.PullRequestContext) ([]m.Path, error)
}

type changeResolver struct {
	adapter.ChangeLister
}

// NewChangeResolver creates a ChangeResolver backed by the given lister.
func NewChangeResolver(lister adapter.ChangeLister) ChangeResolver {
	return &changeResolver{ChangeLister: lister}
}

// Resolve lists the pull request's changed files and keeps the lintable ones.
// Outside a pull request there is nothing to lint and the result is empty.
func (r *changeResolver) Resolve(ctx context.Context, pr *m.PullRequestContext) ([]m.Path, error) {
	if pr == nil {
		slog.Debug("No pull request context, nothing to resolve")
		return []m.Path{}, nil
	}

	files, err := r.ListChangedFiles(ctx, *pr)
	if err != nil {
		return nil, fmt.Errorf("list changed files of %s#%d: %w", pr.FullName(), pr.Number, err)
	}

	for _, file := range files {
		slog.Debug("Changed file", "path", file.Path, "status", file.Status)
	}

	candidates := FilterCandidates(files)
	slog.Info("Resolved lint candidates", "changed", len(files), "candidates", len(candidates))

	return candidates, nil
}

// FilterCandidates drops removed files and files without a lintable
// extension, preserving listing order.
func FilterCandidates(files []m.ChangedFile) []m.Path {
	candidates := make([]m.Path, 0, len(files))

	for _, file := range files {
		if IsCandidate(file) {
			candidates = append(candidates, file.Path)
		}
	}

	return candidates
}

// IsCandidate reports whether a changed file should be linted.
func IsCandidate(file m.ChangedFile) bool {
	return file.Status != m.StatusRemoved && file.Path.HasSourceExtension()
}
