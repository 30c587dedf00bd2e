package domain

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sourcegraph/go-diff/diff"
	m "lintfix.dev/pkg/lintfix/internal/model"
)

const fixDiffContext = 3

// FixDiff returns the unified diff from the remote content to the proposed
// fix together with its line statistics.
func FixDiff(p m.Path, remote, proposed string) (string, m.DiffStat, error) {
	unified, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(remote),
		B:        difflib.SplitLines(proposed),
		FromFile: "a/" + string(p),
		ToFile:   "b/" + string(p),
		Context:  fixDiffContext,
	})
	if err != nil {
		return "", m.DiffStat{}, fmt.Errorf("diff %s: %w", p, err)
	}

	if unified == "" {
		return "", m.DiffStat{}, nil
	}

	fileDiff, err := diff.ParseFileDiff([]byte(unified))
	if err != nil {
		return unified, m.DiffStat{}, fmt.Errorf("parse diff %s: %w", p, err)
	}

	stat := fileDiff.Stat()

	return unified, m.DiffStat{
		Added:   int(stat.Added),
		Changed: int(stat.Changed),
		Deleted: int(stat.Deleted),
	}, nil
}
