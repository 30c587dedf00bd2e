// Package model defines the data structures shared by the lintfix pipeline.
package model

import "strings"

// Path represents a file path, either local (as reported by the linter) or
// repository-relative (as expected by the hosting API).
type Path string

// FileStatus is the change status of a file in a pull request.
type FileStatus string

const (
	// StatusAdded marks a file introduced by the pull request.
	StatusAdded FileStatus = "added"
	// StatusModified marks a file whose content changed.
	StatusModified FileStatus = "modified"
	// StatusRenamed marks a file moved to a new path.
	StatusRenamed FileStatus = "renamed"
	// StatusRemoved marks a file deleted by the pull request. It cannot be linted.
	StatusRemoved FileStatus = "removed"
	// StatusCopied marks a file copied from another path.
	StatusCopied FileStatus = "copied"
	// StatusChanged marks a file whose mode or type changed.
	StatusChanged FileStatus = "changed"
	// StatusUnchanged is reported by the hosting API for some renames.
	StatusUnchanged FileStatus = "unchanged"
)

// SourceExtensions is the fixed allow-list of lintable file extensions.
var SourceExtensions = []string{".js", ".jsx", ".ts", ".tsx"}

// ChangedFile is a single entry of a pull request's change listing.
type ChangedFile struct {
	Path   Path
	Status FileStatus
}

// HasSourceExtension reports whether p ends with an allow-listed extension.
// The match is a case-sensitive suffix check.
func (p Path) HasSourceExtension() bool {
	for _, ext := range SourceExtensions {
		if strings.HasSuffix(string(p), ext) {
			return true
		}
	}

	return false
}

// Strings converts a slice of paths to plain strings.
func Strings(paths []Path) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, string(p))
	}

	return out
}
