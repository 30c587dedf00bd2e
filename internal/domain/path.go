package domain

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	m "lintfix.dev/pkg/lintfix/internal/model"
)

// errOutsideWorkspace is returned for finding paths that do not resolve inside the workspace.
var errOutsideWorkspace = errors.New("path is outside the workspace")

// NormalizePath converts a linter-reported path into the repository-relative,
// slash-separated form the contents API expects.
func NormalizePath(workspace m.Path, filePath string) (m.Path, error) {
	if filePath == "" {
		return "", errors.New("empty path")
	}

	rel := filePath

	if filepath.IsAbs(filePath) {
		if workspace == "" {
			return "", fmt.Errorf("%s: absolute path without a workspace", filePath)
		}

		var err error

		rel, err = filepath.Rel(filepath.Clean(string(workspace)), filePath)
		if err != nil {
			return "", fmt.Errorf("%s: %w", filePath, err)
		}
	}

	cleaned := path.Clean(filepath.ToSlash(rel))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") || path.IsAbs(cleaned) {
		return "", fmt.Errorf("%s: %w", filePath, errOutsideWorkspace)
	}

	return m.Path(cleaned), nil
}
