package adapter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"

	"github.com/google/go-github/v66/github"
	m "lintfix.dev/pkg/lintfix/internal/model"
)

// listFilesPageSize is the largest page the pull request files API serves.
const listFilesPageSize = 100

// ChangeLister returns every file a pull request changed, in listing order.
type ChangeLister interface {
	ListChangedFiles(ctx context.Context, pr m.PullRequestContext) ([]m.ChangedFile, error)
}

// GitHubChangeLister lists pull request files through the GitHub REST API.
type GitHubChangeLister struct {
	client *github.Client
}

// NewGitHubChangeLister constructs a GitHubChangeLister.
func NewGitHubChangeLister(client *github.Client) *GitHubChangeLister {
	return &GitHubChangeLister{client: client}
}

// ListChangedFiles drains every page of the pull request files listing.
func (l *GitHubChangeLister) ListChangedFiles(ctx context.Context, pr m.PullRequestContext) ([]m.ChangedFile, error) {
	opts := &github.ListOptions{PerPage: listFilesPageSize, Page: 1}

	var files []m.ChangedFile

	for {
		page, resp, err := l.client.PullRequests.ListFiles(ctx, pr.Owner, pr.Repo, pr.Number, opts)
		if err != nil {
			return nil, fmt.Errorf("list files of %s#%d (page %d): %w", pr.FullName(), pr.Number, opts.Page, err)
		}

		for _, file := range page {
			files = append(files, m.ChangedFile{
				Path:   m.Path(file.GetFilename()),
				Status: m.FileStatus(file.GetStatus()),
			})
		}

		slog.Debug("Listed pull request files page", "page", opts.Page, "count", len(page))

		if resp == nil || resp.NextPage == 0 {
			break
		}

		opts.Page = resp.NextPage
	}

	return files, nil
}

// GitChangeLister derives the change listing from the local clone by
// diffing the base and head commits of the pull request.
type GitChangeLister struct {
	workDir m.Path
}

// NewGitChangeLister constructs a GitChangeLister rooted at workDir.
func NewGitChangeLister(workDir m.Path) *GitChangeLister {
	return &GitChangeLister{workDir: workDir}
}

// ListChangedFiles runs git diff-tree between the base and head SHAs.
func (l *GitChangeLister) ListChangedFiles(ctx context.Context, pr m.PullRequestContext) ([]m.ChangedFile, error) {
	if pr.BaseSHA == "" || pr.HeadSHA == "" {
		return nil, errors.New("git change listing requires base and head SHAs")
	}

	// #nosec G204 - SHAs are validated as hexadecimal
	cmd := exec.CommandContext(ctx, "git", "-c", "core.quotePath=false", "diff-tree", "--no-commit-id", "--name-status", "-r", pr.BaseSHA, pr.HeadSHA)
	cmd.Dir = string(l.workDir)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return nil, fmt.Errorf("git diff-tree: %s", msg)
	}

	if runErr != nil {
		return nil, fmt.Errorf("git diff-tree: %w", runErr)
	}

	return ParseNameStatus(stdout.String())
}

// ParseNameStatus parses `git diff --name-status` output. Renames and copies
// report their destination path. C-quoted paths are unquoted.
func ParseNameStatus(output string) ([]m.ChangedFile, error) {
	var files []m.ChangedFile

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("malformed name-status line %q", line)
		}

		status, err := gitStatus(fields[0])
		if err != nil {
			return nil, err
		}

		path, err := unquoteGitPath(fields[len(fields)-1])
		if err != nil {
			return nil, err
		}

		files = append(files, m.ChangedFile{
			Path:   m.Path(path),
			Status: status,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return files, nil
}

// unquoteGitPath reverses git's C-style quoting of paths with special
// characters, e.g. "src/caf\303\251.ts".
func unquoteGitPath(field string) (string, error) {
	if len(field) < 2 || field[0] != '"' || field[len(field)-1] != '"' {
		return field, nil
	}

	path, err := strconv.Unquote(field)
	if err != nil {
		return "", fmt.Errorf("malformed quoted path %s: %w", field, err)
	}

	return path, nil
}

func gitStatus(code string) (m.FileStatus, error) {
	if code == "" {
		return "", errors.New("empty git status code")
	}

	switch code[0] {
	case 'A':
		return m.StatusAdded, nil
	case 'M':
		return m.StatusModified, nil
	case 'D':
		return m.StatusRemoved, nil
	case 'R':
		return m.StatusRenamed, nil
	case 'C':
		return m.StatusCopied, nil
	case 'T':
		return m.StatusChanged, nil
	default:
		return "", fmt.Errorf("unknown git status code %q", code)
	}
}
