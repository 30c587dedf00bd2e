package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v66/github"
	"golang.org/x/time/rate"
	m "lintfix.dev/pkg/lintfix/internal/model"
)

var (
	// ErrRemoteFileNotFound is returned when the path does not name a file on the ref.
	ErrRemoteFileNotFound = errors.New("remote file not found")
	// ErrVersionConflict is returned when the supplied SHA no longer matches the branch.
	ErrVersionConflict = errors.New("remote file version conflict")
)

// ContentStore reads and conditionally writes files of a remote repository.
type ContentStore interface {
	// ReadFile returns the file's content and its current blob SHA.
	ReadFile(ctx context.Context, ref m.ContentRef) (m.RemoteFile, error)
	// WriteFile commits new content, conditioned on write.SHA being current.
	// It returns the SHA of the created commit.
	WriteFile(ctx context.Context, write m.ContentWrite) (string, error)
}

// GitHubContentStore implements ContentStore with the GitHub contents API.
type GitHubContentStore struct {
	client  *github.Client
	limiter *rate.Limiter
}

// NewGitHubContentStore constructs a GitHubContentStore. Writes are spaced
// at least minInterval apart; zero disables pacing.
func NewGitHubContentStore(client *github.Client, minInterval time.Duration) *GitHubContentStore {
	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}

	return &GitHubContentStore{
		client:  client,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// ReadFile fetches a file from the given ref.
func (s *GitHubContentStore) ReadFile(ctx context.Context, ref m.ContentRef) (m.RemoteFile, error) {
	file, _, _, err := s.client.Repositories.GetContents(ctx, ref.Owner, ref.Repo, string(ref.Path),
		&github.RepositoryContentGetOptions{Ref: ref.Ref})
	if err != nil {
		if statusCode(err) == http.StatusNotFound {
			return m.RemoteFile{}, fmt.Errorf("%s@%s: %w", ref.Path, ref.Ref, ErrRemoteFileNotFound)
		}

		return m.RemoteFile{}, fmt.Errorf("get contents of %s@%s: %w", ref.Path, ref.Ref, err)
	}

	if file == nil || file.GetType() != "file" {
		return m.RemoteFile{}, fmt.Errorf("%s@%s is not a file: %w", ref.Path, ref.Ref, ErrRemoteFileNotFound)
	}

	content, err := file.GetContent()
	if err != nil {
		return m.RemoteFile{}, fmt.Errorf("decode contents of %s@%s: %w", ref.Path, ref.Ref, err)
	}

	return m.RemoteFile{
		Path:    m.Path(file.GetPath()),
		SHA:     file.GetSHA(),
		Content: content,
	}, nil
}

// WriteFile updates a file on a branch with the supplied blob SHA as precondition.
func (s *GitHubContentStore) WriteFile(ctx context.Context, write m.ContentWrite) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("wait for write slot: %w", err)
	}

	resp, _, err := s.client.Repositories.UpdateFile(ctx, write.Owner, write.Repo, string(write.Path),
		&github.RepositoryContentFileOptions{
			Message: github.String(write.Message),
			Content: write.Content,
			SHA:     github.String(write.SHA),
			Branch:  github.String(write.Ref),
		})
	if err != nil {
		if statusCode(err) == http.StatusConflict {
			return "", fmt.Errorf("update %s@%s: %w: %w", write.Path, write.Ref, ErrVersionConflict, err)
		}

		return "", fmt.Errorf("update %s@%s: %w", write.Path, write.Ref, err)
	}

	if resp == nil {
		return "", nil
	}

	return resp.Commit.GetSHA(), nil
}
