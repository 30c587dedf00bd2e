package adapter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/go-github/v66/github"
	m "lintfix.dev/pkg/lintfix/internal/model"
)

// ReadPullRequestEvent builds a PullRequestContext from a GitHub webhook
// payload file. repository ("owner/repo") and headRef override the payload
// values when set. It returns nil without error when eventPath is empty or the
// event is not a pull request event: such runs have no change set.
func ReadPullRequestEvent(eventPath, repository, headRef string) (*m.PullRequestContext, error) {
	if strings.TrimSpace(eventPath) == "" {
		slog.Debug("No event path")
		return nil, nil
	}

	// #nosec G304 - the event path is supplied by the CI runner
	data, err := os.ReadFile(eventPath)
	if err != nil {
		return nil, fmt.Errorf("read event payload: %w", err)
	}

	var event github.PullRequestEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("decode event payload %s: %w", eventPath, err)
	}

	pr := event.GetPullRequest()
	if pr == nil {
		slog.Debug("Event is not a pull request event", "path", eventPath)
		return nil, nil
	}

	ctx := &m.PullRequestContext{
		Owner:   event.GetRepo().GetOwner().GetLogin(),
		Repo:    event.GetRepo().GetName(),
		Number:  pr.GetNumber(),
		BaseSHA: pr.GetBase().GetSHA(),
		HeadSHA: pr.GetHead().GetSHA(),
		HeadRef: pr.GetHead().GetRef(),
	}

	if ctx.Number == 0 {
		ctx.Number = event.GetNumber()
	}

	if repository != "" {
		owner, repo, ok := strings.Cut(repository, "/")
		if !ok || owner == "" || repo == "" {
			return nil, fmt.Errorf("invalid repository %q: expected owner/repo", repository)
		}

		ctx.Owner, ctx.Repo = owner, repo
	}

	if headRef != "" {
		ctx.HeadRef = headRef
	}

	slog.Debug("Loaded pull request context",
		"repository", ctx.FullName(), "number", ctx.Number, "base", ctx.BaseSHA, "head", ctx.HeadSHA)

	return ctx, nil
}
