package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

const defaultGitHubAPIURL = "https://api.github.com"

// NewGitHubClient builds a GitHub REST client. An empty token yields an
// unauthenticated client; apiURL selects a GitHub Enterprise Server endpoint
// when it differs from the public API.
func NewGitHubClient(ctx context.Context, token, apiURL string) (*github.Client, error) {
	var httpClient *http.Client
	if token != "" {
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	}

	client := github.NewClient(httpClient)

	apiURL = strings.TrimRight(strings.TrimSpace(apiURL), "/")
	if apiURL == "" || apiURL == defaultGitHubAPIURL {
		return client, nil
	}

	enterprise, err := client.WithEnterpriseURLs(apiURL, apiURL)
	if err != nil {
		return nil, fmt.Errorf("configure GitHub API URL %q: %w", apiURL, err)
	}

	return enterprise, nil
}

// statusCode extracts the HTTP status from a go-github error, or 0.
func statusCode(err error) int {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return ghErr.Response.StatusCode
	}

	return 0
}
