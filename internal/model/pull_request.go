package model

// PullRequestContext identifies the pull request a run operates on. It is
// the explicit replacement for the webhook payload and environment variables
// a CI job exposes.
type PullRequestContext struct {
	Owner   string `validate:"required"`
	Repo    string `validate:"required"`
	Number  int    `validate:"gt=0"`
	BaseSHA string `validate:"omitempty,hexadecimal"`
	HeadSHA string `validate:"omitempty,hexadecimal"`
	HeadRef string `validate:"required"`
}

// FullName returns the "owner/repo" form of the repository.
func (pr PullRequestContext) FullName() string {
	return pr.Owner + "/" + pr.Repo
}
