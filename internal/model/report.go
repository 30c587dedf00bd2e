package model

import "time"

// RunReport summarizes a single pipeline run.
type RunReport struct {
	RunID        string         `yaml:"run_id"`
	Repository   string         `yaml:"repository,omitempty"`
	PullRequest  int            `yaml:"pull_request,omitempty"`
	DryRun       bool           `yaml:"dry_run"`
	StartedAt    time.Time      `yaml:"started_at"`
	FinishedAt   time.Time      `yaml:"finished_at"`
	Candidates   []Path         `yaml:"candidates"`
	Success      bool           `yaml:"success"`
	ErrorCount   int            `yaml:"error_count"`
	WarningCount int            `yaml:"warning_count"`
	Commits      []CommitResult `yaml:"commits,omitempty"`
	Failure      string         `yaml:"failure,omitempty"`
}
