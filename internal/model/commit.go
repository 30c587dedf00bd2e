package model

// CommitOutcome is the terminal state of the commit pipeline for one file.
type CommitOutcome string

const (
	// Committed means the fix was written to the head branch.
	Committed CommitOutcome = "committed"
	// SkippedNoRemoteFile means the file does not exist on the head branch.
	SkippedNoRemoteFile CommitOutcome = "skipped-no-remote-file"
	// SkippedFetchError means the remote file could not be read.
	SkippedFetchError CommitOutcome = "skipped-fetch-error"
	// SkippedNoOutput means the linter proposed no fix.
	SkippedNoOutput CommitOutcome = "skipped-no-output"
	// SkippedUnchanged means the remote content already equals the fix.
	SkippedUnchanged CommitOutcome = "skipped-unchanged"
	// SkippedWriteConflict means the branch moved between read and write.
	SkippedWriteConflict CommitOutcome = "skipped-write-conflict"
	// SkippedWriteError means the write was rejected for another reason.
	SkippedWriteError CommitOutcome = "skipped-write-error"
)

// String implements fmt.Stringer.
func (o CommitOutcome) String() string {
	return string(o)
}

// DiffStat counts lines touched by a fix.
type DiffStat struct {
	Added   int `yaml:"added"`
	Changed int `yaml:"changed"`
	Deleted int `yaml:"deleted"`
}

// CommitResult records what happened to one finding in the commit pipeline.
type CommitResult struct {
	Path      Path          `yaml:"path"`
	Outcome   CommitOutcome `yaml:"outcome"`
	Reason    string        `yaml:"reason,omitempty"`
	CommitSHA string        `yaml:"commit_sha,omitempty"`
	Diff      DiffStat      `yaml:"diff"`
}

// ContentRef addresses a file on a branch of a remote repository.
type ContentRef struct {
	Owner string
	Repo  string
	Path  Path
	Ref   string
}

// RemoteFile is the current state of a file on the remote branch.
type RemoteFile struct {
	Path Path
	// SHA is the blob version token used as the write precondition.
	SHA     string
	Content string
}

// ContentWrite is a create-or-update request conditioned on SHA.
type ContentWrite struct {
	ContentRef
	Content []byte
	SHA     string
	Message string
}
