package model

// Severity levels as reported by ESLint.
const (
	SeverityWarning = 1
	SeverityError   = 2
)

// LintMessage is a single rule violation inside a finding.
type LintMessage struct {
	RuleID    string `json:"ruleId" yaml:"rule_id"`
	Severity  int    `json:"severity" yaml:"severity"`
	Message   string `json:"message" yaml:"message"`
	Line      int    `json:"line" yaml:"line"`
	Column    int    `json:"column" yaml:"column"`
	EndLine   int    `json:"endLine,omitempty" yaml:"end_line,omitempty"`
	EndColumn int    `json:"endColumn,omitempty" yaml:"end_column,omitempty"`
	Fatal     bool   `json:"fatal,omitempty" yaml:"fatal,omitempty"`
}

// LintFinding is the linter's structured result for one file.
//
// Output is only set when the linter computed a fix. A nil Output means no
// fix is available, not that the file is clean.
type LintFinding struct {
	FilePath            string        `json:"filePath" validate:"required"`
	Messages            []LintMessage `json:"messages" validate:"dive"`
	ErrorCount          int           `json:"errorCount" validate:"min=0"`
	FatalErrorCount     int           `json:"fatalErrorCount" validate:"min=0"`
	WarningCount        int           `json:"warningCount" validate:"min=0"`
	FixableErrorCount   int           `json:"fixableErrorCount" validate:"min=0"`
	FixableWarningCount int           `json:"fixableWarningCount" validate:"min=0"`
	Output              *string       `json:"output,omitempty"`
}

// HasFix reports whether the finding carries a non-empty proposed output.
func (f LintFinding) HasFix() bool {
	return f.Output != nil && *f.Output != ""
}

// LintRun is the raw result of invoking the external linter.
type LintRun struct {
	// Invoked is false when no process was started (empty candidate set).
	Invoked bool
	// Output is the structured (JSON) stdout of the linter.
	Output string
	// Diagnostics holds stderr and process-level error text.
	Diagnostics string
	ExitCode    int
}

// PipelineVerdict is the pass/fail summary derived from the findings.
type PipelineVerdict struct {
	Success  bool
	Findings []LintFinding
}

// ErrorCount sums error counts across findings.
func (v PipelineVerdict) ErrorCount() int {
	total := 0
	for _, f := range v.Findings {
		total += f.ErrorCount
	}

	return total
}

// WarningCount sums warning counts across findings.
func (v PipelineVerdict) WarningCount() int {
	total := 0
	for _, f := range v.Findings {
		total += f.WarningCount
	}

	return total
}
