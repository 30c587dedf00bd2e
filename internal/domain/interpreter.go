package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	m "lintfix.dev/pkg/lintfix/internal/model"
)

// Interpreter turns raw linter output into findings and a pass/fail verdict.
type Interpreter interface {
	Interpret(run m.LintRun) (m.PipelineVerdict, error)
}

type interpreter struct {
	validate *validator.Validate
}

// NewInterpreter creates an Interpreter.
func NewInterpreter() Interpreter {
	return &interpreter{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Interpret parses the linter's JSON report. A run that never started is a
// trivial success. Output that is not a well-formed array of findings yields
// a *ParseError and a failed verdict with no findings.
func (i *interpreter) Interpret(run m.LintRun) (m.PipelineVerdict, error) {
	if !run.Invoked {
		return m.PipelineVerdict{Success: true, Findings: []m.LintFinding{}}, nil
	}

	findings, err := i.parse(run.Output)
	if err != nil {
		slog.Error("Failed to parse linter output", "error", err, "exit_code", run.ExitCode)

		return m.PipelineVerdict{Success: false, Findings: []m.LintFinding{}},
			&ParseError{Raw: run.Output, Diagnostics: run.Diagnostics, Err: err}
	}

	verdict := m.PipelineVerdict{Success: true, Findings: findings}

	for _, finding := range findings {
		if finding.ErrorCount > 0 {
			verdict.Success = false
			break
		}
	}

	slog.Info("Interpreted lint results",
		"files", len(findings),
		"errors", verdict.ErrorCount(),
		"warnings", verdict.WarningCount(),
		"success", verdict.Success)

	return verdict, nil
}

func (i *interpreter) parse(output string) ([]m.LintFinding, error) {
	if strings.TrimSpace(output) == "" {
		return nil, ErrEmptyLintOutput
	}

	var findings []m.LintFinding
	if err := json.Unmarshal([]byte(output), &findings); err != nil {
		return nil, fmt.Errorf("decode findings: %w", err)
	}

	if findings == nil {
		return nil, errors.New("decode findings: expected an array, got null")
	}

	for idx := range findings {
		if err := i.validate.Struct(findings[idx]); err != nil {
			return nil, fmt.Errorf("finding %d: %w", idx, err)
		}
	}

	return findings, nil
}
