package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrLintErrors is returned by a run whose findings contain at least one error.
	ErrLintErrors = errors.New("eslint completed with errors")
	// ErrEmptyLintOutput is the cause of a ParseError when the linter wrote nothing to stdout.
	ErrEmptyLintOutput = errors.New("linter produced no output")
)

// ParseError reports linter output that could not be interpreted. It is fatal
// for the run and carries the raw output so the operator can see what went wrong.
type ParseError struct {
	Raw         string
	Diagnostics string
	Err         error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse lint output: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
