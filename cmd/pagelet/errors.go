package main

import (
	"errors"
	"fmt"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion, code: 1}
}

// newResultError reports a command that ran but whose outcome is a failure,
// such as invalid input or a page that did not fully bind.
func newResultError(code int, format string, args ...any) error {
	return &commandError{cause: fmt.Errorf(format, args...), code: code}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
	code       int
}

func (e *commandError) Error() string {
	if e.operation == "" {
		return e.cause.Error()
	}
	msg := fmt.Sprintf("Failed to %s: %s\n\nError: %v", e.operation, e.context, e.cause)
	if e.suggestion != "" {
		msg += "\n\nSuggestion: " + e.suggestion
	}
	return msg
}

func (e *commandError) Unwrap() error { return e.cause }

func exitCode(err error) int {
	var cmdErr *commandError
	if errors.As(err, &cmdErr) && cmdErr.code > 0 {
		return cmdErr.code
	}
	return 1
}
