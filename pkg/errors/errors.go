package errors

import (
	"fmt"
)

// ParseError represents a YAML decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures schema issues in a page document, replay script or config.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BindingError reports that a behavior could not bind to the page because an
// element it needs is missing or has the wrong shape.
type BindingError struct {
	Behavior string
	Element  string
	Message  string
	Err      error
}

// NewBindingError constructs a BindingError for the given behavior and element reference.
func NewBindingError(behavior, element, message string) error {
	return &BindingError{Behavior: behavior, Element: element, Message: message}
}

// WrapBindingError attaches behavior context to an existing error.
func WrapBindingError(behavior string, err error) error {
	if err == nil {
		return nil
	}
	return &BindingError{Behavior: behavior, Message: err.Error(), Err: err}
}

func (e *BindingError) Error() string {
	if e == nil {
		return ""
	}
	if e.Element != "" {
		return fmt.Sprintf("binding error [%s]: %s: %s", e.Behavior, e.Element, e.Message)
	}
	return fmt.Sprintf("binding error [%s]: %s", e.Behavior, e.Message)
}

// Unwrap exposes the underlying error.
func (e *BindingError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
