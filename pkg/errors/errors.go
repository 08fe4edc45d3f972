package errors

import (
	"fmt"
)

// ParseError represents a theme file parsing failure with optional line metadata.
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

// ValidationError captures theme configuration issues. A theme that fails
// validation is rejected at construction time so a constructed theme is
// always safe to render with.
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

// SelectionError reports prompt input that cannot be mapped to a valid
// 1-based index: empty input, non-numeric input, an out-of-range number,
// or an empty options list. It is surfaced to the caller as-is and never
// retried.
type SelectionError struct {
	Input string
	Max   int
}

// NewSelectionError constructs a SelectionError for the given raw input
// and the number of available options.
func NewSelectionError(input string, max int) error {
	return &SelectionError{Input: input, Max: max}
}

func (e *SelectionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Max <= 0 {
		return "invalid selection: no options available"
	}
	return fmt.Sprintf("invalid selection: %q is not a number between 1 and %d", e.Input, e.Max)
}
