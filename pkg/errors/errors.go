package errors

import (
	"fmt"
)

// ParseError represents a document decoding failure with optional line metadata.
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

// ValidationError captures document validation issues.
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

// PreconditionError reports input that violates an operation's contract,
// such as a missing node handed to the translator.
type PreconditionError struct {
	Operation string
	Message   string
}

// NewPreconditionError constructs a PreconditionError.
func NewPreconditionError(operation, message string) error {
	return &PreconditionError{Operation: operation, Message: message}
}

func (e *PreconditionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Operation != "" {
		return fmt.Sprintf("precondition violated in %s: %s", e.Operation, e.Message)
	}
	return fmt.Sprintf("precondition violated: %s", e.Message)
}

// TranslationError represents a failure while turning a design node into a widget.
type TranslationError struct {
	NodeID string
	Err    error
}

// NewTranslationError constructs a TranslationError.
func NewTranslationError(nodeID string, err error) error {
	return &TranslationError{NodeID: nodeID, Err: err}
}

func (e *TranslationError) Error() string {
	if e == nil {
		return ""
	}
	if e.NodeID != "" {
		return fmt.Sprintf("translation error on node %s: %v", e.NodeID, e.Err)
	}
	return fmt.Sprintf("translation error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *TranslationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DriftError indicates that generated output no longer matches what is on disk.
type DriftError struct {
	Path string
	Diff string
}

// NewDriftError constructs a DriftError carrying the rendered diff.
func NewDriftError(path, diff string) error {
	return &DriftError{Path: path, Diff: diff}
}

func (e *DriftError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("generated output differs from %s", e.Path)
}
