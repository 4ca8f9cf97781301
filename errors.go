package proposalint

import (
	"errors"
	"fmt"
)

// DecodeError reports that a preamble block is not valid structured data:
// either the YAML is syntactically invalid or it decodes to something other
// than a mapping.
type DecodeError struct {
	Err error // underlying cause
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("preamble is not valid structured data: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// TypeMismatchError reports a recognized field whose decoded value has the
// wrong primitive type.
type TypeMismatchError struct {
	Field    string // name of the offending field
	Actual   string // type the value decoded to
	Expected string // type declared by the field spec
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %q is %s, expected %s", e.Field, e.Actual, e.Expected)
}

// NewDecodeError wraps an underlying decode failure.
func NewDecodeError(err error) *DecodeError {
	return &DecodeError{Err: err}
}

// NewTypeMismatchError creates a new TypeMismatchError.
func NewTypeMismatchError(field, actual, expected string) *TypeMismatchError {
	return &TypeMismatchError{Field: field, Actual: actual, Expected: expected}
}

// Front-matter extraction errors.
var (
	// ErrNoPreamble means the document does not open with a "---" fence.
	ErrNoPreamble = errors.New("document has no preamble block")
	// ErrUnterminatedPreamble means the opening fence is never closed.
	ErrUnterminatedPreamble = errors.New("preamble block is not terminated")
)
