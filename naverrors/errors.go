// Package naverrors provides structured error types for jsonnav.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: JSON/YAML decoding failures and malformed documents
//   - StructureError: illegal document shapes encountered during navigation
//   - ConfigError: invalid construction or input options
//
// # Usage with errors.As
//
//	err := nav.Navigate(root)
//	if err != nil {
//	    var structErr *naverrors.StructureError
//	    if errors.As(err, &structErr) {
//	        // Handle the illegal shape, structErr.Origin names the path
//	    }
//	}
package naverrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a document decoding failure occurred.
	ErrParse = errors.New("parse error")

	// ErrStructure indicates an illegal document shape was encountered.
	ErrStructure = errors.New("structure error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to decode a document into a navigable tree.
// This includes JSON/YAML deserialization errors and non-object roots.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// StructureError represents an illegal document shape encountered during
// navigation. The only shape the navigator rejects is an array nested
// directly inside another array.
type StructureError struct {
	// Origin is the full path string being navigated when the shape was found
	Origin string
	// Index is the position of the offending element in the enclosing array
	Index int
	// Message describes the illegal shape
	Message string
}

// Error returns a human-readable error message.
func (e *StructureError) Error() string {
	msg := "structure error"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Origin != "" {
		msg += fmt.Sprintf(" at '%s'", e.Origin)
	}
	if e.Index >= 0 {
		msg += fmt.Sprintf(" (element %d)", e.Index)
	}
	return msg
}

// Unwrap returns nil as StructureError has no underlying cause.
func (e *StructureError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *StructureError) Is(target error) bool {
	return target == ErrStructure
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
