package content

import (
	"fmt"
	"strings"
)

// ParseError represents a content document that could not be decoded at all
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("content parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("content parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// FieldError represents a single schema violation at a specific field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every schema violation found in a document
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("content validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}
