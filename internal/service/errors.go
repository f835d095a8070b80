package service

import (
	"fmt"
	"strings"
)

// ValidationError carries field-level messages for a rejected payload. It is
// produced by service-side validation so the HTTP and AI-generation paths
// share one set of rules.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, messages := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(messages, "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Details flattens the field errors for an ErrorResponse body.
func (e *ValidationError) Details() []string {
	var details []string
	for field, messages := range e.Fields {
		for _, msg := range messages {
			details = append(details, fmt.Sprintf("%s: %s", field, msg))
		}
	}
	return details
}

// GenerationError maps an upstream Gemini failure onto the HTTP status the
// caller should receive.
type GenerationError struct {
	Status  int
	Message string
	Details string
}

func (e *GenerationError) Error() string {
	if e.Details == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Details)
}
