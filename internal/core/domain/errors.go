package domain

import (
	"errors"
	"sort"
	"strings"
)

// Not found errors
var (
	ErrCarroNotFound  = errors.New("carro not found")
	ErrModeloNotFound = errors.New("modelo not found")
	ErrImagemNotFound = errors.New("imagem not found for this carro")
)

// Validation errors
var (
	ErrValidation        = errors.New("validation failed")
	ErrInvalidID         = errors.New("id must be a positive integer")
	ErrInvalidImageOrder = errors.New("image order must list every image of the carro exactly once")
	ErrUnsupportedUpload = errors.New("uploaded file is not an image")
	ErrInvalidDirection  = errors.New("direction must be up or down")
	ErrInvalidMediaPath  = errors.New("path is not under /media/")
)

// Business rule errors
var (
	ErrModeloEmUso = errors.New("modelo is referenced by at least one carro")
)

// Upstream errors
var (
	ErrUpstreamUnavailable = errors.New("inventory api unavailable")
	ErrUpstreamRejected    = errors.New("inventory api rejected the request")
)

// ValidationError carries per-field messages. It matches ErrValidation
// with errors.Is.
type ValidationError struct {
	Fields map[string][]string
	causes []error
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

// AddCause records msg for field and keeps cause reachable through
// errors.Is.
func (e *ValidationError) AddCause(field, msg string, cause error) {
	e.Add(field, msg)
	e.causes = append(e.causes, cause)
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// First returns the first message for field, or "".
func (e *ValidationError) First(field string) string {
	if msgs := e.Fields[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() []error {
	return append([]error{ErrValidation}, e.causes...)
}
