package export

import (
	"errors"
	"fmt"

	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/shared/validation"
)

// ErrMethodNotAllowed is returned for any verb other than POST and OPTIONS
var ErrMethodNotAllowed = errors.New("method not allowed")

// FieldError describes one invalid field of a request
type FieldError = validation.FieldError

// ValidationError carries every field problem found in a request
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return "invalid export request: " + validation.Join(e.Fields)
}

// GenerationError wraps any failure while rendering a document
type GenerationError struct {
	Format ExportFormat
	Err    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Format, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
