package flows

import (
	"context"
	"errors"

	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/shared/validation"
)

// Model is the generative backend a flow runs against. *llm.Service satisfies it.
type Model interface {
	GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Flow is one schema-checked prompt wrapper
type Flow interface {
	Name() string
	Description() string
	Run(ctx context.Context, input []byte) (interface{}, error)
}

// ErrUnknownFlow is returned when no flow is registered under a name
var ErrUnknownFlow = errors.New("unknown flow")

// InputError means the caller sent an input that does not match the flow's schema
type InputError struct {
	Flow   string
	Fields []validation.FieldError
}

func (e *InputError) Error() string {
	return "invalid input for flow " + e.Flow + ": " + validation.Join(e.Fields)
}

// OutputError means the model replied with something that does not match the output schema
type OutputError struct {
	Flow   string
	Fields []validation.FieldError
}

func (e *OutputError) Error() string {
	return "invalid output from flow " + e.Flow + ": " + validation.Join(e.Fields)
}
