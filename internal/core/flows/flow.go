package flows

import (
	"bytes"
	"context"

	"github.com/goccy/go-json"

	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/shared/validation"
)

// definition binds typed input/output schemas to a run function
type definition[I any, O any] struct {
	name           string
	description    string
	validateInput  func(I) []validation.FieldError
	run            func(ctx context.Context, in I) (O, error)
	validateOutput func(O) []validation.FieldError
}

func (d *definition[I, O]) Name() string {
	return d.name
}

func (d *definition[I, O]) Description() string {
	return d.description
}

// Run decodes and validates the input, runs the flow and validates what came back
func (d *definition[I, O]) Run(ctx context.Context, raw []byte) (interface{}, error) {
	var in I
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, &InputError{Flow: d.name, Fields: []validation.FieldError{{
			Field:   "body",
			Message: "must be a JSON object matching the flow input",
		}}}
	}

	if errs := d.validateInput(in); len(errs) > 0 {
		return nil, &InputError{Flow: d.name, Fields: errs}
	}

	out, err := d.run(ctx, in)
	if err != nil {
		return nil, err
	}

	if errs := d.validateOutput(out); len(errs) > 0 {
		return nil, &OutputError{Flow: d.name, Fields: errs}
	}

	return out, nil
}
