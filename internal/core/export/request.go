package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// AllowedFormatsText is the human readable list of accepted formats
func AllowedFormatsText() string {
	quoted := make([]string, 0, len(SupportedFormats))
	for _, f := range SupportedFormats {
		quoted = append(quoted, fmt.Sprintf("%q", string(f)))
	}
	return strings.Join(quoted, ", ")
}

// ParseRequest decodes and validates an export request body. On failure the
// returned error is a *ValidationError listing each offending field.
func ParseRequest(body []byte) (ExportRequest, error) {
	var req ExportRequest

	body = bytes.TrimSpace(body)
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return ExportRequest{}, &ValidationError{Fields: []FieldError{{
				Field:   "body",
				Message: fmt.Sprintf("must be a JSON object with a format of %s", AllowedFormatsText()),
			}}}
		}
	}

	if errs := req.Validate(); len(errs) > 0 {
		return ExportRequest{}, &ValidationError{Fields: errs}
	}
	return req, nil
}

// Validate returns the field problems of an already decoded request
func (r ExportRequest) Validate() []FieldError {
	var errs []FieldError

	switch {
	case r.Format == "":
		errs = append(errs, FieldError{
			Field:   "format",
			Message: fmt.Sprintf("is required, must be one of %s", AllowedFormatsText()),
		})
	case !r.Format.Valid():
		errs = append(errs, FieldError{
			Field:   "format",
			Message: fmt.Sprintf("%q is not supported, must be one of %s", string(r.Format), AllowedFormatsText()),
		})
	}

	return errs
}
