package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FieldError describes one invalid field of an input
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// Join renders field errors as a single "field: message; field: message" line
func Join(errs []FieldError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, "; ")
}

// Checker accumulates field errors so every problem is reported at once
type Checker struct {
	errs []FieldError
}

// Check records a field error when ok is false
func (c *Checker) Check(ok bool, field, format string, args ...interface{}) {
	if !ok {
		c.errs = append(c.errs, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}
}

// Required fails on empty or whitespace-only values
func (c *Checker) Required(field, value string) bool {
	ok := strings.TrimSpace(value) != ""
	c.Check(ok, field, "is required")
	return ok
}

// Length checks the rune count of value is within [min, max]. max <= 0 means unbounded.
func (c *Checker) Length(field, value string, min, max int) {
	n := utf8.RuneCountInString(value)
	if n < min {
		c.Check(false, field, "must be at least %d characters", min)
		return
	}
	if max > 0 && n > max {
		c.Check(false, field, "must be at most %d characters", max)
	}
}

// Count checks a collection size is within [min, max]
func (c *Checker) Count(field string, n, min, max int) {
	c.Check(n >= min && n <= max, field, "must contain between %d and %d items", min, max)
}

// OneOf fails when value is not in allowed
func (c *Checker) OneOf(field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	quoted := make([]string, 0, len(allowed))
	for _, a := range allowed {
		quoted = append(quoted, fmt.Sprintf("%q", a))
	}
	c.Check(false, field, "%q is not supported, must be one of %s", value, strings.Join(quoted, ", "))
}

// Errors returns the accumulated field errors, nil when the input is valid
func (c *Checker) Errors() []FieldError {
	return c.errs
}
