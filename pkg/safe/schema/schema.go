package schema

import (
	"errors"
	"strings"
)

// Issue codes reported by the built-in JSON schema.
const (
	CodeInvalidType = "invalid_type"
	CodeInvalidJSON = "invalid_json"
	CodeInvalid     = "invalid"
)

// Issue is one path-qualified mismatch between a value and its expected shape.
type Issue struct {
	Path    string
	Code    string
	Message string
}

// Issues is the structured validation error: every mismatch found, in a
// stable order.
type Issues []Issue

func (is Issues) Error() string {
	if len(is) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(is))
	for _, i := range is {
		parts = append(parts, i.Path+": "+i.Message+" ("+i.Code+")")
	}
	return strings.Join(parts, "; ")
}

// AsIssues extracts the structured mismatch list from err, if it carries one.
func AsIssues(err error) (Issues, bool) {
	var is Issues
	if errors.As(err, &is) {
		return is, true
	}
	return nil, false
}

// Schema checks that a decoded value conforms to the shape of T. It is
// consumed by the fetch pipeline, never constructed by it.
type Schema[T any] interface {
	// Parse returns the typed value, or an error describing the mismatches.
	// The error is Issues when the mismatches are path-qualified.
	Parse(v any) (T, error)
}

// Func adapts a plain function into a Schema.
type Func[T any] func(v any) (T, error)

func (f Func[T]) Parse(v any) (T, error) {
	return f(v)
}
