package schema

import (
	"encoding/json"
	"errors"
	"fmt"
)

type jsonSchema[T any] struct{}

// Of returns a Schema that accepts any value whose JSON form unmarshals
// cleanly into T. Raw JSON input ([]byte, json.RawMessage) is unmarshalled
// directly; anything else is round-tripped through encoding/json first.
func Of[T any]() Schema[T] {
	return jsonSchema[T]{}
}

func (jsonSchema[T]) Parse(v any) (T, error) {
	var out T

	raw, ok := rawJSON(v)
	if !ok {
		b, err := json.Marshal(v)
		if err != nil {
			return out, Issues{{Path: "$", Code: CodeInvalid, Message: err.Error()}}
		}
		raw = b
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		var zero T
		return zero, fromJSONError(err)
	}

	return out, nil
}

func rawJSON(v any) ([]byte, bool) {
	switch b := v.(type) {
	case json.RawMessage:
		return b, true
	case []byte:
		return b, true
	default:
		return nil, false
	}
}

func fromJSONError(err error) Issues {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		path := typeErr.Field
		if path == "" {
			path = "$"
		}
		return Issues{{
			Path:    path,
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		}}
	}

	var synErr *json.SyntaxError
	if errors.As(err, &synErr) {
		return Issues{{Path: "$", Code: CodeInvalidJSON, Message: synErr.Error()}}
	}

	return Issues{{Path: "$", Code: CodeInvalid, Message: err.Error()}}
}
