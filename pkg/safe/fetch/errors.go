package fetch

import (
	"github.com/ib-77/safefetch/pkg/safe/schema"
)

// The hierarchy form of the pipeline's error taxonomy. One concrete type per
// failing stage; identity is established with errors.As. The tagged form in
// fetcherror.go carries the same information behind a discriminant instead.

// ThrewError means the transport call itself could not complete. Its message
// is the underlying cause's message, unaltered.
type ThrewError struct {
	Cause error
}

func (e *ThrewError) Error() string {
	if e.Cause == nil {
		return "fetch threw"
	}
	return e.Cause.Error()
}

func (e *ThrewError) Unwrap() error {
	return e.Cause
}

// NotOkError means the transport completed but reported a non-2xx status.
// The full response is carried with its body unread.
type NotOkError struct {
	Response *Response
}

func (e *NotOkError) Error() string {
	if e.Response == nil {
		return "response was not ok"
	}
	return "response was not ok: " + e.Response.Status
}

// DecodeError means the response body could not be decoded as JSON.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	if e.Cause == nil {
		return "failed to decode response body"
	}
	return "failed to decode response body: " + e.Cause.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// ValidationError means the decoded body did not conform to the schema.
type ValidationError struct {
	Cause error
}

func (e *ValidationError) Error() string {
	if e.Cause == nil {
		return "response body did not match schema"
	}
	return "response body did not match schema: " + e.Cause.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Issues returns the path-qualified mismatches, when the schema reported any.
func (e *ValidationError) Issues() schema.Issues {
	is, _ := schema.AsIssues(e.Cause)
	return is
}
