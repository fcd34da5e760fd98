package fetch

import (
	"errors"

	"github.com/ib-77/safefetch/pkg/safe/schema"
)

// Kind discriminates which pipeline stage failed.
type Kind string

const (
	KindFetchThrew    Kind = "fetch-threw"
	KindResponseNotOk Kind = "response-not-ok"
	KindDecodeFailed  Kind = "decode-failed"
	KindParseFailed   Kind = "parse-failed"
)

// Item is the discriminated payload of a tagged Error. Type is always set;
// of the remaining fields, only the ones meaningful for that Type are.
type Item struct {
	Type     Kind
	Cause    error
	Response *Response
	Issues   schema.Issues
}

// Error is the tagged-union form of a pipeline failure. Reading Item.Type is
// enough to branch on the failure kind; no type inspection needed. The
// message is derived once from the item at construction.
type Error struct {
	Item    Item
	message string
}

func NewError(item Item) *Error {
	return &Error{Item: item, message: messageFor(item)}
}

func messageFor(item Item) string {
	switch item.Type {
	case KindFetchThrew:
		return withCause("fetch threw an error", item.Cause)
	case KindResponseNotOk:
		if item.Response != nil {
			return "response was not ok: " + item.Response.Status
		}
		return "response was not ok"
	case KindDecodeFailed:
		return withCause("failed to decode response body", item.Cause)
	case KindParseFailed:
		if len(item.Issues) > 0 {
			return "response body did not match schema: " + item.Issues.Error()
		}
		return withCause("response body did not match schema", item.Cause)
	default:
		return "fetch failed"
	}
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return msg + ": " + cause.Error()
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Kind() Kind {
	return e.Item.Type
}

func (e *Error) Unwrap() error {
	if e.Item.Cause != nil {
		return e.Item.Cause
	}
	if e.Item.Issues != nil {
		return e.Item.Issues
	}
	return nil
}

// Wrap maps an error raised by Typed onto its tagged form. Both taxonomy
// variants describe the same failure, so a wrapped error keeps the stage,
// the payload and the underlying cause intact. An error that is not part of
// the taxonomy is treated as the transport having thrown.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}

	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged
	}

	var threw *ThrewError
	if errors.As(err, &threw) {
		return NewError(Item{Type: KindFetchThrew, Cause: threw.Cause})
	}

	var notOk *NotOkError
	if errors.As(err, &notOk) {
		return NewError(Item{Type: KindResponseNotOk, Response: notOk.Response})
	}

	var dec *DecodeError
	if errors.As(err, &dec) {
		return NewError(Item{Type: KindDecodeFailed, Cause: dec.Cause})
	}

	var val *ValidationError
	if errors.As(err, &val) {
		return NewError(Item{Type: KindParseFailed, Cause: val.Cause, Issues: val.Issues()})
	}

	return NewError(Item{Type: KindFetchThrew, Cause: err})
}
