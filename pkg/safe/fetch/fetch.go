package fetch

import (
	"context"

	"github.com/ib-77/safefetch/pkg/safe"
	"github.com/ib-77/safefetch/pkg/safe/exec"
	"github.com/ib-77/safefetch/pkg/safe/schema"
	"go.uber.org/zap"
)

// Typed runs the four-stage pipeline (invoke transport, check status, decode
// body, validate schema) and returns the validated value. On failure it
// returns the hierarchy-form error for the stage that failed: *ThrewError,
// *NotOkError, *DecodeError or *ValidationError. The first failing stage
// terminates the pipeline; there are no retries and no fallback stages.
func Typed[T any](ctx context.Context, c *Client, url string, s schema.Schema[T], opts *Options) (T, error) {
	var zero T
	if c == nil {
		c = NewClient()
	}

	invoked := exec.Call(ctx, func(ctx context.Context) (*Response, error) {
		return c.do(ctx, url, opts)
	})
	if invoked.IsFailure() {
		c.log.Debug("transport call failed",
			zap.String("url", url), zap.Error(invoked.Err()))
		return zero, &ThrewError{Cause: invoked.Err()}
	}

	resp := invoked.Value()
	if !resp.OK() {
		// body intentionally left unread for the caller
		c.log.Debug("response not ok",
			zap.String("url", url), zap.Int("status", resp.StatusCode))
		return zero, &NotOkError{Response: resp}
	}

	decoded := exec.Call(ctx, func(context.Context) (any, error) {
		return resp.DecodeJSON()
	})
	if decoded.IsFailure() {
		c.log.Debug("body decode failed",
			zap.String("url", url), zap.Error(decoded.Err()))
		return zero, &DecodeError{Cause: decoded.Err()}
	}

	v, err := s.Parse(decoded.Value())
	if err != nil {
		c.log.Debug("schema validation failed",
			zap.String("url", url), zap.Error(err))
		return zero, &ValidationError{Cause: err}
	}

	return v, nil
}

// TypedResult is the non-raising form of Typed: it always returns a Result
// whose failure slot carries the tagged *Error for the failing stage.
func TypedResult[T any](ctx context.Context, c *Client, url string, s schema.Schema[T], opts *Options) safe.Result[T] {
	v, err := Typed(ctx, c, url, s, opts)
	if err != nil {
		return safe.Fail[T](Wrap(err))
	}
	return safe.Success(v)
}

// Safe wraps Typed in exec.Call and maps whatever it raised into the failure
// form. Behaviorally identical to TypedResult: same kind, same payload, same
// message for the same input.
func Safe[T any](ctx context.Context, c *Client, url string, s schema.Schema[T], opts *Options) safe.Result[T] {
	res := exec.Call(ctx, func(ctx context.Context) (T, error) {
		return Typed(ctx, c, url, s, opts)
	})
	if res.IsFailure() {
		return safe.Fail[T](Wrap(res.Err()))
	}
	return res
}
