package chain

import (
	"context"

	"github.com/ib-77/safefetch/pkg/safe"
)

type Chain[T any] struct {
	ctx context.Context
	res safe.Result[T]
}

func From[T any](ctx context.Context, r safe.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return From(ctx, safe.Success(v))
}

func (c Chain[T]) Result() safe.Result[T] {
	return c.res
}

// Then composes functions that already return safe.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) safe.Result[T]) Chain[T] {
	if !c.res.IsSuccess() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

// ThenTry composes functions that return (T, error)
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if !c.res.IsSuccess() {
		return c
	}

	v, err := try(c.ctx, c.res.Value())
	if err != nil {
		return Chain[T]{ctx: c.ctx, res: safe.Fail[T](err)}
	}
	return Chain[T]{ctx: c.ctx, res: safe.Success(v)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if !c.res.IsSuccess() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: safe.Success(onSuccess(c.ctx, c.res.Value()))}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if c.res.IsSuccess() && onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to safe.Finally
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
) T {
	return safe.Finally(c.ctx, c.res, onSuccess, onFailure)
}
