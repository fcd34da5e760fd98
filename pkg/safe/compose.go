package safe

import (
	"context"
	"errors"
)

func Validate[T any](ctx context.Context, input Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) Result[T] {

	if input.IsSuccess() {

		if isValid, errMsg := validate(ctx, input.Value()); isValid {
			return Success(input.Value())
		} else {
			return Fail[T](errors.New(errMsg))
		}
	}
	return input
}

// ValidateAll applies every validator to a successful input and aggregates
// the failures with errors.Join. With breakOnError set it stops at the
// first invalid result.
func ValidateAll[T any](ctx context.Context, input Result[T],
	breakOnError bool, // exit on first error
	validators ...func(ctx context.Context, in T) (valid bool, errMsg string)) Result[T] {

	if !input.IsSuccess() {
		return input
	}

	var err error
	for _, validate := range validators {
		if isValid, errMsg := validate(ctx, input.Value()); !isValid {
			e := Errors(err)
			e = append(e, errors.New(errMsg))
			err = errors.Join(e...)

			if breakOnError {
				break
			}
		}
	}

	if IsNil(err) {
		return input
	}
	return Fail[T](err)
}

func Switch[In any, Out any](ctx context.Context,
	input Result[In],
	onSuccess func(ctx context.Context, in In) Result[Out]) Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return FailFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input Result[In],
	onSuccess func(ctx context.Context, in In) Out) Result[Out] {

	if input.IsSuccess() {
		return Success(onSuccess(ctx, input.Value()))
	}
	return FailFrom[In, Out](input)
}

func Try[In any, Out any](ctx context.Context, input Result[In],
	onTryExecute func(ctx context.Context, in In) (Out, error)) Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			return Fail[Out](err)
		}

		return Success(out)
	}

	return FailFrom[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input Result[T],
	onSuccess func(ctx context.Context, r Result[T])) Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func FailOnError[T any](ctx context.Context, input Result[T],
	maybeErr func(ctx context.Context, in T) error) Result[T] {
	if input.IsSuccess() {
		err := maybeErr(ctx, input.Value())
		if err != nil {
			return Fail[T](err)
		}
		return input
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input Result[In],
	onSuccess func(ctx context.Context, in In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onError(ctx, input.Err())
}
