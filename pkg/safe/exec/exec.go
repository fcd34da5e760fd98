package exec

import (
	"context"

	"github.com/ib-77/safefetch/pkg/safe"
	"github.com/zeebo/errs"
)

// Task is an in-flight asynchronous computation of T started by Go.
type Task[T any] struct {
	done chan struct{}
	res  safe.Result[T]
}

// Done is closed when the computation has finished.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Call invokes fn and converts its outcome into a Result. A returned error
// becomes the failure form unaltered; a panic inside fn is recovered and
// wrapped into the failure form; otherwise the success form carries the
// produced value.
func Call[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) (res safe.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = safe.Fail[T](errs.New("recovered from panic: %v", r))
		}
	}()

	v, err := fn(ctx)
	if err != nil {
		return safe.Fail[T](err)
	}
	return safe.Success(v)
}

// Go starts fn on its own goroutine and returns the in-flight computation.
// A panic in fn never crosses the goroutine boundary; it ends up in the
// task's failure result.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}

	go func() {
		defer close(t.done)
		t.res = Call(ctx, fn)
	}()

	return t
}

// Await waits for an in-flight computation to finish, or for ctx to be
// cancelled, whichever comes first. Cancellation yields the failure form
// carrying ctx.Err().
func Await[T any](ctx context.Context, t *Task[T]) safe.Result[T] {
	if t == nil {
		return safe.Fail[T](errs.New("await: nil task"))
	}

	select {
	case <-t.done:
		return t.res
	case <-ctx.Done():
		return safe.Fail[T](ctx.Err())
	}
}

// Run invokes fn, which must produce an in-flight computation, then awaits
// it. A panic while producing the task is recovered into the failure form,
// same as Call.
func Run[T any](ctx context.Context, fn func(ctx context.Context) *Task[T]) (res safe.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = safe.Fail[T](errs.New("recovered from panic: %v", r))
		}
	}()

	return Await(ctx, fn(ctx))
}
