// Package exec normalizes units of work into safe.Result values that never
// escape as panics or raw errors.
//
// Three shapes of work are accepted, each through its own entry point:
// - Call: a synchronous function returning (T, error)
// - Go + Await: an already-started asynchronous computation (Task[T])
// - Run: a function that itself produces an asynchronous computation
//
// All three preserve the original error unaltered in the failure form and
// recover panics into it. None of them hold shared state, so concurrent use
// from independent call sites is safe.
package exec
