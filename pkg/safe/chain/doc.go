// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of safe.Result values.
//
// - From/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the successful value
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Handy for post-processing fetch results without nested branching.
package chain
