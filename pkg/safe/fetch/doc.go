// Package fetch performs a network request and validates the decoded body
// against a schema, reporting exactly one failure mode per attempt.
//
// The pipeline has four ordered stages, each short-circuiting on failure:
// invoke transport, check status, decode JSON body, validate schema. Three
// entry points run the same stages and differ only in how the outcome is
// surfaced:
// - Typed: returns (T, error); the error is one of the four hierarchy types
// - TypedResult: returns safe.Result[T] with a tagged *Error in the failure slot
// - Safe: Typed wrapped in exec.Call, equivalent to TypedResult
//
// The transport (Doer) and validator (schema.Schema) are injected; the
// package owns neither retries, caching, timeouts nor authentication.
package fetch
