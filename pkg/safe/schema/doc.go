// Package schema defines the validator capability consumed by the fetch
// pipeline and a structured, path-qualified mismatch model (Issue/Issues).
//
// Of[T] gives a ready-made JSON round-trip schema; Func[T] adapts any
// validation function. Custom validators only need to return Issues to keep
// their mismatches path-addressable by callers.
package schema
