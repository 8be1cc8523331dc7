// Package errors provides structured error types for the starlark-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Catchable kinds surface to scripts as ordinary language-level
// exceptions carrying a source Location; use Catchable to test for them.
// InternalError marks invariant violations in host code and never surfaces as
// a script exception. Cancellation is not an error kind at all: context
// cancellation errors pass through this package untouched, see IsCancelled.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseMutate, errors.KindMutation).
//		At(loc).
//		Detail("trying to mutate a frozen object").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.IndexOutOfRange(loc, 7, 3)
//	err := errors.NotFound(loc, "index", `"x"`)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
