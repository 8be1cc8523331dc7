package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	starlark "github.com/wippyai/starlark-runtime"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseMutate   Phase = "mutate"   // container mutation
	PhaseIndex    Phase = "index"    // indexing and slicing
	PhaseEval     Phase = "eval"     // native method invocation
	PhaseConvert  Phase = "convert"  // host value to script value conversion
	PhaseRegister Phase = "register" // method registration
)

// Kind categorizes the error
type Kind string

const (
	KindMutation     Kind = "mutation"      // mutate frozen or foreign-owned container
	KindIndex        Kind = "index"         // bad index or slice endpoint
	KindNotFound     Kind = "not_found"     // value or search miss
	KindEvaluation   Kind = "evaluation"    // native failure, illegal return type
	KindInvalidInput Kind = "invalid_input" // bad registration metadata
	KindRegistration Kind = "registration"  // duplicate or failed registration
)

// Error is the structured error type used throughout the runtime. Errors of
// catchable kinds surface to scripts as ordinary exceptions.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Loc    starlark.Location
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Loc.IsValid() {
		b.WriteString(" at ")
		b.WriteString(e.Loc.String())
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap supports errors.Is/As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Is matches errors with the same Phase and Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return (t.Phase == "" || t.Phase == e.Phase) && (t.Kind == "" || t.Kind == e.Kind)
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// At sets the source location
func (b *Builder) At(loc starlark.Location) *Builder {
	b.err.Loc = loc
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MutationFrozen reports an attempt to mutate a container whose token is frozen.
func MutationFrozen(loc starlark.Location) *Error {
	return &Error{
		Phase:  PhaseMutate,
		Kind:   KindMutation,
		Loc:    loc,
		Detail: "trying to mutate a frozen object",
	}
}

// MutationForeign reports an attempt to mutate a container with a token that
// did not create it.
func MutationForeign(loc starlark.Location) *Error {
	return &Error{
		Phase:  PhaseMutate,
		Kind:   KindMutation,
		Loc:    loc,
		Detail: "trying to mutate an object from a different context",
	}
}

// IndexOutOfRange reports an index outside a sequence's bounds.
func IndexOutOfRange(loc starlark.Location, index, length int) *Error {
	return &Error{
		Phase:  PhaseIndex,
		Kind:   KindIndex,
		Loc:    loc,
		Detail: fmt.Sprintf("index out of range (index is %d, but sequence has %d elements)", index, length),
	}
}

// BadIndexType reports an index operand of the wrong type.
func BadIndexType(loc starlark.Location, typeName string) *Error {
	return &Error{
		Phase:  PhaseIndex,
		Kind:   KindIndex,
		Loc:    loc,
		Detail: fmt.Sprintf("indices must be integers, not %s", typeName),
	}
}

// NotFound reports a search miss. op names the failing operation and repr is
// the textual representation of the value searched for.
func NotFound(loc starlark.Location, op, repr string) *Error {
	return &Error{
		Phase:  PhaseEval,
		Kind:   KindNotFound,
		Loc:    loc,
		Detail: fmt.Sprintf("%s: item %s not found in list", op, repr),
	}
}

// Evaluation reports a failed native method invocation.
func Evaluation(loc starlark.Location, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  PhaseEval,
		Kind:   KindEvaluation,
		Loc:    loc,
		Detail: detail,
	}
}

// InvalidReturnType reports a native method whose converted result is not an
// acceptable script value.
func InvalidReturnType(loc starlark.Location, method, goType string) *Error {
	return &Error{
		Phase:  PhaseConvert,
		Kind:   KindEvaluation,
		Loc:    loc,
		Detail: fmt.Sprintf("method %q returns an object of invalid type %s", method, goType),
	}
}

// Registration reports a failed method registration.
func Registration(name, detail string) *Error {
	return &Error{
		Phase:  PhaseRegister,
		Kind:   KindRegistration,
		Detail: fmt.Sprintf("method %q: %s", name, detail),
	}
}

// InvalidInput reports malformed registration metadata.
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// EnsureLocation stamps loc onto err if err is an *Error without one.
// Errors that already carry a location, and all other error types, are
// returned unchanged.
func EnsureLocation(err error, loc starlark.Location) error {
	var e *Error
	if errors.As(err, &e) && !e.Loc.IsValid() {
		e.Loc = loc
	}
	return err
}

// Catchable reports whether err surfaces to scripts as a catchable
// language-level exception. Internal errors and cancellation never do.
func Catchable(err error) bool {
	if IsCancelled(err) {
		return false
	}
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Kind {
	case KindMutation, KindIndex, KindNotFound, KindEvaluation:
		return true
	}
	return false
}

// IsCancelled reports whether err is a cancellation signal. Cancellation
// unwinds the entire evaluation and must never be wrapped into an Error.
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// InternalError reports a violated invariant in host code: a registration
// bug, not a user-facing script error. It is deliberately not an *Error so
// that no catch path can intercept it.
type InternalError struct {
	Detail string
	Cause  error
}

// Internal creates an InternalError.
func Internal(detail string, args ...any) *InternalError {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &InternalError{Detail: detail}
}

// InternalCause creates an InternalError wrapping an underlying fault.
func InternalCause(cause error, detail string, args ...any) *InternalError {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &InternalError{Detail: detail, Cause: cause}
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return "internal error: " + e.Detail + " (caused by: " + e.Cause.Error() + ")"
	}
	return "internal error: " + e.Detail
}

// Unwrap supports errors.Is/As chains.
func (e *InternalError) Unwrap() error { return e.Cause }
