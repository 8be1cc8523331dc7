package mutability

import (
	"sync/atomic"

	starlark "github.com/wippyai/starlark-runtime"
	"github.com/wippyai/starlark-runtime/errors"
)

// Mutability is an ownership token. Containers record the token they were
// created under; every mutation presents a token and succeeds only if it is
// the same, still-open token. Token identity is pointer identity.
type Mutability struct {
	label  string
	frozen atomic.Bool
}

// New creates an open token. The label names the owning context in
// diagnostics, e.g. a module or file being evaluated.
func New(label string) *Mutability {
	return &Mutability{label: label}
}

// Immutable is the shared token for values that are immutable from
// construction. It is frozen from the start and never owned by any thread.
var Immutable = func() *Mutability {
	m := &Mutability{label: "IMMUTABLE"}
	m.frozen.Store(true)
	return m
}()

// Label returns the diagnostic label given at creation.
func (m *Mutability) Label() string { return m.label }

// IsFrozen reports whether the token has been frozen.
func (m *Mutability) IsFrozen() bool { return m.frozen.Load() }

// Freeze makes the one-way transition to frozen. It is not idempotent:
// freezing an already-frozen token is a caller bug and returns an
// InternalError. Callers that may race themselves must track freeze state
// externally; distinct threads never share an open token.
func (m *Mutability) Freeze() error {
	if !m.frozen.CompareAndSwap(false, true) {
		return errors.Internal("mutability %q is already frozen", m.label)
	}
	return nil
}

func (m *Mutability) String() string {
	if m.IsFrozen() {
		return "[" + m.label + "] (frozen)"
	}
	return "[" + m.label + "]"
}

// Freezable is the capability interface of values governed by a token.
type Freezable interface {
	// Mutability returns the token the value was created under.
	Mutability() *Mutability
}

// CheckMutable verifies that v may be mutated using token mu: mu must be the
// token v was created under, and must not be frozen. On violation it returns
// a mutation error stamped with loc; otherwise it is a no-op.
func CheckMutable(v Freezable, mu *Mutability, loc starlark.Location) error {
	owner := v.Mutability()
	if owner.IsFrozen() {
		return errors.MutationFrozen(loc)
	}
	if owner != mu {
		return errors.MutationForeign(loc)
	}
	return nil
}
