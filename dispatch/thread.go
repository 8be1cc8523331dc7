package dispatch

import (
	"context"

	"github.com/wippyai/starlark-runtime/mutability"
)

// Semantics is a snapshot of language feature flags, captured when a thread
// starts and read-only afterwards. Natives that behave differently across
// language versions consult it through the thread.
type Semantics struct {
	// AllowFloat permits natives to return floating-point results.
	AllowFloat bool
}

// DefaultSemantics is the semantics snapshot used when none is supplied.
var DefaultSemantics = Semantics{AllowFloat: true}

// Thread is one logical single-goroutine evaluation of script code. It owns
// a fresh mutability token for the values the evaluation creates, carries
// the context used for cancellation, and snapshots the semantics in force.
//
// A Thread must not be shared across goroutines. Values it created may be
// shared after the token is frozen.
type Thread struct {
	ctx  context.Context
	mu   *mutability.Mutability
	sem  Semantics
	name string
}

// NewThread starts a thread with a fresh open token labeled name and the
// default semantics.
func NewThread(ctx context.Context, name string) *Thread {
	return &Thread{
		ctx:  ctx,
		mu:   mutability.New(name),
		sem:  DefaultSemantics,
		name: name,
	}
}

// SetSemantics replaces the semantics snapshot. Call before evaluation
// begins; the snapshot must not change while script code is running.
func (t *Thread) SetSemantics(sem Semantics) { t.sem = sem }

// Name returns the thread's diagnostic name.
func (t *Thread) Name() string { return t.name }

// Context returns the context the thread was started with.
func (t *Thread) Context() context.Context { return t.ctx }

// Mutability returns the thread's ownership token.
func (t *Thread) Mutability() *mutability.Mutability { return t.mu }

// Semantics returns the thread's semantics snapshot.
func (t *Thread) Semantics() Semantics { return t.sem }

// Freeze freezes the thread's token, publishing every value created under it.
func (t *Thread) Freeze() error { return t.mu.Freeze() }

// CheckCancelled polls for cancellation. The returned error is the context's
// own and must propagate to the top of the evaluation unwrapped.
func (t *Thread) CheckCancelled() error {
	if t.ctx == nil {
		return nil
	}
	return t.ctx.Err()
}
