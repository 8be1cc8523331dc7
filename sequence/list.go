package sequence

import (
	starlark "github.com/wippyai/starlark-runtime"
	"github.com/wippyai/starlark-runtime/errors"
	"github.com/wippyai/starlark-runtime/mutability"
)

// List is the mutable sequence, the value written [1, 2, 3] in scripts. It
// keeps a back-reference to the token it was created under; every mutator
// presents a token and is gated by mutability.CheckMutable.
type List struct {
	elems []starlark.Value
	mu    *mutability.Mutability
}

// NewList creates a list owned by mu, copying the given elements. A nil mu
// produces a list that is immutable from the start.
func NewList(mu *mutability.Mutability, elems ...starlark.Value) *List {
	copied := make([]starlark.Value, len(elems))
	copy(copied, elems)
	return WrapList(mu, copied)
}

// WrapList creates a list owned by mu, taking ownership of the supplied
// slice. Exposed for performance; the caller must not touch the slice
// afterwards.
func WrapList(mu *mutability.Mutability, elems []starlark.Value) *List {
	if mu == nil {
		mu = mutability.Immutable
	}
	return &List{elems: elems, mu: mu}
}

// Mutability returns the owning token.
func (l *List) Mutability() *mutability.Mutability { return l.mu }

// Len returns the number of elements.
func (l *List) Len() int { return len(l.elems) }

// At returns the element at a valid index.
func (l *List) At(i int) starlark.Value { return l.elems[i] }

// Items returns a copy of the elements.
func (l *List) Items() []starlark.Value {
	copied := make([]starlark.Value, len(l.elems))
	copy(copied, l.elems)
	return copied
}

func (l *List) String() string { return reprElems(l.elems, false) }
func (l *List) Type() string   { return "list" }
func (l *List) Truth() bool    { return len(l.elems) > 0 }

// listHashSeed and tupleHashSeed are the variant discriminants folded into
// sequence hashes, keeping a list and a tuple with equal elements distinct.
const (
	listHashSeed  uint32 = 0x5f1e
	tupleHashSeed uint32 = 0x7c3a
)

func (l *List) Hash() (uint32, error) { return hashElements(listHashSeed, l.elems) }

// Equals implements kind-sensitive equality: only another List with equal
// elements in order compares equal.
func (l *List) Equals(y starlark.Value) (bool, error) {
	other, ok := y.(*List)
	if !ok {
		return false, nil
	}
	return sequencesEqual(l, other)
}

// GetIndex resolves a Python-style index and returns the element.
func (l *List) GetIndex(key starlark.Value, loc starlark.Location) (starlark.Value, error) {
	return GetIndex(l, key, loc)
}

// Slice returns a new list holding the standard slice of l. The result is
// owned by mu, which may differ from l's own token; a nil mu yields an
// immutable list.
func (l *List) Slice(start, end, step starlark.Value, loc starlark.Location, mu *mutability.Mutability) (*List, error) {
	indices, err := SliceIndices(start, end, step, len(l.elems), loc)
	if err != nil {
		return nil, err
	}
	elems := make([]starlark.Value, 0, len(indices))
	for _, i := range indices {
		elems = append(elems, l.elems[i])
	}
	return WrapList(mu, elems), nil
}

// Repeat returns a new list with n copies of l's elements; n <= 0 yields an
// empty list. The result is owned by mu.
func (l *List) Repeat(n int, mu *mutability.Mutability) *List {
	if n <= 0 {
		return WrapList(mu, nil)
	}
	elems := make([]starlark.Value, 0, n*len(l.elems))
	for i := 0; i < n; i++ {
		elems = append(elems, l.elems...)
	}
	return WrapList(mu, elems)
}

// Concat returns a new list with the elements of l followed by those of
// other. The result never aliases either input, so later mutations of the
// inputs and the result stay independent.
func Concat(l, other *List, mu *mutability.Mutability) *List {
	elems := make([]starlark.Value, 0, len(l.elems)+len(other.elems))
	elems = append(elems, l.elems...)
	elems = append(elems, other.elems...)
	return WrapList(mu, elems)
}

// Append adds v at the end of the list.
func (l *List) Append(v starlark.Value, loc starlark.Location, mu *mutability.Mutability) error {
	if err := mutability.CheckMutable(l, mu, loc); err != nil {
		return err
	}
	l.elems = append(l.elems, v)
	return nil
}

// Insert adds v at the given position, clamping index into [0, len].
func (l *List) Insert(index int, v starlark.Value, loc starlark.Location, mu *mutability.Mutability) error {
	if err := mutability.CheckMutable(l, mu, loc); err != nil {
		return err
	}
	i := clampIndex(index, len(l.elems))
	l.elems = append(l.elems, nil)
	copy(l.elems[i+1:], l.elems[i:])
	l.elems[i] = v
	return nil
}

// Extend appends every element of items.
func (l *List) Extend(items Sequence, loc starlark.Location, mu *mutability.Mutability) error {
	if err := mutability.CheckMutable(l, mu, loc); err != nil {
		return err
	}
	// Read the length up front: extending a list with itself must terminate.
	n := items.Len()
	for i := 0; i < n; i++ {
		l.elems = append(l.elems, items.At(i))
	}
	return nil
}

// Remove deletes the first element equal to v, failing with a not-found
// error naming v if there is none.
func (l *List) Remove(v starlark.Value, loc starlark.Location, mu *mutability.Mutability) error {
	if err := mutability.CheckMutable(l, mu, loc); err != nil {
		return err
	}
	for i, e := range l.elems {
		eq, err := starlark.Equal(e, v)
		if err != nil {
			return err
		}
		if eq {
			l.removeAt(i)
			return nil
		}
	}
	return errors.NotFound(loc, "remove", starlark.Repr(v))
}

// RemoveAt deletes the element at a Python-style index.
func (l *List) RemoveAt(index int, loc starlark.Location, mu *mutability.Mutability) error {
	if err := mutability.CheckMutable(l, mu, loc); err != nil {
		return err
	}
	i, err := ResolveIndex(starlark.MakeInt(index), len(l.elems), loc)
	if err != nil {
		return err
	}
	l.removeAt(i)
	return nil
}

func (l *List) removeAt(i int) {
	copy(l.elems[i:], l.elems[i+1:])
	l.elems[len(l.elems)-1] = nil
	l.elems = l.elems[:len(l.elems)-1]
}

// Set replaces the element at a Python-style index.
func (l *List) Set(index int, v starlark.Value, loc starlark.Location, mu *mutability.Mutability) error {
	if err := mutability.CheckMutable(l, mu, loc); err != nil {
		return err
	}
	i, err := ResolveIndex(starlark.MakeInt(index), len(l.elems), loc)
	if err != nil {
		return err
	}
	l.elems[i] = v
	return nil
}

// Pop removes and returns the element at a Python-style index; pass -1 for
// the default "last element" behavior. An empty list or an out-of-range
// index fails with a not-found error.
func (l *List) Pop(index int, loc starlark.Location, mu *mutability.Mutability) (starlark.Value, error) {
	if err := mutability.CheckMutable(l, mu, loc); err != nil {
		return nil, err
	}
	i := index
	if i < 0 {
		i += len(l.elems)
	}
	if i < 0 || i >= len(l.elems) {
		return nil, errors.New(errors.PhaseEval, errors.KindNotFound).
			At(loc).
			Detail("pop: index %d out of range (list has %d elements)", index, len(l.elems)).
			Build()
	}
	v := l.elems[i]
	l.removeAt(i)
	return v, nil
}

// Clear removes all elements.
func (l *List) Clear(loc starlark.Location, mu *mutability.Mutability) error {
	if err := mutability.CheckMutable(l, mu, loc); err != nil {
		return err
	}
	for i := range l.elems {
		l.elems[i] = nil
	}
	l.elems = l.elems[:0]
	return nil
}

// IndexOf returns the position of the first element equal to v within the
// clamped range [start, end); both endpoints may be open (None). A miss
// fails with a not-found error naming v.
func (l *List) IndexOf(v, start, end starlark.Value, loc starlark.Location) (int, error) {
	i := 0
	if s, present, err := asEndpoint(start, "start", loc); err != nil {
		return 0, err
	} else if present {
		i = clampIndex(s, len(l.elems))
	}
	j := len(l.elems)
	if e, present, err := asEndpoint(end, "end", loc); err != nil {
		return 0, err
	} else if present {
		j = clampIndex(e, len(l.elems))
	}

	for ; i < j; i++ {
		eq, err := starlark.Equal(l.elems[i], v)
		if err != nil {
			return 0, err
		}
		if eq {
			return i, nil
		}
	}
	return 0, errors.NotFound(loc, "index", starlark.Repr(v))
}
