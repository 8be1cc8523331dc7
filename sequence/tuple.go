package sequence

import (
	starlark "github.com/wippyai/starlark-runtime"
	"github.com/wippyai/starlark-runtime/mutability"
)

// Tuple is the immutable sequence, the value written (1, 2, 3) in scripts.
// It carries no mutability token: there is nothing to gate.
type Tuple []starlark.Value

// NewTuple creates a tuple, copying the given elements.
func NewTuple(elems ...starlark.Value) Tuple {
	copied := make(Tuple, len(elems))
	copy(copied, elems)
	return copied
}

// Len returns the number of elements.
func (t Tuple) Len() int { return len(t) }

// At returns the element at a valid index.
func (t Tuple) At(i int) starlark.Value { return t[i] }

func (t Tuple) String() string { return reprElems(t, true) }
func (t Tuple) Type() string   { return "tuple" }
func (t Tuple) Truth() bool    { return len(t) > 0 }

func (t Tuple) Hash() (uint32, error) { return hashElements(tupleHashSeed, t) }

// Equals implements kind-sensitive equality: only another Tuple with equal
// elements in order compares equal, never a List.
func (t Tuple) Equals(y starlark.Value) (bool, error) {
	other, ok := y.(Tuple)
	if !ok {
		return false, nil
	}
	return sequencesEqual(t, other)
}

// GetIndex resolves a Python-style index and returns the element.
func (t Tuple) GetIndex(key starlark.Value, loc starlark.Location) (starlark.Value, error) {
	return GetIndex(t, key, loc)
}

// Slice returns the standard slice of t. The result is always a Tuple: a
// caller-supplied token is deliberately ignored, tuples are permanently
// immutable regardless of who asks.
func (t Tuple) Slice(start, end, step starlark.Value, loc starlark.Location, _ *mutability.Mutability) (Tuple, error) {
	indices, err := SliceIndices(start, end, step, len(t), loc)
	if err != nil {
		return nil, err
	}
	elems := make(Tuple, 0, len(indices))
	for _, i := range indices {
		elems = append(elems, t[i])
	}
	return elems, nil
}

// Repeat returns a tuple with n copies of t's elements; n <= 0 yields the
// empty tuple. The token parameter is ignored for the same reason as in
// Slice.
func (t Tuple) Repeat(n int, _ *mutability.Mutability) Tuple {
	if n <= 0 {
		return Tuple{}
	}
	elems := make(Tuple, 0, n*len(t))
	for i := 0; i < n; i++ {
		elems = append(elems, t...)
	}
	return elems
}

// Concat returns a fresh tuple with the elements of t followed by those of
// other.
func (t Tuple) Concat(other Tuple) Tuple {
	elems := make(Tuple, 0, len(t)+len(other))
	elems = append(elems, t...)
	elems = append(elems, other...)
	return elems
}
