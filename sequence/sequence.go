package sequence

import (
	"strings"

	starlark "github.com/wippyai/starlark-runtime"
	"github.com/wippyai/starlark-runtime/errors"
)

// Sequence is the capability interface shared by List and Tuple. Indexing,
// slicing and printing helpers are written against it so the container logic
// lives in one place.
type Sequence interface {
	starlark.Value
	// Len returns the number of elements.
	Len() int
	// At returns the element at a valid index i, 0 <= i < Len().
	At(i int) starlark.Value
}

// GetIndex resolves a Python-style index (negative values wrap around) and
// returns the element. Out-of-range or non-integer keys fail with an
// index-kind error carrying loc.
func GetIndex(seq Sequence, key starlark.Value, loc starlark.Location) (starlark.Value, error) {
	i, err := ResolveIndex(key, seq.Len(), loc)
	if err != nil {
		return nil, err
	}
	return seq.At(i), nil
}

// Contains reports whether any element of seq equals v.
func Contains(seq Sequence, v starlark.Value) (bool, error) {
	for i := 0; i < seq.Len(); i++ {
		eq, err := starlark.Equal(seq.At(i), v)
		if err != nil {
			return false, err
		}
		if eq {
			return true, nil
		}
	}
	return false, nil
}

// ResolveIndex converts a script index into a position in a sequence of
// length n: negative indices count from the end, and anything still outside
// [0, n) is an error.
func ResolveIndex(key starlark.Value, n int, loc starlark.Location) (int, error) {
	k, ok := key.(starlark.Int)
	if !ok {
		return 0, errors.BadIndexType(loc, starlark.TypeName(key))
	}
	i := int(k)
	orig := i
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, errors.IndexOutOfRange(loc, orig, n)
	}
	return i, nil
}

// clampIndex wraps a negative endpoint then clamps the result into [0, n].
// Used for insert positions and search ranges, which never fail.
func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// asEndpoint interprets a slice or range endpoint: None means "open", an Int
// is taken literally, anything else is an index-kind error.
func asEndpoint(v starlark.Value, what string, loc starlark.Location) (int, bool, error) {
	switch v := v.(type) {
	case nil, starlark.NoneType:
		return 0, false, nil
	case starlark.Int:
		return int(v), true, nil
	default:
		return 0, false, errors.New(errors.PhaseIndex, errors.KindIndex).
			At(loc).
			Detail("slice %s must be an integer, not %s", what, starlark.TypeName(v)).
			Build()
	}
}

// SliceIndices computes the standard Python slice index walk for a sequence
// of length n: start and end may be open (None), endpoints are clamped to
// bounds, and step may be negative. A zero step is an error.
func SliceIndices(start, end, step starlark.Value, n int, loc starlark.Location) ([]int, error) {
	stepVal := 1
	if s, present, err := asEndpoint(step, "step", loc); err != nil {
		return nil, err
	} else if present {
		stepVal = s
	}
	if stepVal == 0 {
		return nil, errors.New(errors.PhaseIndex, errors.KindIndex).
			At(loc).
			Detail("slice step cannot be zero").
			Build()
	}

	startVal, startSet, err := asEndpoint(start, "start", loc)
	if err != nil {
		return nil, err
	}
	endVal, endSet, err := asEndpoint(end, "end", loc)
	if err != nil {
		return nil, err
	}

	var from, to int
	if stepVal > 0 {
		from, to = 0, n
		if startSet {
			from = clampSliceEndpoint(startVal, n, 0)
		}
		if endSet {
			to = clampSliceEndpoint(endVal, n, 0)
		}
	} else {
		from, to = n-1, -1
		if startSet {
			from = clampSliceEndpoint(startVal, n, -1)
		}
		if endSet {
			to = clampSliceEndpoint(endVal, n, -1)
		}
	}

	var indices []int
	if stepVal > 0 {
		for i := from; i < to; i += stepVal {
			indices = append(indices, i)
		}
	} else {
		for i := from; i > to; i += stepVal {
			indices = append(indices, i)
		}
	}
	return indices, nil
}

// clampSliceEndpoint wraps a negative endpoint then clamps it: for a
// positive step the valid range is [0, n], for a negative step [-1, n-1].
func clampSliceEndpoint(i, n, low int) int {
	if i < 0 {
		i += n
	}
	if i < low {
		return low
	}
	if high := n + low; i > high {
		return high
	}
	return i
}

// sequencesEqual reports elementwise equality of two same-variant sequences.
func sequencesEqual(x, y Sequence) (bool, error) {
	if x.Len() != y.Len() {
		return false, nil
	}
	for i := 0; i < x.Len(); i++ {
		eq, err := starlark.Equal(x.At(i), y.At(i))
		if err != nil {
			return false, err
		}
		if !eq {
			return false, nil
		}
	}
	return true, nil
}

// hashElements folds the ordered element hashes into a variant seed.
func hashElements(seed uint32, elems []starlark.Value) (uint32, error) {
	h := seed
	for _, e := range elems {
		eh, err := e.Hash()
		if err != nil {
			return 0, err
		}
		h = h*31 + eh
	}
	return h, nil
}

// reprElems prints elements in list or tuple notation, with the trailing
// comma a one-element tuple needs to round-trip.
func reprElems(elems []starlark.Value, tuple bool) string {
	var b strings.Builder
	opener, closer := "[", "]"
	if tuple {
		opener, closer = "(", ")"
	}
	b.WriteString(opener)
	for i, e := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(starlark.Repr(e))
	}
	if tuple && len(elems) == 1 {
		b.WriteString(",")
	}
	b.WriteString(closer)
	return b.String()
}
