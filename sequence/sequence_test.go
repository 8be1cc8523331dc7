package sequence

import (
	stderrors "errors"
	"testing"

	starlark "github.com/wippyai/starlark-runtime"
	"github.com/wippyai/starlark-runtime/errors"
	"github.com/wippyai/starlark-runtime/mutability"
)

func ints(ns ...int) []starlark.Value {
	vals := make([]starlark.Value, len(ns))
	for i, n := range ns {
		vals[i] = starlark.MakeInt(n)
	}
	return vals
}

func mustEqualInts(t *testing.T, seq Sequence, want []int) {
	t.Helper()
	if seq.Len() != len(want) {
		t.Fatalf("length = %d, want %d (%s)", seq.Len(), len(want), seq.String())
	}
	for i, n := range want {
		if got := seq.At(i); got != starlark.MakeInt(n) {
			t.Fatalf("element %d = %s, want %d", i, starlark.Repr(got), n)
		}
	}
}

func isIndexErr(err error) bool {
	return stderrors.Is(err, &errors.Error{Kind: errors.KindIndex})
}

func isNotFoundErr(err error) bool {
	return stderrors.Is(err, &errors.Error{Kind: errors.KindNotFound})
}

func TestResolveIndex(t *testing.T) {
	loc := starlark.At("f.star", 1, 1)

	tests := []struct {
		name    string
		key     starlark.Value
		n       int
		want    int
		wantErr bool
	}{
		{"first", starlark.MakeInt(0), 3, 0, false},
		{"last", starlark.MakeInt(2), 3, 2, false},
		{"negative wraps", starlark.MakeInt(-1), 3, 2, false},
		{"negative wraps to first", starlark.MakeInt(-3), 3, 0, false},
		{"past end", starlark.MakeInt(3), 3, 0, true},
		{"past start", starlark.MakeInt(-4), 3, 0, true},
		{"empty sequence", starlark.MakeInt(0), 0, 0, true},
		{"non-integer", starlark.String("x"), 3, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveIndex(tt.key, tt.n, loc)
			if tt.wantErr {
				if !isIndexErr(err) {
					t.Fatalf("got (%d, %v), want index error", got, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveIndex = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSliceIndices(t *testing.T) {
	none := starlark.None
	mk := starlark.MakeInt

	tests := []struct {
		name             string
		start, end, step starlark.Value
		n                int
		want             []int
		wantErr          bool
	}{
		{"full open", none, none, none, 4, []int{0, 1, 2, 3}, false},
		{"simple range", mk(1), mk(3), none, 4, []int{1, 2}, false},
		{"stride two", none, none, mk(2), 4, []int{0, 2}, false},
		{"negative step full", none, none, mk(-1), 4, []int{3, 2, 1, 0}, false},
		{"negative step bounded", mk(3), mk(0), mk(-1), 4, []int{3, 2, 1}, false},
		{"negative endpoints", mk(-3), mk(-1), none, 4, []int{1, 2}, false},
		{"clamped past end", mk(1), mk(100), none, 4, []int{1, 2, 3}, false},
		{"clamped before start", mk(-100), mk(2), none, 4, []int{0, 1}, false},
		{"empty when inverted", mk(3), mk(1), none, 4, nil, false},
		{"empty sequence", none, none, none, 0, nil, false},
		{"zero step", none, none, mk(0), 4, nil, true},
		{"bad start type", starlark.String("a"), none, none, 4, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SliceIndices(tt.start, tt.end, tt.step, tt.n, starlark.Location{})
			if tt.wantErr {
				if !isIndexErr(err) {
					t.Fatalf("got (%v, %v), want index error", got, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("indices = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("indices = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

// Slicing a slice with compensating bounds reproduces the sub-range of the
// original.
func TestSliceOfSlice(t *testing.T) {
	mu := mutability.New("test")
	l := NewList(mu, ints(0, 1, 2, 3, 4, 5, 6, 7)...)

	outer, err := l.Slice(starlark.MakeInt(1), starlark.MakeInt(7), starlark.MakeInt(2), starlark.Location{}, mu)
	if err != nil {
		t.Fatal(err)
	}
	mustEqualInts(t, outer, []int{1, 3, 5})

	inner, err := outer.Slice(starlark.MakeInt(1), starlark.None, starlark.None, starlark.Location{}, mu)
	if err != nil {
		t.Fatal(err)
	}
	// Same elements as slicing the original at the composed positions.
	mustEqualInts(t, inner, []int{3, 5})
}

func TestGetIndexShared(t *testing.T) {
	l := NewList(nil, ints(10, 20, 30)...)
	tup := NewTuple(ints(10, 20, 30)...)

	for _, seq := range []Sequence{l, tup} {
		v, err := GetIndex(seq, starlark.MakeInt(-1), starlark.Location{})
		if err != nil {
			t.Fatalf("%s: %v", seq.Type(), err)
		}
		if v != starlark.MakeInt(30) {
			t.Errorf("%s: GetIndex(-1) = %s, want 30", seq.Type(), starlark.Repr(v))
		}

		_, err = GetIndex(seq, starlark.MakeInt(3), starlark.At("f.star", 2, 1))
		if !isIndexErr(err) {
			t.Errorf("%s: out-of-range returned %v, want index error", seq.Type(), err)
		}
	}
}

func TestContains(t *testing.T) {
	l := NewList(nil, starlark.String("a"), starlark.String("b"))
	if ok, err := Contains(l, starlark.String("b")); err != nil || !ok {
		t.Errorf("Contains(b) = (%v, %v), want true", ok, err)
	}
	if ok, err := Contains(l, starlark.String("z")); err != nil || ok {
		t.Errorf("Contains(z) = (%v, %v), want false", ok, err)
	}
}
