package sequence

import (
	"testing"

	starlark "github.com/wippyai/starlark-runtime"
	"github.com/wippyai/starlark-runtime/mutability"
)

func TestTuple_SliceIgnoresToken(t *testing.T) {
	tup := NewTuple(ints(1, 2, 3, 4)...)
	mu := mutability.New("caller")

	s, err := tup.Slice(starlark.MakeInt(1), starlark.MakeInt(3), starlark.None, starlark.Location{}, mu)
	if err != nil {
		t.Fatal(err)
	}
	mustEqualInts(t, s, []int{2, 3})
	if s.Type() != "tuple" {
		t.Fatalf("tuple slice is a %s", s.Type())
	}
}

func TestTuple_Repeat(t *testing.T) {
	tup := NewTuple(ints(1, 2)...)
	mustEqualInts(t, tup.Repeat(2, nil), []int{1, 2, 1, 2})
	mustEqualInts(t, tup.Repeat(-1, nil), nil)
}

func TestTuple_Concat(t *testing.T) {
	a := NewTuple(ints(1)...)
	b := NewTuple(ints(2, 3)...)
	c := a.Concat(b)
	mustEqualInts(t, c, []int{1, 2, 3})
	// Fresh backing: growing c must not disturb a or b.
	if len(a) != 1 || len(b) != 2 {
		t.Fatal("concat aliased an input")
	}
}

func TestTuple_Equality(t *testing.T) {
	a := NewTuple(ints(1, 2)...)
	b := NewTuple(ints(1, 2)...)
	l := NewList(nil, ints(1, 2)...)

	if eq, err := starlark.Equal(a, b); err != nil || !eq {
		t.Errorf("equal tuples compare unequal: (%v, %v)", eq, err)
	}
	if eq, err := starlark.Equal(a, l); err != nil || eq {
		t.Errorf("tuple equals list: (%v, %v)", eq, err)
	}
}

func TestTuple_Repr(t *testing.T) {
	tests := []struct {
		name string
		tup  Tuple
		want string
	}{
		{"empty", NewTuple(), "()"},
		{"single needs trailing comma", NewTuple(starlark.MakeInt(1)), "(1,)"},
		{"pair", NewTuple(starlark.MakeInt(1), starlark.String("a")), `(1, "a")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tup.String(); got != tt.want {
				t.Errorf("repr = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTuple_Truth(t *testing.T) {
	if NewTuple().Truth() {
		t.Error("empty tuple is truthy")
	}
	if !NewTuple(starlark.MakeInt(0)).Truth() {
		t.Error("non-empty tuple is falsy")
	}
}
