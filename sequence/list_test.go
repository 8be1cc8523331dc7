package sequence

import (
	stderrors "errors"
	"testing"

	starlark "github.com/wippyai/starlark-runtime"
	"github.com/wippyai/starlark-runtime/errors"
	"github.com/wippyai/starlark-runtime/mutability"
)

func isMutationErr(err error) bool {
	return stderrors.Is(err, &errors.Error{Kind: errors.KindMutation})
}

func TestList_Append(t *testing.T) {
	mu := mutability.New("test")
	l := NewList(mu, ints(1, 2)...)

	if err := l.Append(starlark.MakeInt(3), starlark.Location{}, mu); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	mustEqualInts(t, l, []int{1, 2, 3})
}

func TestList_Append_ForeignToken(t *testing.T) {
	mu := mutability.New("owner")
	other := mutability.New("other")
	l := NewList(mu, ints(1, 2)...)

	err := l.Append(starlark.MakeInt(3), starlark.Location{}, other)
	if !isMutationErr(err) {
		t.Fatalf("got %v, want mutation error", err)
	}
	// The failed mutation must leave the list unchanged.
	mustEqualInts(t, l, []int{1, 2})
}

func TestList_FrozenReadsUnchanged(t *testing.T) {
	mu := mutability.New("test")
	l := NewList(mu, ints(1, 2, 3)...)

	before, err := l.GetIndex(starlark.MakeInt(1), starlark.Location{})
	if err != nil {
		t.Fatal(err)
	}
	if err := mu.Freeze(); err != nil {
		t.Fatal(err)
	}

	if err := l.Append(starlark.MakeInt(4), starlark.Location{}, mu); !isMutationErr(err) {
		t.Fatalf("append after freeze: got %v, want mutation error", err)
	}
	after, err := l.GetIndex(starlark.MakeInt(1), starlark.Location{})
	if err != nil {
		t.Fatal(err)
	}
	if before != after || l.Len() != 3 {
		t.Fatalf("reads changed across freeze: before %s, after %s", starlark.Repr(before), starlark.Repr(after))
	}
}

func TestList_Insert(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []int
	}{
		{"middle", 1, []int{1, 9, 2, 3}},
		{"front", 0, []int{9, 1, 2, 3}},
		{"clamped past end", 10, []int{1, 2, 3, 9}},
		{"negative wraps", -1, []int{1, 2, 9, 3}},
		{"clamped past start", -10, []int{9, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mu := mutability.New("test")
			l := NewList(mu, ints(1, 2, 3)...)
			if err := l.Insert(tt.index, starlark.MakeInt(9), starlark.Location{}, mu); err != nil {
				t.Fatal(err)
			}
			mustEqualInts(t, l, tt.want)
		})
	}
}

func TestList_Extend(t *testing.T) {
	mu := mutability.New("test")
	l := NewList(mu, ints(1, 2)...)

	if err := l.Extend(NewTuple(ints(3, 4)...), starlark.Location{}, mu); err != nil {
		t.Fatal(err)
	}
	mustEqualInts(t, l, []int{1, 2, 3, 4})

	// Extending a list with itself terminates and doubles it.
	if err := l.Extend(l, starlark.Location{}, mu); err != nil {
		t.Fatal(err)
	}
	mustEqualInts(t, l, []int{1, 2, 3, 4, 1, 2, 3, 4})
}

func TestList_Remove(t *testing.T) {
	mu := mutability.New("test")
	l := NewList(mu, starlark.String("a"), starlark.String("b"), starlark.String("a"))

	if err := l.Remove(starlark.String("a"), starlark.Location{}, mu); err != nil {
		t.Fatal(err)
	}
	if l.Len() != 2 || l.At(0) != starlark.String("b") {
		t.Fatalf("remove deleted wrong element: %s", l.String())
	}

	err := l.Remove(starlark.String("z"), starlark.Location{}, mu)
	if !isNotFoundErr(err) {
		t.Fatalf("got %v, want not-found error", err)
	}
}

func TestList_RemoveAt(t *testing.T) {
	mu := mutability.New("test")
	l := NewList(mu, ints(1, 2, 3)...)

	if err := l.RemoveAt(-1, starlark.Location{}, mu); err != nil {
		t.Fatal(err)
	}
	mustEqualInts(t, l, []int{1, 2})

	if err := l.RemoveAt(5, starlark.Location{}, mu); !isIndexErr(err) {
		t.Fatalf("got %v, want index error", err)
	}
}

func TestList_Set(t *testing.T) {
	mu := mutability.New("test")
	l := NewList(mu, ints(1, 2, 3)...)

	if err := l.Set(1, starlark.MakeInt(9), starlark.Location{}, mu); err != nil {
		t.Fatal(err)
	}
	mustEqualInts(t, l, []int{1, 9, 3})

	if err := l.Set(3, starlark.MakeInt(9), starlark.Location{}, mu); !isIndexErr(err) {
		t.Fatalf("got %v, want index error", err)
	}
}

func TestList_Pop(t *testing.T) {
	mu := mutability.New("test")
	l := NewList(mu, ints(1, 2, 3)...)

	v, err := l.Pop(-1, starlark.Location{}, mu)
	if err != nil {
		t.Fatal(err)
	}
	if v != starlark.MakeInt(3) {
		t.Fatalf("pop() = %s, want 3", starlark.Repr(v))
	}
	mustEqualInts(t, l, []int{1, 2})

	if _, err := l.Pop(5, starlark.Location{}, mu); !isNotFoundErr(err) {
		t.Fatalf("out-of-range pop: got %v, want not-found error", err)
	}
}

func TestList_Pop_Empty(t *testing.T) {
	mu := mutability.New("test")
	l := NewList(mu)

	_, err := l.Pop(-1, starlark.Location{}, mu)
	if !isNotFoundErr(err) {
		t.Fatalf("got %v, want not-found error", err)
	}
}

func TestList_Clear(t *testing.T) {
	mu := mutability.New("test")
	l := NewList(mu, ints(1, 2, 3)...)

	if err := l.Clear(starlark.Location{}, mu); err != nil {
		t.Fatal(err)
	}
	if l.Len() != 0 || l.Truth() {
		t.Fatalf("list not empty after clear: %s", l.String())
	}
}

func TestList_IndexOf(t *testing.T) {
	l := NewList(nil, starlark.String("a"), starlark.String("b"), starlark.String("x"))

	i, err := l.IndexOf(starlark.String("x"), starlark.None, starlark.None, starlark.Location{})
	if err != nil {
		t.Fatal(err)
	}
	if i != 2 {
		t.Fatalf("index(x) = %d, want 2", i)
	}

	short := NewList(nil, starlark.String("a"), starlark.String("b"))
	if _, err := short.IndexOf(starlark.String("x"), starlark.None, starlark.None, starlark.Location{}); !isNotFoundErr(err) {
		t.Fatalf("got %v, want not-found error", err)
	}

	// A clamped window excludes matches outside it.
	if _, err := l.IndexOf(starlark.String("a"), starlark.MakeInt(1), starlark.None, starlark.Location{}); !isNotFoundErr(err) {
		t.Fatalf("windowed search found excluded match: %v", err)
	}
}

func TestList_Repeat(t *testing.T) {
	mu := mutability.New("test")
	l := NewList(mu, ints(1, 2)...)

	mustEqualInts(t, l.Repeat(3, mu), []int{1, 2, 1, 2, 1, 2})
	mustEqualInts(t, l.Repeat(0, mu), nil)
	mustEqualInts(t, l.Repeat(-2, mu), nil)
}

func TestConcat_Independence(t *testing.T) {
	mu := mutability.New("test")
	a := NewList(mu, ints(1, 2)...)
	b := NewList(mu, ints(3)...)

	c := Concat(a, b, mu)
	mustEqualInts(t, c, []int{1, 2, 3})

	// Mutating the result must not touch the inputs, and vice versa.
	if err := c.Set(0, starlark.MakeInt(9), starlark.Location{}, mu); err != nil {
		t.Fatal(err)
	}
	if err := a.Append(starlark.MakeInt(7), starlark.Location{}, mu); err != nil {
		t.Fatal(err)
	}
	mustEqualInts(t, a, []int{1, 2, 7})
	mustEqualInts(t, c, []int{9, 2, 3})
}

func TestList_SliceHonorsCallerToken(t *testing.T) {
	owner := mutability.New("owner")
	caller := mutability.New("caller")
	l := NewList(owner, ints(1, 2, 3)...)

	s, err := l.Slice(starlark.None, starlark.None, starlark.None, starlark.Location{}, caller)
	if err != nil {
		t.Fatal(err)
	}
	if s.Mutability() != caller {
		t.Fatal("slice does not carry the caller's token")
	}
	if err := s.Append(starlark.MakeInt(4), starlark.Location{}, caller); err != nil {
		t.Fatalf("caller cannot mutate its own slice: %v", err)
	}
}

func TestList_Equality(t *testing.T) {
	a := NewList(nil, ints(1, 2)...)
	b := NewList(nil, ints(1, 2)...)
	c := NewList(nil, ints(2, 1)...)
	tup := NewTuple(ints(1, 2)...)

	if eq, err := starlark.Equal(a, b); err != nil || !eq {
		t.Errorf("equal lists compare unequal: (%v, %v)", eq, err)
	}
	if eq, err := starlark.Equal(a, c); err != nil || eq {
		t.Errorf("reordered lists compare equal: (%v, %v)", eq, err)
	}
	if eq, err := starlark.Equal(a, tup); err != nil || eq {
		t.Errorf("list equals tuple: (%v, %v)", eq, err)
	}
}

func TestList_HashVariantSensitive(t *testing.T) {
	l := NewList(nil, ints(1, 2)...)
	tup := NewTuple(ints(1, 2)...)

	lh, err := l.Hash()
	if err != nil {
		t.Fatal(err)
	}
	th, err := tup.Hash()
	if err != nil {
		t.Fatal(err)
	}
	if lh == th {
		t.Fatal("list and tuple with equal elements hash identically")
	}

	l2 := NewList(nil, ints(1, 2)...)
	l2h, err := l2.Hash()
	if err != nil {
		t.Fatal(err)
	}
	if lh != l2h {
		t.Fatal("equal lists hash differently")
	}
}

func TestList_Repr(t *testing.T) {
	l := NewList(nil, starlark.MakeInt(1), starlark.String("a"), starlark.None)
	if got := l.String(); got != `[1, "a", None]` {
		t.Errorf("repr = %s", got)
	}
	if got := NewList(nil).String(); got != "[]" {
		t.Errorf("empty repr = %s", got)
	}
}

func TestNewList_CopiesInput(t *testing.T) {
	mu := mutability.New("test")
	src := ints(1, 2)
	l := NewList(mu, src...)
	src[0] = starlark.MakeInt(9)
	mustEqualInts(t, l, []int{1, 2})
}
