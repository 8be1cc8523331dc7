package starlark

import (
	"fmt"
	"math"
	"strconv"
)

// Value is the interface implemented by every runtime value.
type Value interface {
	// String returns the value's source-like representation, as produced by
	// the repr builtin.
	String() string
	// Type returns the name of the value's type, e.g. "list" or "int".
	Type() string
	// Truth reports the value's truth value.
	Truth() bool
	// Hash returns a 32-bit digest of the value, or an error if the value
	// is unhashable. Equal values have equal digests.
	Hash() (uint32, error)
}

// Comparable is implemented by values that define their own equality.
// Equality is kind-sensitive: a value never equals a value of a different
// concrete type, even when the contents match.
type Comparable interface {
	Value
	Equals(y Value) (bool, error)
}

// Equal reports whether two values are equal under script semantics.
func Equal(x, y Value) (bool, error) {
	if x == nil || y == nil {
		return x == y, nil
	}
	if xc, ok := x.(Comparable); ok {
		return xc.Equals(y)
	}
	// Scalars are comparable Go values.
	return x == y, nil
}

// NoneType is the type of None.
type NoneType byte

// None is the canonical "no value" value, returned by natives with no result.
const None = NoneType(0)

func (NoneType) String() string        { return "None" }
func (NoneType) Type() string          { return "NoneType" }
func (NoneType) Truth() bool           { return false }
func (NoneType) Hash() (uint32, error) { return 0x1a1e9e7b, nil }

// Bool is the type of boolean values.
type Bool bool

const (
	False Bool = false
	True  Bool = true
)

func (b Bool) String() string {
	if b {
		return "True"
	}
	return "False"
}
func (b Bool) Type() string { return "bool" }
func (b Bool) Truth() bool  { return bool(b) }
func (b Bool) Hash() (uint32, error) {
	if b {
		return 0x2e1b, nil
	}
	return 0x9d43, nil
}

// Int is the language's numeric type.
type Int int64

// MakeInt boxes a Go int as an Int.
func MakeInt(i int) Int { return Int(i) }

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }
func (i Int) Type() string   { return "int" }
func (i Int) Truth() bool    { return i != 0 }
func (i Int) Hash() (uint32, error) {
	v := uint64(i)
	return uint32(v) ^ uint32(v>>32), nil
}

// String is the type of string values.
type String string

func (s String) String() string { return strconv.Quote(string(s)) }
func (s String) Type() string   { return "string" }
func (s String) Truth() bool    { return len(s) > 0 }
func (s String) Hash() (uint32, error) {
	// FNV-1a over the bytes.
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h, nil
}

// GoString returns the underlying Go string.
func (s String) GoString() string { return string(s) }

// Float is the type of floating-point values.
type Float float64

func (f Float) String() string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 64)
	// Keep a float marker so repr round-trips as a float literal.
	if !containsAny(s, ".eE") && !math.IsInf(float64(f), 0) && !math.IsNaN(float64(f)) {
		s += ".0"
	}
	return s
}
func (f Float) Type() string { return "float" }
func (f Float) Truth() bool  { return f != 0 }
func (f Float) Hash() (uint32, error) {
	bits := math.Float64bits(float64(f))
	return uint32(bits) ^ uint32(bits>>32), nil
}

func containsAny(s, chars string) bool {
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(chars); j++ {
			if s[i] == chars[j] {
				return true
			}
		}
	}
	return false
}

// Repr returns the source-like representation of a value, tolerating nil.
func Repr(v Value) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}

// TypeName returns the script-level type name of v, tolerating non-Values
// for diagnostics.
func TypeName(v any) string {
	switch v := v.(type) {
	case nil:
		return "<nil>"
	case Value:
		return v.Type()
	default:
		return fmt.Sprintf("%T", v)
	}
}
