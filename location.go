package starlark

import "fmt"

// Location identifies a point in a script source file. The zero Location is
// "unknown" and prints as such; errors raised outside any call site carry it.
type Location struct {
	File string
	Line int32
	Col  int32
}

// At constructs a Location.
func At(file string, line, col int32) Location {
	return Location{File: file, Line: line, Col: col}
}

// IsValid reports whether the location identifies a real source position.
func (l Location) IsValid() bool { return l.File != "" }

func (l Location) String() string {
	if !l.IsValid() {
		return "<unknown>"
	}
	if l.Col > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Col)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}
