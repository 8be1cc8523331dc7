package dispatch

import (
	starlark "github.com/wippyai/starlark-runtime"
	"github.com/wippyai/starlark-runtime/errors"
)

// ParamSpec declares one formal parameter of a native method.
type ParamSpec struct {
	// Name is the parameter name as scripts see it.
	Name string
	// Type constrains the script type of the argument, e.g. "int"; empty
	// means any type is accepted.
	Type string
	// Default is the value used when the caller omits the argument; nil
	// means the parameter is mandatory.
	Default starlark.Value
	// NamedOnly restricts the parameter to keyword passing.
	NamedOnly bool
	// PositionalOnly forbids keyword passing.
	PositionalOnly bool
	// AllowNone accepts None in addition to the declared type.
	AllowNone bool
}

// Param is the immutable built form of a ParamSpec, constructed once at
// registration and shared by every call.
type Param struct {
	name           string
	typ            string
	def            starlark.Value
	namedOnly      bool
	positionalOnly bool
	allowNone      bool
}

func newParam(spec ParamSpec) (*Param, error) {
	if spec.Name == "" {
		return nil, errors.InvalidInput(errors.PhaseRegister, "parameter name cannot be empty")
	}
	if spec.NamedOnly && spec.PositionalOnly {
		return nil, errors.InvalidInput(errors.PhaseRegister,
			"parameter "+spec.Name+" cannot be both named-only and positional-only")
	}
	return &Param{
		name:           spec.Name,
		typ:            spec.Type,
		def:            spec.Default,
		namedOnly:      spec.NamedOnly,
		positionalOnly: spec.PositionalOnly,
		allowNone:      spec.AllowNone,
	}, nil
}

// Name returns the parameter name.
func (p *Param) Name() string { return p.name }

// TypeName returns the declared type constraint; empty means any.
func (p *Param) TypeName() string { return p.typ }

// Default returns the default value, or nil if the parameter is mandatory.
func (p *Param) Default() starlark.Value { return p.def }

// HasDefault reports whether the parameter may be omitted.
func (p *Param) HasDefault() bool { return p.def != nil }

// NamedOnly reports whether the parameter must be passed by keyword.
func (p *Param) NamedOnly() bool { return p.namedOnly }

// PositionalOnly reports whether the parameter cannot be passed by keyword.
func (p *Param) PositionalOnly() bool { return p.positionalOnly }

// AllowNone reports whether None is an acceptable argument.
func (p *Param) AllowNone() bool { return p.allowNone }
