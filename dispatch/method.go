package dispatch

import (
	stderrors "errors"
	"fmt"

	"go.uber.org/zap"

	starlark "github.com/wippyai/starlark-runtime"
	"github.com/wippyai/starlark-runtime/errors"
	"github.com/wippyai/starlark-runtime/sequence"
)

// NativeFunc is the host implementation of a native method. The receiver is
// never nil and args is already arity- and type-checked and positionally
// ordered by the external call evaluator.
//
// The result is normalized by Method.Call: script values pass through, plain
// Go values are boxed, slices become lists owned by the thread's token, and
// nil is only legal when the method allows None returns.
type NativeFunc func(th *Thread, recv starlark.Value, args []starlark.Value, loc starlark.Location) (any, error)

// Unit adapts a native body with no result into a NativeFunc returning the
// canonical None value.
func Unit(fn func(th *Thread, recv starlark.Value, args []starlark.Value, loc starlark.Location) error) NativeFunc {
	return func(th *Thread, recv starlark.Value, args []starlark.Value, loc starlark.Location) (any, error) {
		if err := fn(th, recv, args, loc); err != nil {
			return nil, err
		}
		return starlark.None, nil
	}
}

// MethodSpec declares one native method. It is consumed by NewMethod at
// registration time; the built Method never changes afterwards.
type MethodSpec struct {
	// Name is the method name as scripts see it.
	Name string
	// Doc is the user-facing documentation string.
	Doc string
	// Documented includes the method in generated documentation.
	Documented bool
	// StructField exposes the method as a field read, invoked with no
	// argument list.
	StructField bool
	// Params declares the formal parameters in order.
	Params []ParamSpec
	// ExtraPositionals, if set, collects surplus positional arguments
	// (*args).
	ExtraPositionals *ParamSpec
	// ExtraKeywords, if set, collects surplus keyword arguments (**kwargs).
	ExtraKeywords *ParamSpec
	// SelfCall makes the receiver itself callable through this method.
	SelfCall bool
	// AllowReturnNones permits the native body to return nil, mapped to
	// None. Without it a nil return is a registration bug.
	AllowReturnNones bool
	// UseLocation, UseThread and UseSemantics tell the call evaluator which
	// ambient values the native body wants injected.
	UseLocation  bool
	UseThread    bool
	UseSemantics bool
	// Fn is the native body.
	Fn NativeFunc
}

// Method is a built native-method descriptor: the declarative metadata plus
// the invocation and result-normalization logic for one native method.
// Methods are immutable after construction and freely read by all threads
// without synchronization.
type Method struct {
	name             string
	doc              string
	documented       bool
	structField      bool
	params           []*Param
	extraPositionals *Param
	extraKeywords    *Param
	selfCall         bool
	allowReturnNones bool
	useLocation      bool
	useThread        bool
	useSemantics     bool
	fn               NativeFunc
}

// NewMethod builds an immutable Method from its declarative spec.
func NewMethod(spec MethodSpec) (*Method, error) {
	if spec.Name == "" {
		return nil, errors.InvalidInput(errors.PhaseRegister, "method name cannot be empty")
	}
	if spec.Fn == nil {
		return nil, errors.Registration(spec.Name, "native body cannot be nil")
	}

	params := make([]*Param, 0, len(spec.Params))
	for _, ps := range spec.Params {
		p, err := newParam(ps)
		if err != nil {
			return nil, errors.Registration(spec.Name, err.Error())
		}
		params = append(params, p)
	}

	var extraPos, extraKw *Param
	if spec.ExtraPositionals != nil {
		p, err := newParam(*spec.ExtraPositionals)
		if err != nil {
			return nil, errors.Registration(spec.Name, err.Error())
		}
		extraPos = p
	}
	if spec.ExtraKeywords != nil {
		p, err := newParam(*spec.ExtraKeywords)
		if err != nil {
			return nil, errors.Registration(spec.Name, err.Error())
		}
		extraKw = p
	}

	return &Method{
		name:             spec.Name,
		doc:              spec.Doc,
		documented:       spec.Documented,
		structField:      spec.StructField,
		params:           params,
		extraPositionals: extraPos,
		extraKeywords:    extraKw,
		selfCall:         spec.SelfCall,
		allowReturnNones: spec.AllowReturnNones,
		useLocation:      spec.UseLocation,
		useThread:        spec.UseThread,
		useSemantics:     spec.UseSemantics,
		fn:               spec.Fn,
	}, nil
}

// MustMethod is NewMethod for statically known specs; it panics on error.
func MustMethod(spec MethodSpec) *Method {
	m, err := NewMethod(spec)
	if err != nil {
		panic(err)
	}
	return m
}

// Name returns the method name as scripts see it.
func (m *Method) Name() string { return m.name }

// Doc returns the documentation string.
func (m *Method) Doc() string { return m.doc }

// Documented reports whether the method appears in generated documentation.
func (m *Method) Documented() bool { return m.documented }

// IsStructField reports whether the method is invoked as a field read.
func (m *Method) IsStructField() bool { return m.structField }

// Params returns the formal parameters in order. The slice is shared;
// callers must not modify it.
func (m *Method) Params() []*Param { return m.params }

// ExtraPositionals returns the *args collector, or nil.
func (m *Method) ExtraPositionals() *Param { return m.extraPositionals }

// ExtraKeywords returns the **kwargs collector, or nil.
func (m *Method) ExtraKeywords() *Param { return m.extraKeywords }

// AcceptsExtraArgs reports whether the method collects surplus positional
// arguments.
func (m *Method) AcceptsExtraArgs() bool { return m.extraPositionals != nil }

// AcceptsExtraKwargs reports whether the method collects surplus keyword
// arguments.
func (m *Method) AcceptsExtraKwargs() bool { return m.extraKeywords != nil }

// IsSelfCall reports whether the receiver itself is callable through this
// method.
func (m *Method) IsSelfCall() bool { return m.selfCall }

// AllowReturnNones reports whether the native body may return nil.
func (m *Method) AllowReturnNones() bool { return m.allowReturnNones }

// UseLocation reports whether the call evaluator injects the call location.
func (m *Method) UseLocation() bool { return m.useLocation }

// UseThread reports whether the call evaluator injects the thread.
func (m *Method) UseThread() bool { return m.useThread }

// UseSemantics reports whether the call evaluator injects the semantics
// snapshot.
func (m *Method) UseSemantics() bool { return m.useSemantics }

// Call invokes the native body with recv as receiver and args as the bound
// arguments, then normalizes the result into the script value universe.
//
// recv must be non-nil: methods are never invoked on an absent instance.
// Script-level failures from the body propagate with loc stamped on if they
// carry none; cancellation propagates untouched; a panic in the body becomes
// an evaluation error referencing the cause.
func (m *Method) Call(th *Thread, recv starlark.Value, args []starlark.Value, loc starlark.Location) (starlark.Value, error) {
	if recv == nil {
		return nil, errors.Internal("method %q called without receiver", m.name)
	}
	if th == nil {
		return nil, errors.Internal("method %q called without thread", m.name)
	}
	if err := th.CheckCancelled(); err != nil {
		return nil, err
	}

	res, err := m.invoke(th, recv, args, loc)
	if err != nil {
		switch {
		case errors.IsCancelled(err):
			// Cancellation unwinds the whole evaluation; never wrap it.
			return nil, err
		default:
			var ie *errors.InternalError
			if stderrors.As(err, &ie) {
				return nil, err
			}
			var ee *errors.Error
			if stderrors.As(err, &ee) {
				return nil, errors.EnsureLocation(err, loc)
			}
			return nil, errors.New(errors.PhaseEval, errors.KindEvaluation).
				At(loc).
				Cause(err).
				Detail("method %q failed", m.name).
				Build()
		}
	}

	if res == nil {
		if m.allowReturnNones {
			return starlark.None, nil
		}
		return nil, errors.Internal("method invocation returned None: %s%s",
			m.name, sequence.NewTuple(args...).String())
	}

	v, err := FromGo(res, th)
	if err != nil {
		return nil, errors.InvalidReturnType(loc, m.name, fmt.Sprintf("%T", res))
	}
	return v, nil
}

// invoke runs the native body, converting a panic into an error so that a
// host fault cannot take down unrelated threads.
func (m *Method) invoke(th *Thread, recv starlark.Value, args []starlark.Value, loc starlark.Location) (res any, err error) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Error("native method panicked",
				zap.String("method", m.name),
				zap.Any("panic", r))
			err = errors.New(errors.PhaseEval, errors.KindEvaluation).
				At(loc).
				Cause(fmt.Errorf("%v", r)).
				Detail("method %q invocation failed", m.name).
				Build()
		}
	}()
	return m.fn(th, recv, args, loc)
}
