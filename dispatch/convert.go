package dispatch

import (
	"fmt"
	"math"

	starlark "github.com/wippyai/starlark-runtime"
	"github.com/wippyai/starlark-runtime/errors"
	"github.com/wippyai/starlark-runtime/sequence"
)

// FromGo converts a host value into the script value universe. Script values
// pass through unchanged; Go scalars are boxed; Go slices become lists owned
// by the thread's token, converting elements recursively. Anything else is
// an evaluation-kind error naming the Go type.
func FromGo(v any, th *Thread) (starlark.Value, error) {
	switch v := v.(type) {
	case starlark.Value:
		return v, nil
	case bool:
		return starlark.Bool(v), nil
	case string:
		return starlark.String(v), nil
	case int:
		return starlark.Int(v), nil
	case int8:
		return starlark.Int(v), nil
	case int16:
		return starlark.Int(v), nil
	case int32:
		return starlark.Int(v), nil
	case int64:
		return starlark.Int(v), nil
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return starlark.Int(v), nil
	case uint16:
		return starlark.Int(v), nil
	case uint32:
		return starlark.Int(v), nil
	case uint64:
		return fromUint(v)
	case float32:
		return fromFloat(float64(v), th)
	case float64:
		return fromFloat(v, th)
	case []starlark.Value:
		return sequence.NewList(th.Mutability(), v...), nil
	case []string:
		elems := make([]starlark.Value, len(v))
		for i, s := range v {
			elems[i] = starlark.String(s)
		}
		return sequence.WrapList(th.Mutability(), elems), nil
	case []int:
		elems := make([]starlark.Value, len(v))
		for i, n := range v {
			elems[i] = starlark.Int(n)
		}
		return sequence.WrapList(th.Mutability(), elems), nil
	case []any:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			ev, err := FromGo(e, th)
			if err != nil {
				return nil, err
			}
			elems[i] = ev
		}
		return sequence.WrapList(th.Mutability(), elems), nil
	default:
		return nil, errors.New(errors.PhaseConvert, errors.KindEvaluation).
			Detail("cannot convert value of type %s to a script value", fmt.Sprintf("%T", v)).
			Build()
	}
}

func fromUint(v uint64) (starlark.Value, error) {
	if v > math.MaxInt64 {
		return nil, errors.New(errors.PhaseConvert, errors.KindEvaluation).
			Detail("value %d overflows the script integer type", v).
			Build()
	}
	return starlark.Int(v), nil
}

func fromFloat(v float64, th *Thread) (starlark.Value, error) {
	if !th.Semantics().AllowFloat {
		return nil, errors.New(errors.PhaseConvert, errors.KindEvaluation).
			Detail("floating-point results are disabled by the current semantics").
			Build()
	}
	return starlark.Float(v), nil
}
