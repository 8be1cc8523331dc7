package builtins

import (
	"sync"

	starlark "github.com/wippyai/starlark-runtime"
	"github.com/wippyai/starlark-runtime/dispatch"
	"github.com/wippyai/starlark-runtime/errors"
	"github.com/wippyai/starlark-runtime/sequence"
)

var (
	stdOnce sync.Once
	std     *dispatch.Registry
)

// Std returns the process-wide registry holding all builtin methods. It is
// built on first use and read-only afterwards.
func Std() *dispatch.Registry {
	stdOnce.Do(func() {
		std = dispatch.NewRegistry()
		if err := Register(std); err != nil {
			panic(err)
		}
	})
	return std
}

// Register installs the list methods into r.
func Register(r *dispatch.Registry) error {
	for _, spec := range listMethods {
		if err := r.RegisterSpec("list", spec); err != nil {
			return err
		}
	}
	return nil
}

// recvList casts the receiver. The call evaluator only routes list methods
// to list receivers, so a mismatch is a host bug.
func recvList(m string, recv starlark.Value) (*sequence.List, error) {
	l, ok := recv.(*sequence.List)
	if !ok {
		return nil, errors.Internal("method %q invoked on %s receiver", m, starlark.TypeName(recv))
	}
	return l, nil
}

// argInt reads a bound argument the binder already checked to be an int.
func argInt(m string, args []starlark.Value, i int) (int, error) {
	n, ok := args[i].(starlark.Int)
	if !ok {
		return 0, errors.Internal("method %q: argument %d is %s, want int", m, i, starlark.TypeName(args[i]))
	}
	return int(n), nil
}

var listMethods = []dispatch.MethodSpec{
	{
		Name:       "append",
		Doc:        "Adds an item to the end of the list.",
		Documented: true,
		Params: []dispatch.ParamSpec{
			{Name: "item", AllowNone: true},
		},
		UseLocation: true,
		UseThread:   true,
		Fn: dispatch.Unit(func(th *dispatch.Thread, recv starlark.Value, args []starlark.Value, loc starlark.Location) error {
			l, err := recvList("append", recv)
			if err != nil {
				return err
			}
			return l.Append(args[0], loc, th.Mutability())
		}),
	},
	{
		Name:       "insert",
		Doc:        "Inserts an item at a given position.",
		Documented: true,
		Params: []dispatch.ParamSpec{
			{Name: "index", Type: "int"},
			{Name: "item", AllowNone: true},
		},
		UseLocation: true,
		UseThread:   true,
		Fn: dispatch.Unit(func(th *dispatch.Thread, recv starlark.Value, args []starlark.Value, loc starlark.Location) error {
			l, err := recvList("insert", recv)
			if err != nil {
				return err
			}
			i, err := argInt("insert", args, 0)
			if err != nil {
				return err
			}
			return l.Insert(i, args[1], loc, th.Mutability())
		}),
	},
	{
		Name:       "extend",
		Doc:        "Adds all items to the end of the list.",
		Documented: true,
		Params: []dispatch.ParamSpec{
			{Name: "items"},
		},
		UseLocation: true,
		UseThread:   true,
		Fn: dispatch.Unit(func(th *dispatch.Thread, recv starlark.Value, args []starlark.Value, loc starlark.Location) error {
			l, err := recvList("extend", recv)
			if err != nil {
				return err
			}
			items, ok := args[0].(sequence.Sequence)
			if !ok {
				return errors.Evaluation(loc, "extend: %s is not iterable", starlark.TypeName(args[0]))
			}
			return l.Extend(items, loc, th.Mutability())
		}),
	},
	{
		Name: "remove",
		Doc: "Removes the first item from the list whose value is x. " +
			"It is an error if there is no such item.",
		Documented: true,
		Params: []dispatch.ParamSpec{
			{Name: "x", AllowNone: true},
		},
		UseLocation: true,
		UseThread:   true,
		Fn: dispatch.Unit(func(th *dispatch.Thread, recv starlark.Value, args []starlark.Value, loc starlark.Location) error {
			l, err := recvList("remove", recv)
			if err != nil {
				return err
			}
			return l.Remove(args[0], loc, th.Mutability())
		}),
	},
	{
		Name: "index",
		Doc: "Returns the index in the list of the first item whose value is x. " +
			"It is an error if there is no such item.",
		Documented: true,
		Params: []dispatch.ParamSpec{
			{Name: "x", AllowNone: true},
			{Name: "start", Type: "int", Default: starlark.None, AllowNone: true, NamedOnly: true},
			{Name: "end", Type: "int", Default: starlark.None, AllowNone: true, NamedOnly: true},
		},
		UseLocation: true,
		Fn: func(th *dispatch.Thread, recv starlark.Value, args []starlark.Value, loc starlark.Location) (any, error) {
			l, err := recvList("index", recv)
			if err != nil {
				return nil, err
			}
			i, err := l.IndexOf(args[0], args[1], args[2], loc)
			if err != nil {
				return nil, err
			}
			return i, nil
		},
	},
	{
		Name: "pop",
		Doc: "Removes the item at the given position in the list, and returns it. " +
			"If no index is specified, it removes and returns the last item in the list.",
		Documented: true,
		Params: []dispatch.ParamSpec{
			{Name: "i", Type: "int", Default: starlark.None, AllowNone: true},
		},
		UseLocation: true,
		UseThread:   true,
		Fn: func(th *dispatch.Thread, recv starlark.Value, args []starlark.Value, loc starlark.Location) (any, error) {
			l, err := recvList("pop", recv)
			if err != nil {
				return nil, err
			}
			i := -1
			if n, ok := args[0].(starlark.Int); ok {
				i = int(n)
			}
			return l.Pop(i, loc, th.Mutability())
		},
	},
	{
		Name:        "clear",
		Doc:         "Removes all the elements of the list.",
		Documented:  true,
		UseLocation: true,
		UseThread:   true,
		Fn: dispatch.Unit(func(th *dispatch.Thread, recv starlark.Value, args []starlark.Value, loc starlark.Location) error {
			l, err := recvList("clear", recv)
			if err != nil {
				return err
			}
			return l.Clear(loc, th.Mutability())
		}),
	},
}
