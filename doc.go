// Package starlark provides the core value model of an embeddable
// Starlark-style configuration language runtime.
//
// The runtime evaluates many independent scripts, each on its own
// single-goroutine thread, and lets them exchange values without locks by
// following a freeze discipline: a thread mutates only containers created
// under its own mutability token, and freezes that token before publishing
// values to other threads.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	starlark/            Root package with the Value interface, scalars and Location
//	├── mutability/      Ownership tokens and the freeze discipline
//	├── sequence/        List and Tuple container values
//	├── dispatch/        Native-method descriptors, registry and invocation
//	├── builtins/        Standard sequence methods exposed through dispatch
//	├── errors/          Structured error types for debugging
//	└── cmd/inspect/     CLI and interactive inspector for the builtin registry
//
// # Quick Start
//
// Build a list on a thread, mutate it, then freeze it for sharing:
//
//	th := dispatch.NewThread(ctx, "init")
//	l := sequence.NewList(th.Mutability(), starlark.MakeInt(1), starlark.MakeInt(2))
//	if err := l.Append(starlark.MakeInt(3), loc, th.Mutability()); err != nil {
//	    log.Fatal(err)
//	}
//	if err := th.Mutability().Freeze(); err != nil {
//	    log.Fatal(err)
//	}
//	// l is now permanently read-only and safe to hand to other threads.
//
// # Native Methods
//
// Host functions are exposed to scripts through build-once method
// descriptors rather than per-call reflection:
//
//	method := dispatch.MustMethod(dispatch.MethodSpec{
//	    Name:   "append",
//	    Doc:    "Adds an item to the end of the list.",
//	    Params: []dispatch.ParamSpec{{Name: "item", AllowNone: true}},
//	    Fn: dispatch.Unit(func(th *dispatch.Thread, recv starlark.Value, args []starlark.Value, loc starlark.Location) error {
//	        return recv.(*sequence.List).Append(args[0], loc, th.Mutability())
//	    }),
//	})
//
// An external call evaluator binds actual arguments against the declared
// parameters and hands the receiver plus the bound argument slice to
// Method.Call; this library performs no argument binding of its own.
//
// # Thread Safety
//
// Method descriptors and frozen values are safe for concurrent use. A List
// whose token is still open is NOT thread-safe and must only be touched by
// the goroutine that owns the token.
package starlark
