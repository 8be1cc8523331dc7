package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	starlark "github.com/wippyai/starlark-runtime"
	"github.com/wippyai/starlark-runtime/builtins"
	"github.com/wippyai/starlark-runtime/dispatch"
	"github.com/wippyai/starlark-runtime/sequence"
)

func main() {
	var (
		items       = flag.String("items", "", "Initial list elements (comma-separated literals)")
		call        = flag.String("call", "", "Method to call (optional)")
		callArgs    = flag.String("args", "", "Method arguments (comma-separated literals)")
		list        = flag.Bool("list", false, "List registered methods and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose dispatch logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		dispatch.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*items); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*items, *call, *callArgs, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(itemsStr, call, argsStr string, listOnly bool) error {
	reg := builtins.Std()

	if listOnly {
		for _, typ := range reg.Types() {
			fmt.Printf("%s:\n", typ)
			for _, name := range reg.Names(typ) {
				m, _ := reg.Method(typ, name)
				fmt.Printf("  %s(%s)\n", name, signature(m))
			}
		}
		return nil
	}

	th := dispatch.NewThread(context.Background(), "inspect")
	l := sequence.WrapList(th.Mutability(), parseItems(itemsStr))
	fmt.Printf("List: %s\n", l)

	if call == "" {
		return nil
	}

	m, ok := reg.Method("list", call)
	if !ok {
		return fmt.Errorf("unknown method %q (try -list)", call)
	}

	bound, err := bindArgs(m, parseItems(argsStr))
	if err != nil {
		return err
	}

	loc := starlark.At("<inspect>", 1, 1)
	res, err := m.Call(th, l, bound, loc)
	if err != nil {
		return err
	}

	fmt.Printf("Result: %s\n", starlark.Repr(res))
	fmt.Printf("List: %s\n", l)
	return nil
}

// signature renders a method's declared parameters for display.
func signature(m *dispatch.Method) string {
	var parts []string
	for _, p := range m.Params() {
		s := p.Name()
		if p.TypeName() != "" {
			s += " " + p.TypeName()
		}
		if p.HasDefault() {
			s += " = " + starlark.Repr(p.Default())
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}

// bindArgs plays the call evaluator's role for the CLI: fill parameters
// positionally, then apply defaults.
func bindArgs(m *dispatch.Method, given []starlark.Value) ([]starlark.Value, error) {
	params := m.Params()
	if len(given) > len(params) {
		return nil, fmt.Errorf("%s: got %d arguments, want at most %d", m.Name(), len(given), len(params))
	}
	bound := make([]starlark.Value, len(params))
	for i, p := range params {
		if i < len(given) {
			bound[i] = given[i]
			continue
		}
		if !p.HasDefault() {
			return nil, fmt.Errorf("%s: missing argument %q", m.Name(), p.Name())
		}
		bound[i] = p.Default()
	}
	return bound, nil
}

// parseItems parses a comma-separated list of literals.
func parseItems(s string) []starlark.Value {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var vals []starlark.Value
	for _, part := range strings.Split(s, ",") {
		vals = append(vals, parseLiteral(strings.TrimSpace(part)))
	}
	return vals
}

// parseLiteral interprets a single argument literal: int, bool, None or a
// string (quoted or bare).
func parseLiteral(s string) starlark.Value {
	switch s {
	case "None":
		return starlark.None
	case "True":
		return starlark.True
	case "False":
		return starlark.False
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return starlark.Int(n)
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		return starlark.String(unquoted)
	}
	return starlark.String(s)
}
