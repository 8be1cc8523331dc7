// Package builtins registers the standard sequence methods with the dispatch
// registry.
//
// Each method is declared once as a dispatch.MethodSpec and shared
// process-wide; the call evaluator binds arguments against the declared
// parameters before invoking, so the native bodies only cast and act.
package builtins
