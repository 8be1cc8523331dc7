// Package dispatch bridges call evaluation to statically registered native
// methods.
//
// A Method is built once at registration time from a declarative MethodSpec
// and is immutable and shared process-wide thereafter; the per-call cost is a
// few field reads plus one direct closure invocation, with no reflection or
// proxies on the hot path.
//
// The external call evaluator resolves the call site and binds actual
// arguments against the declared parameters (defaults, keyword matching,
// variadic collection), then hands the receiver and the positionally ordered
// bound-argument slice to Method.Call. Call runs the native body, stamps
// script-level failures with the call location, lets cancellation unwind
// untouched, and normalizes the native result back into the script value
// universe.
package dispatch
