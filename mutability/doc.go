// Package mutability implements the ownership tokens that gate container
// mutation.
//
// A Mutability is created open and owned by a single evaluation thread. The
// thread mutates containers created under the token freely, then calls Freeze
// exactly once before publishing those containers to other threads. After the
// freeze every reader accesses the containers lock-free: safety rests on the
// token's one-way atomic frozen flag plus an identity comparison, not on
// per-access locking.
package mutability
