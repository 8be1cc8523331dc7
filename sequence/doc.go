// Package sequence implements the runtime's ordered container values.
//
// There are two concrete variants: List, which is mutable under the
// mutability token it was created with, and Tuple, which is immutable from
// construction and carries no token at all. Equality and hashing are
// variant-sensitive, as in Python: a list never equals a tuple even when the
// elements match.
//
// Indexing, slicing and printing are shared free functions over the narrow
// Sequence interface, so the two variants stay free of duplicated logic
// without an inheritance hierarchy.
package sequence
