// Package kernel implements multi-word unsigned integer arithmetic over
// caller-owned word slices.
//
// Every function operates on slices ordered least-significant word first.
// The package never allocates: destinations and scratch space are supplied
// by the caller, and functions that need temporary memory document how much
// through a *ScratchLen helper.
//
// # Failure model
//
// Arithmetic overflow is never a panic or an error. Functions that can lose a
// carry or a borrow report it as a bool, and chained operations combine those
// flags with a plain boolean OR.
//
// Precondition violations (mismatched lengths, zero divisors, unnormalized
// divisors) are programming errors. They are checked only when the package is
// built with the kerneldebug tag; otherwise the only guard is Go's own slice
// bounds checking.
//
// # Appendix
//
// Higher layers may attach a virtual infinite extension bit to a slice to
// model two's-complement sign or an all-ones tail. The kernel never infers
// it: operations that depend on it take the matching environment word
// (all zeros or all ones) as a parameter.
package kernel
