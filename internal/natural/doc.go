// Package natural provides arbitrary-precision natural numbers and signed
// integers built directly on the word kernel.
//
// A Nat is a normalized little-endian []big.Word: it never carries zero
// high words, and zero is the empty slice. Every exported operation returns
// a freshly allocated result and leaves its operands untouched. Temporary
// scratch space for multiplication and division comes from size-classed
// pools and is returned before the call completes.
//
// Text conversion delegates to math/big; this package only does arithmetic.
package natural
