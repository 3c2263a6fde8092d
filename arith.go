package bignum

import "math/bits"

// This file holds the word-at-a-time carry-chain primitives the rest of
// the package is built from, in the style of math/big's arith.go: each
// loop is a straight-line chain of bits.Add64/Sub64/Mul64 calls with an
// explicit carry word threaded through, and no data-dependent branch.

// addVV sets z = x + y over len(z) limbs (x, y, z same length) and
// returns the carry out of the top limb.
func addVV(z, x, y []uint64) uint64 {
	var c uint64
	for i := range z {
		z[i], c = bits.Add64(x[i], y[i], c)
	}
	return c
}

// subVV sets z = x - y over len(z) limbs and returns the borrow out of
// the top limb.
func subVV(z, x, y []uint64) uint64 {
	var b uint64
	for i := range z {
		z[i], b = bits.Sub64(x[i], y[i], b)
	}
	return b
}

// addVW sets z = x + w (a single extra word added into the low limb,
// carried through) and returns the carry out. Runs the full carry chain
// unconditionally: the carry may in fact die out early, but branching on
// that would make the memory-access pattern data-dependent.
func addVW(z, x []uint64, w uint64) uint64 {
	c := w
	for i := range z {
		z[i], c = bits.Add64(x[i], c, 0)
	}
	return c
}

// subVW sets z = x - w and returns the borrow out.
func subVW(z, x []uint64, w uint64) uint64 {
	b := w
	for i := range z {
		z[i], b = bits.Sub64(x[i], b, 0)
	}
	return b
}

// addMulVVW computes z += x*w over len(z) limbs (x same length as z) and
// returns the carry word out of the top limb. Used by the Montgomery
// CIOS loop (reduceRounds).
func addMulVVW(z, x []uint64, w uint64) uint64 {
	var c uint64
	for i := range z {
		hi, lo := bits.Mul64(x[i], w)
		lo, cc := bits.Add64(lo, c, 0)
		hi += cc
		z[i], cc = bits.Add64(z[i], lo, 0)
		hi += cc
		c = hi
	}
	return c
}

// mulAddVWW sets z = x*w + r over len(z) limbs (x same length as z) and
// returns the carry word out of the top limb.
func mulAddVWW(z, x []uint64, w, r uint64) uint64 {
	c := r
	for i := range z {
		hi, lo := bits.Mul64(x[i], w)
		lo, cc := bits.Add64(lo, c, 0)
		hi += cc
		z[i] = lo
		c = hi
	}
	return c
}
