package bignum

// This file implements spec.md section 4.3, the additive layer: carry
// chains, scalar multiply-add, and constant-time conditional variants.
// All kernels here except Madd are fully aliasing-permissive across z/x/y,
// matching nat.go's addVV/subVV (which the teacher calls with z aliasing x
// or y routinely, e.g. z.cadd(z, y, ...)); Madd reads x after it has begun
// writing z, so its z must be disjoint from x and y. None of them allocates: operands of
// a different length than the output are zero-extended or truncated on
// the fly via digitAt rather than copied into a temporary slice first.

import "math/bits"

// Add sets z = (x + y) mod 2^(64*len(z)), zero-extending/truncating x, y
// to len(z) limbs, and returns 1 iff the truncated sum overflowed.
func Add(z, x, y []uint64) uint64 {
	var c uint64
	for i := range z {
		z[i], c = bits.Add64(digitAt(x, i), digitAt(y, i), c)
	}
	return c
}

// Sub sets z = (x - y) mod 2^(64*len(z)) and returns 1 iff the truncated
// y exceeds the truncated x.
func Sub(z, x, y []uint64) uint64 {
	var b uint64
	for i := range z {
		z[i], b = bits.Sub64(digitAt(x, i), digitAt(y, i), b)
	}
	return b
}

// CMul sets z = (c * x) mod 2^(64*len(z)).
func CMul(z []uint64, c uint64, x []uint64) {
	var carry uint64
	for i := range z {
		hi, lo := bits.Mul64(digitAt(x, i), c)
		lo, cc := bits.Add64(lo, carry, 0)
		z[i] = lo
		carry = hi + cc
	}
}

// CMadd sets z = (z + c*x) mod 2^(64*len(z)).
func CMadd(z []uint64, c uint64, x []uint64) {
	var carry uint64
	for i := range z {
		hi, lo := bits.Mul64(digitAt(x, i), c)
		lo, cc := bits.Add64(lo, carry, 0)
		carry = hi + cc
		z[i], cc = bits.Add64(z[i], lo, 0)
		carry += cc
	}
}

// Madd sets z = (z + x*y) mod 2^(64*len(z)): schoolbook multiply-add,
// accumulating column by column directly into z with no scratch product
// buffer (the same trick nat.go's basicMul uses to build the product one
// addMulVVW per y-limb, generalized to accumulate rather than assign).
func Madd(z, x, y []uint64) {
	k := len(z)
	for j := 0; j < len(y) && j < k; j++ {
		yj := y[j]
		if yj == 0 {
			continue
		}
		var carry uint64
		for i := 0; i+j < k; i++ {
			hi, lo := bits.Mul64(digitAt(x, i), yj)
			lo, cc := bits.Add64(lo, carry, 0)
			hi += cc
			z[i+j], cc = bits.Add64(z[i+j], lo, 0)
			carry = hi + cc
		}
	}
}

// OptAdd sets z = x+y with carry-out if p != 0, else z = x with a 0
// carry-out, in constant time over p.
func OptAdd(z, x []uint64, p uint64, y []uint64) uint64 {
	mask := ctMask(p)
	var c uint64
	for i := range z {
		var s uint64
		s, c = bits.Add64(digitAt(x, i), digitAt(y, i)&mask, c)
		z[i] = (s & mask) | (digitAt(x, i) &^ mask)
	}
	return c & mask & 1
}

// OptSub sets z = x-y with borrow-out if p != 0, else z = x with a 0
// borrow-out.
func OptSub(z, x []uint64, p uint64, y []uint64) uint64 {
	mask := ctMask(p)
	var b uint64
	for i := range z {
		var d uint64
		d, b = bits.Sub64(digitAt(x, i), digitAt(y, i)&mask, b)
		z[i] = (d & mask) | (digitAt(x, i) &^ mask)
	}
	return b & mask & 1
}

// OptNeg sets z = 2^(64*len(z)) - x (with borrow 1) if p != 0 and x != 0;
// else z = x with borrow 0.
func OptNeg(z []uint64, p uint64, x []uint64) uint64 {
	doNeg := ctMask(p) & ctMask(NonZero(x))
	var b uint64
	for i := range z {
		var n uint64
		n, b = bits.Sub64(0, digitAt(x, i), b)
		z[i] = (n & doNeg) | (digitAt(x, i) &^ doNeg)
	}
	return b & doNeg & 1
}

// OptSubAdd interprets p as a two's-complement sign word: if its top bit
// is set, z = x-y; else if p != 0, z = x+y; else z = x. Returns the raw
// signed carry/borrow word produced by the selected branch (0 for copy).
func OptSubAdd(z, x []uint64, p uint64, y []uint64) uint64 {
	negative := ctMask(p >> 63 & 1)
	nonzero := ctMask(p)
	doAdd := nonzero &^ negative

	var cAdd, cSub uint64
	for i := range z {
		xi := digitAt(x, i)
		yi := digitAt(y, i)
		sum, ca := bits.Add64(xi, yi&doAdd, cAdd)
		diff, cs := bits.Sub64(xi, yi&negative, cSub)
		cAdd, cSub = ca, cs
		z[i] = (diff & negative) | (sum &^ negative & nonzero) | (xi &^ negative &^ nonzero)
	}
	return (cSub & negative & 1) | (cAdd & doAdd & 1)
}

// ModOptNeg sets z = (-x mod m) if p != 0 and x != 0, else z = x.
// Precondition: x < m.
func ModOptNeg(z []uint64, p uint64, x, m []uint64) uint64 {
	doNeg := ctMask(p) & ctMask(NonZero(x))
	var b uint64
	for i := range z {
		var n uint64
		n, b = bits.Sub64(digitAt(m, i), digitAt(x, i), b)
		z[i] = (n & doNeg) | (digitAt(x, i) &^ doNeg)
	}
	return doNeg & 1
}
