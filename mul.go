package bignum

import "math/bits"

// This file implements spec.md section 4.4, the multiplicative layer.
// The general engine is schoolbook multiply-accumulate (the same column
// loop nat.go's basicMul runs, generalized to arbitrary, possibly
// truncating, output length); the fixed k x k -> 2k kernels are thin,
// exact-size wrappers over it, and the 16->32 / 32->64 Karatsuba
// variants follow nat.go's karatsuba: split each operand in half, form
// three sub-products, and recombine with carry-propagating adds/subs
// (karatsubaAdd/karatsubaSub in the teacher).

// Mul sets z = (x*y) mod 2^(64*len(z)); z is zeroed first, so this is an
// assignment, not an accumulation. z must be disjoint from x and y.
func Mul(z, x, y []uint64) {
	for i := range z {
		z[i] = 0
	}
	Madd(z, x, y)
}

// fixedMul panics if the operand/output sizes don't match the fixed
// contract (n, n -> 2n), then performs an exact product.
func fixedMul(z, x, y []uint64, n int) {
	if len(x) != n || len(y) != n || len(z) != 2*n {
		panic("bignum: mismatched fixed-size multiply lengths")
	}
	Mul(z, x, y)
}

// Mul4x8 computes the exact 4x4 -> 8 limb product z = x*y.
func Mul4x8(z, x, y []uint64) { fixedMul(z, x, y, 4) }

// Mul6x12 computes the exact 6x6 -> 12 limb product z = x*y.
func Mul6x12(z, x, y []uint64) { fixedMul(z, x, y, 6) }

// Mul8x16 computes the exact 8x8 -> 16 limb product z = x*y.
func Mul8x16(z, x, y []uint64) { fixedMul(z, x, y, 8) }

// Sqr4x8 computes the exact x^2 for a 4-limb x into an 8-limb z.
func Sqr4x8(z, x []uint64) { fixedMul(z, x, x, 4) }

// Sqr6x12 computes the exact x^2 for a 6-limb x into a 12-limb z.
func Sqr6x12(z, x []uint64) { fixedMul(z, x, x, 6) }

// Sqr8x16 computes the exact x^2 for an 8-limb x into a 16-limb z.
func Sqr8x16(z, x []uint64) { fixedMul(z, x, x, 8) }

// addAt adds src into z starting at limb offset off, propagating the
// carry all the way to the top of z (matching nat.go's addAt, used by
// karatsuba to fold the middle term back into the result).
func addAt(z []uint64, off int, src []uint64) {
	var c uint64
	i := 0
	for ; i < len(src) && off+i < len(z); i++ {
		z[off+i], c = bits.Add64(z[off+i], src[i], c)
	}
	for ; c != 0 && off+i < len(z); i++ {
		z[off+i], c = bits.Add64(z[off+i], 0, c)
	}
}

// karatsubaSplit multiplies two 2n-limb operands into a 4n-limb result
// using one level of Karatsuba splitting; t must provide at least
// 4*n+4 limbs of scratch. The n-limb half products are computed with
// the plain schoolbook engine (Mul).
func karatsubaSplit(z, x, y, t []uint64) {
	n2 := len(x) // 2n
	n := n2 / 2

	xlo, xhi := x[:n], x[n:]
	ylo, yhi := y[:n], y[n:]

	sumX := t[0 : n+1]
	sumY := t[n+1 : 2*n+2]
	mid := t[2*n+2 : 2*n+2+2*n+2]

	sumX[n] = Add(sumX[:n], xlo, xhi)
	sumY[n] = Add(sumY[:n], ylo, yhi)

	low := z[0:n2]
	high := z[n2 : 2*n2]
	Mul(low, xlo, ylo)
	Mul(high, xhi, yhi)
	Mul(mid, sumX, sumY)

	// mid currently holds (xlo+xhi)*(ylo+yhi); subtract off low and high
	// to leave the cross term xlo*yhi + xhi*ylo.
	Sub(mid, mid, low)
	Sub(mid, mid, high)

	addAt(z, n, mid)
}

// karatsubaScratch returns the minimum scratch length karatsubaSplit
// needs for 2n-limb operands.
func karatsubaScratch(n int) int { return 4*n + 4 }

// KMul16x32 computes the exact 16x16 -> 32 limb product z = x*y via one
// level of Karatsuba splitting (8+8), bottoming out at the fixed 8x8
// schoolbook multiply. t must have at least 36 limbs of scratch.
func KMul16x32(z, x, y, t []uint64) {
	if len(x) != 16 || len(y) != 16 || len(z) != 32 || len(t) < karatsubaScratch(8) {
		panic("bignum: mismatched kmul_16_32 operand sizes")
	}
	karatsubaSplit(z, x, y, t)
}

// KSqr16x32 computes x^2 for a 16-limb x into a 32-limb z, via the same
// Karatsuba split as KMul16x32 with y == x.
func KSqr16x32(z, x, t []uint64) {
	if len(x) != 16 || len(z) != 32 || len(t) < karatsubaScratch(8) {
		panic("bignum: mismatched ksqr_16_32 operand sizes")
	}
	karatsubaSplit(z, x, x, t)
}

// KSqr32x64 computes x^2 for a 32-limb x into a 64-limb z. It splits x
// into two 16-limb halves, squares each with KSqr16x32, forms the cross
// term xlo*xhi with KMul16x32, and recombines as
// low + 2*cross<<(16 limbs) + high<<(32 limbs).
func KSqr32x64(z, x, t []uint64) {
	const innerScratch = 36 // karatsubaScratch(8)
	need := innerScratch + 32 + karatsubaScratch(16)
	if len(x) != 32 || len(z) != 64 || len(t) < need {
		panic("bignum: mismatched ksqr_32_64 operand sizes")
	}
	xlo, xhi := x[:16], x[16:]

	low := z[0:32]
	high := z[32:64]
	innerT := t[0:innerScratch]
	KSqr16x32(low, xlo, innerT)
	KSqr16x32(high, xhi, innerT)

	cross := t[innerScratch : innerScratch+32]
	crossT := t[innerScratch+32 : innerScratch+32+karatsubaScratch(16)]
	KMul16x32(cross, xlo, xhi, crossT)

	// Add 2*cross at limb offset 16 (spans the upper half of low and
	// the lower half of high, exactly where 2*xlo*xhi lands).
	var shiftCarry, addCarry uint64
	for i := 0; i < 32; i++ {
		doubled := cross[i]<<1 | shiftCarry
		shiftCarry = cross[i] >> 63
		z[16+i], addCarry = bits.Add64(z[16+i], doubled, addCarry)
	}
	rest := shiftCarry + addCarry // at most 2, both single bits
	var c3 uint64
	z[48], c3 = bits.Add64(z[48], rest, 0)
	for i := 49; i < 64; i++ {
		z[i], c3 = bits.Add64(z[i], 0, c3)
	}
}
