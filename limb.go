package bignum

import "math/bits"

// This file implements the size-parametric limb-vector core (spec.md
// section 4.2): predicates, comparisons, bit/digit extraction and small
// shifts over slices of little-endian 64-bit limbs. Every kernel here is
// constant-time with respect to limb values: branches and loop bounds
// depend only on the declared sizes, never on a limb's contents, in the
// style of math/big's czero/sel helpers in nat.go.

// ctMask returns all-ones if w != 0, all-zeros if w == 0, without
// branching on w. See nat.go's czero for the complementary (zero) mask.
func ctMask(w uint64) uint64 {
	return uint64(int64(w|-w) >> 63)
}

// digitAt returns x[i] if i < len(x), else 0. The branch is on the index
// and slice length, both known sizes, not on any limb value.
func digitAt(x []uint64, i int) uint64 {
	if i >= 0 && i < len(x) {
		return x[i]
	}
	return 0
}

// Copy writes z[0:k] = x zero-extended or truncated to k limbs.
func Copy(z []uint64, x []uint64) {
	k := len(z)
	n := len(x)
	for i := 0; i < k; i++ {
		if i < n {
			z[i] = x[i]
		} else {
			z[i] = 0
		}
	}
}

// OfWord sets z[0] = n and zeroes the rest (a no-op on a zero-length z).
func OfWord(z []uint64, n uint64) {
	for i := range z {
		if i == 0 {
			z[i] = n
		} else {
			z[i] = 0
		}
	}
}

// IsZero returns 1 if every limb of x is zero, else 0.
func IsZero(x []uint64) uint64 {
	return 1 - NonZero(x)
}

// NonZero returns 1 if any limb of x is nonzero, else 0.
func NonZero(x []uint64) uint64 {
	var acc uint64
	for _, xi := range x {
		acc |= xi
	}
	return ctMask(acc) & 1
}

// Even returns 1 if x is even (k == 0 counts as even), else 0.
func Even(x []uint64) uint64 {
	return 1 - Odd(x)
}

// Odd returns 1 if x is odd, else 0.
func Odd(x []uint64) uint64 {
	if len(x) == 0 {
		return 0
	}
	return x[0] & 1
}

// compareCT zero-extends x, y to the longer of the two lengths and
// returns (eq, lt): eq==1 iff the values are equal, lt==1 iff x < y.
// Scans every limb position unconditionally, most significant first.
func compareCT(x, y []uint64) (eq, lt uint64) {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	stillEq := uint64(1)
	var ltAcc uint64
	for i := n - 1; i >= 0; i-- {
		xi := digitAt(x, i)
		yi := digitAt(y, i)
		_, gtBit := bits.Sub64(yi, xi, 0) // 1 iff yi < xi, i.e. xi > yi
		_, ltBit := bits.Sub64(xi, yi, 0) // 1 iff xi < yi
		eqBit := 1 ^ (gtBit | ltBit)
		ltAcc |= stillEq & ltBit
		stillEq &= eqBit
	}
	return stillEq, ltAcc
}

// Eq returns 1 iff x == y (zero-extending the shorter operand).
func Eq(x, y []uint64) uint64 {
	eq, _ := compareCT(x, y)
	return eq
}

// Lt returns 1 iff x < y.
func Lt(x, y []uint64) uint64 {
	_, lt := compareCT(x, y)
	return lt
}

// Le returns 1 iff x <= y.
func Le(x, y []uint64) uint64 {
	eq, lt := compareCT(x, y)
	return eq | lt
}

// Gt returns 1 iff x > y.
func Gt(x, y []uint64) uint64 {
	eq, lt := compareCT(x, y)
	return 1 ^ (eq | lt)
}

// Ge returns 1 iff x >= y.
func Ge(x, y []uint64) uint64 {
	_, lt := compareCT(x, y)
	return 1 ^ lt
}

// Digit returns x[n] if n < len(x), else 0.
func Digit(x []uint64, n int) uint64 {
	return digitAt(x, n)
}

// Bitfield returns bits [b, b+l) of x, zero-extended, as a 64-bit word.
// l >= 64 returns the full word at that bit offset.
func Bitfield(x []uint64, b int, l uint) uint64 {
	limb := b / 64
	shift := uint(b % 64)
	lo := digitAt(x, limb)
	var hi uint64
	if shift != 0 {
		hi = digitAt(x, limb+1)
	}
	var word uint64
	if shift == 0 {
		word = lo
	} else {
		word = (lo >> shift) | (hi << (64 - shift))
	}
	if l >= 64 {
		return word
	}
	mask := (uint64(1) << l) - 1
	return word & mask
}

// DigitSize returns ceil(bitsize/64), the number of limbs needed to hold x.
func DigitSize(x []uint64) uint64 {
	bs := BitSize(x)
	return (bs + 63) / 64
}

// BitSize returns the position of the top set bit plus one (0 if x == 0).
func BitSize(x []uint64) uint64 {
	k := uint64(len(x))
	return 64*k - Clz(x)
}

// Clz returns the number of leading zero bits of x treated as a 64k-bit
// integer. Returns 64k if x == 0.
func Clz(x []uint64) uint64 {
	k := len(x)
	var total uint64
	allZeroAbove := uint64(1)
	for i := k - 1; i >= 0; i-- {
		wz := WordClz(x[i])
		total += allZeroAbove * wz
		// allZeroAbove becomes 0 once we've seen a nonzero limb, so
		// lower (less significant) limbs no longer contribute.
		allZeroAbove &= 1 ^ ctMask(x[i])&1
	}
	return total
}

// Ctz returns the number of trailing zero bits of x. Returns 64k if x == 0.
func Ctz(x []uint64) uint64 {
	k := len(x)
	var total uint64
	allZeroBelow := uint64(1)
	for i := 0; i < k; i++ {
		wz := WordCtz(x[i])
		total += allZeroBelow * wz
		allZeroBelow &= 1 ^ ctMask(x[i])&1
	}
	return total
}

// Cld returns Clz(x) divided by 64 (whole limbs of leading zeros).
func Cld(x []uint64) uint64 { return Clz(x) / 64 }

// Ctd returns Ctz(x) divided by 64 (whole limbs of trailing zeros).
func Ctd(x []uint64) uint64 { return Ctz(x) / 64 }

// Pow2 sets z to 2^n truncated to 64*len(z) bits.
func Pow2(z []uint64, n uint64) {
	for i := range z {
		z[i] = 0
	}
	k := uint64(len(z))
	if n >= 64*k {
		return
	}
	limb := n / 64
	shift := n % 64
	z[limb] = uint64(1) << shift
}

// Mux performs a constant-time select: z = x if p != 0, else z = y.
func Mux(p uint64, z, x, y []uint64) {
	m := ctMask(p)
	for i := range z {
		z[i] = (x[i] & m) | (y[i] &^ m)
	}
}

// Mux16 selects block i (0..15) of 16 consecutive k-limb blocks packed
// in blocks (len(blocks) == 16*len(z)) into z, in constant time over i.
func Mux16(z []uint64, blocks []uint64, i uint64) {
	k := len(z)
	for j := range z {
		z[j] = 0
	}
	for b := uint64(0); b < 16; b++ {
		sel := ctMask(b ^ i)
		sel = ^sel // all-ones iff b == i
		for j := 0; j < k; j++ {
			z[j] |= blocks[int(b)*k+j] & sel
		}
	}
}

// ShlSmall sets z = x * 2^(c mod 64) truncated to len(z) limbs and
// returns the bits shifted out of the top.
func ShlSmall(z []uint64, x []uint64, c uint) uint64 {
	c &= 63
	k2 := len(z)
	// word(i) = the 64 bits of x*2^c at limb position i: the low 64-c
	// bits come from x[i] shifted up, the top c bits are the carry down
	// from the next less significant limb, x[i-1]. Go zeroes shifts by
	// >= 64, so this also covers c == 0 correctly (x[i-1] >> 64 == 0)
	// without a separate case.
	word := func(i int) uint64 {
		lo := digitAt(x, i)
		hi := digitAt(x, i-1)
		return (lo << c) | (hi >> (64 - c))
	}
	// Computed high to low so that an in-place call (z aliasing x, as
	// ModReduce does) never reads a limb this call
	// has already overwritten: word(i) depends on x[i-1], one position
	// below the one just written.
	carry := word(k2)
	for i := k2 - 1; i >= 0; i-- {
		z[i] = word(i)
	}
	return carry
}

// ShrSmall sets z = floor(x / 2^(c mod 64)) on len(z) output limbs,
// zero-extending x to max(len(x), len(z)), and returns the low (c mod 64)
// bits of x packed into the high end of the returned word (bits shifted
// left by 64-c), not simply "x mod 2^c".
func ShrSmall(z []uint64, x []uint64, c uint) uint64 {
	c &= 63
	k2 := len(z)
	for i := 0; i < k2; i++ {
		lo := digitAt(x, i)
		hi := digitAt(x, i+1)
		z[i] = (lo >> c) | (hi << (64 - c))
	}
	// Go zeroes a shift by >= 64, so at c == 0 this correctly yields 0
	// (no bits were shifted out) rather than needing a separate case.
	low := digitAt(x, 0)
	return low << (64 - c)
}

// Normalize left-shifts z in place by Clz(z), returning the shift count;
// the value is multiplied by 2^shift (z, so far, retains its bit length,
// just moved to occupy the top bit).
func Normalize(z []uint64) uint64 {
	shift := Clz(z)
	k := len(z)
	limbShift := int(shift / 64)
	bitShift := uint(shift % 64)

	// In-place, processed top-down: z[i] only ever depends on source
	// indices <= i - limbShift, all strictly below any index already
	// written, so no scratch buffer is needed.
	for i := k - 1; i >= 0; i-- {
		hiIdx := i - limbShift
		var hi, lo uint64
		if hiIdx >= 0 {
			hi = z[hiIdx]
		}
		if hiIdx-1 >= 0 {
			lo = z[hiIdx-1]
		}
		if bitShift == 0 {
			z[i] = hi
		} else {
			z[i] = (hi << bitShift) | (lo >> (64 - bitShift))
		}
	}
	return shift
}
