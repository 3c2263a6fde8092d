package bignum

import "math/bits"

// This file implements spec.md section 4.5, the Montgomery layer, in the
// style of nat.go's montgomery(): a CIOS reduction loop built from
// addMulVVW, generalized from nat.go's fixed "reduce one word, shift the
// window down" loop to the explicit, non-shifting offset form spec.md's
// emontredc describes ("z <- z + q_i*m*2^(64i), which clears z[i]").
//
// negmodinv, modifier, montifier and amontifier are one-time per-modulus
// setup operations (the spec's own words: "typical usage: compute once
// per long-lived key" applies equally here), not part of the hot
// arithmetic path. NegModInv builds its working values with make;
// Modifier, Montifier and AMontifier work in the caller's scratch t.
// The reduction and product kernels below (AMontRedc, MontRedc and the
// Demont/DeAmont/AMontMul/MontMul/square forms built on them) also
// allocate their working buffers on every call, and so do the P-256/P-384
// Montgomery wrappers in p256.go/p384.go that call them.

// NegModInv computes z such that z*m == -1 (mod 2^(64*len(z))), for odd
// m of the same length, by Hensel lifting: a 64-bit seed from
// WordNegModInv is doubled in precision each round.
func NegModInv(z, m []uint64) {
	k := len(z)
	for i := range z {
		z[i] = 0
	}
	if k == 0 {
		return
	}
	z[0] = WordNegModInv(m[0])
	bcur := 1
	for bcur < k {
		nb := bcur * 2
		if nb > k {
			nb = k
		}
		e := make([]uint64, nb)
		Mul(e, z[:bcur], m[:nb])
		addOne(e)
		onePlusE := make([]uint64, nb)
		onePlusE[0] = 1
		Add(onePlusE, onePlusE, e)
		zNew := make([]uint64, nb)
		Mul(zNew, z[:bcur], onePlusE)
		copy(z[:nb], zNew)
		bcur = nb
	}
}

func addOne(z []uint64) {
	var c uint64 = 1
	for i := range z {
		z[i], c = bits.Add64(z[i], c, 0)
	}
}

// reduceRounds runs `rounds` CIOS steps of Montgomery reduction over buf
// in place, with modulus m (k limbs) and word-level negated inverse w.
// buf must be at least rounds+k limbs long; any carry propagating past
// the end of buf is returned (0 in all well-formed uses where buf has
// the extra headroom limb the caller allocated for it).
func reduceRounds(buf, m []uint64, w uint64, rounds int) uint64 {
	k := len(m)
	var topCarry uint64
	for i := 0; i < rounds; i++ {
		qi := buf[i] * w
		c := addMulVVW(buf[i:i+k], m, qi)
		idx := i + k
		carry := c
		for idx < len(buf) {
			buf[idx], carry = bits.Add64(buf[idx], carry, 0)
			idx++
		}
		topCarry |= carry
		buf[i] = qi
	}
	return topCarry & 1
}

// EMontRedc performs the in-place extended Montgomery reduction: z has
// 2k limbs representing x on entry (k = len(m)); on return z[0:k] holds
// q = (x * -m^-1) mod R and z[k:2k] holds floor((x+q*m)/R). w must equal
// WordNegModInv(m[0]). Returns the top carry out of the 2k limbs (1 iff
// x+q*m >= R^2).
func EMontRedc(z, m []uint64, w uint64) uint64 {
	k := len(m)
	if len(z) != 2*k {
		panic("bignum: emontredc requires len(z) == 2*len(m)")
	}
	return reduceRounds(z, m, w, k)
}

// EMontRedc8n is EMontRedc restricted to moduli whose length is a
// positive multiple of 8 (the reference's unrolled variant); the
// contract is identical, only the length precondition differs.
func EMontRedc8n(z, m []uint64, w uint64) uint64 {
	if len(m) == 0 || len(m)%8 != 0 {
		panic("bignum: emontredc_8n requires len(m) a positive multiple of 8")
	}
	return EMontRedc(z, m, w)
}

// montReduceBuf builds a (p+k+1)-limb scratch buffer holding x
// zero-extended/truncated to p+k limbs (spec.md: "only the low
// min(n, p+k) limbs of x affect the result"), runs p CIOS rounds, and
// returns the (k+1)-limb tail: residue in [0:k], the extra headroom
// limb in [k] which is always 0 or 1 given the standard Montgomery
// input bound x < 2^(64p)*(m+1).
func montReduceBuf(x, m []uint64, p int) []uint64 {
	k := len(m)
	w := WordNegModInv(m[0])
	buf := make([]uint64, p+k+1)
	Copy(buf[:p+k], x)
	reduceRounds(buf, m, w, p)
	return buf[p:]
}

// AMontRedc computes z congruent to x*2^(-64p) (mod m), with z in
// [0, 2m). m has k = len(z) limbs; x has n = len(x) limbs.
func AMontRedc(z []uint64, x []uint64, m []uint64, p int) {
	tail := montReduceBuf(x, m, p)
	k := len(m)
	// tail[:k] + tail[k]*2^(64k) is below 2m; when the headroom limb is
	// set, one subtraction of m brings the value back into k limbs.
	OptSub(tail[:k], tail[:k], tail[k], m)
	copy(z, tail[:len(z)])
}

// MontRedc computes the strict reduction z = x*2^(-64p) mod m, z < m.
func MontRedc(z []uint64, x []uint64, m []uint64, p int) {
	tail := montReduceBuf(x, m, p)
	k := len(m)
	reduced := tail[:k]
	extra := tail[k]
	// reduced + extra*2^(64k) is in [0, 2m); subtract m once if needed.
	// Destructive in-place subtraction plus OptAdd's mask-based add-back
	// avoids a second k-limb scratch buffer (see ModAdd/ModSub in
	// numtheory.go for the same trick).
	borrow := Sub(reduced, reduced, m)
	doSub := extra | (1 ^ borrow)
	OptAdd(reduced, reduced, 1^doSub, m)
	copy(z, reduced)
}

// demont recovers the canonical residue: z = x*R^-1 mod m, strict, where
// R = 2^(64*len(m)). x may have up to 2*len(m) significant limbs.
func Demont(z, x, m []uint64) {
	MontRedc(z, x, m, len(m))
}

// DeAmont is the almost-reduction counterpart of Demont: z in [0, 2m).
func DeAmont(z, x, m []uint64) {
	AMontRedc(z, x, m, len(m))
}

// amontProduct computes the 2k-limb exact product of x and y (each
// k limbs) into a freshly sized buffer; used by the Mont*/AMont* family
// below, which are not on the fixed-size P-256/P-384 fast path.
func amontProduct(x, y []uint64) []uint64 {
	k := len(x)
	p := make([]uint64, 2*k)
	Mul(p, x, y)
	return p
}

// AMontMul computes z congruent to x*y*R^-1 (mod m), z in [0, 2m).
// x, y may be any k-limb values.
func AMontMul(z, x, y, m []uint64) {
	k := len(m)
	p := amontProduct(extendK(x, k), extendK(y, k))
	AMontRedc(z, p, m, k)
}

// AMontSqr is AMontMul(z, x, x, m).
func AMontSqr(z, x, m []uint64) {
	AMontMul(z, x, x, m)
}

// MontMul computes the strict Montgomery product z = x*y*R^-1 mod m,
// z < m. Precondition: x, y < m.
func MontMul(z, x, y, m []uint64) {
	k := len(m)
	p := amontProduct(extendK(x, k), extendK(y, k))
	MontRedc(z, p, m, k)
}

// MontSqr is MontMul(z, x, x, m).
func MontSqr(z, x, m []uint64) {
	MontMul(z, x, x, m)
}

// extendK returns x already-sized or a zero-extended/truncated copy.
func extendK(x []uint64, k int) []uint64 {
	if len(x) == k {
		return x
	}
	z := make([]uint64, k)
	Copy(z, x)
	return z
}

// Modifier computes z = R mod m (R = 2^(64*len(z))) by repeated
// doubling-with-reduction starting from 1, 64*len(z) times. t is scratch
// the same size as z.
func Modifier(z, m, t []uint64) {
	doubleReduce(z, m, t, 64*len(z))
}

// Montifier computes z = R^2 mod m, the same loop run for 128*len(z)
// rounds (equivalently, continuing Modifier's loop for another 64k
// rounds).
func Montifier(z, m, t []uint64) {
	doubleReduce(z, m, t, 128*len(z))
}

// AMontifier computes an "almost" R^2 mod m: congruent to R^2, in
// [0, 2m) but not necessarily < m. Implemented as Montifier's loop with
// the last round subtracting m only when the doubled value overflows
// len(z) limbs.
func AMontifier(z, m, t []uint64) {
	n := 128 * len(z)
	if n == 0 {
		return
	}
	doubleReduce(z, m, t, n-1)
	// One final double; m is subtracted only if 2z does not fit in k limbs.
	carry := ShlSmall(t, z, 1)
	Sub(z, t, m)
	Mux(carry, z, z, t)
}

// doubleReduce sets z = 1, then doubles-and-conditionally-subtracts m
// `rounds` times, leaving z < m throughout.
func doubleReduce(z, m, t []uint64, rounds int) {
	OfWord(z, 1)
	for i := 0; i < rounds; i++ {
		carry := ShlSmall(t, z, 1)
		borrow := Sub(z, t, m)
		doSub := carry | (1 ^ borrow)
		Mux(doSub, z, z, t)
	}
}
