package bignum

// This file implements spec.md section 4.7's P-256 specialization: the
// fixed k=4 arithmetic, Montgomery conversions and products modulo the
// NIST P-256 field prime and group order. It does not hand-roll a
// curve-specific reduction exploiting p_256's low Hamming weight (the
// asm fast paths the reference spec alludes to) — instead it is a thin,
// fixed-size binding of the generic Montgomery/number-theoretic layers
// to the canonical constants, in the same "specialize the generic
// kernel to a fixed shape" spirit as mul.go's Mul4x8. Hand-tuned
// reduction for p_256's shape would have to be grounded in
// architecture-specific assembly this pack has no Go analogue for; see
// DESIGN.md.

// P256 is the NIST P-256 field prime, little-endian limbs.
var P256 = [4]uint64{
	0xffffffffffffffff,
	0x00000000ffffffff,
	0x0000000000000000,
	0xffffffff00000001,
}

// N256 is the order of the P-256 base point, little-endian limbs.
var N256 = [4]uint64{
	0xf3b9cac2fc632551,
	0xbce6faada7179e84,
	0xffffffffffffffff,
	0xffffffff00000000,
}

// AddP256 sets z = (x+y) mod p_256. Precondition: x, y < p_256.
func AddP256(z, x, y []uint64) { ModAdd(z, x, y, P256[:]) }

// SubP256 sets z = (x-y) mod p_256. Precondition: x, y < p_256.
func SubP256(z, x, y []uint64) { ModSub(z, x, y, P256[:]) }

// DoubleP256 sets z = (2x) mod p_256. Precondition: x < p_256.
func DoubleP256(z, x []uint64) { ModDouble(z, x, P256[:]) }

// TripleP256 sets z = (3x) mod p_256. Precondition: x < p_256.
func TripleP256(z, x []uint64) {
	var t [4]uint64
	ModDouble(t[:], x, P256[:])
	ModAdd(z, t[:], x, P256[:])
}

// HalveP256 sets z = (x * 2^-1) mod p_256. Precondition: x < p_256.
func HalveP256(z, x []uint64) {
	var t [4]uint64
	ModHalve(z, x, P256[:], t[:])
}

// NegP256 sets z = (-x) mod p_256. Precondition: x < p_256.
func NegP256(z, x []uint64) { ModOptNeg(z, 1, x, P256[:]) }

// OptNegP256 sets z = (-x mod p_256) if p != 0, else z = x.
// Precondition: x < p_256.
func OptNegP256(z []uint64, p uint64, x []uint64) { ModOptNeg(z, p, x, P256[:]) }

// ToMontP256 sets z = (x * R) mod p_256, the Montgomery image of x.
func ToMontP256(z, x []uint64) {
	var montifier, t [4]uint64
	Montifier(montifier[:], P256[:], t[:])
	MontMul(z, x, montifier[:], P256[:])
}

// DeMontP256 sets z = (x * R^-1) mod p_256, strict. Precondition:
// x < p_256*R.
func DeMontP256(z, x []uint64) { Demont(z, x, P256[:]) }

// DeAmontP256 is DeMontP256's almost-reduction counterpart: z < 2*p_256.
func DeAmontP256(z, x []uint64) { DeAmont(z, x, P256[:]) }

// MontMulP256 sets z = (x*y*R^-1) mod p_256, strict. Precondition:
// x, y < p_256.
func MontMulP256(z, x, y []uint64) { MontMul(z, x, y, P256[:]) }

// MontSqrP256 sets z = (x^2*R^-1) mod p_256, strict. Precondition:
// x < p_256.
func MontSqrP256(z, x []uint64) { MontSqr(z, x, P256[:]) }

// AMontMulP256 sets z congruent to x*y*R^-1 (mod p_256), z < 2*p_256.
func AMontMulP256(z, x, y []uint64) { AMontMul(z, x, y, P256[:]) }

// AMontSqrP256 sets z congruent to x^2*R^-1 (mod p_256), z < 2*p_256.
func AMontSqrP256(z, x []uint64) { AMontSqr(z, x, P256[:]) }

// ModP256 reduces an arbitrary-length x modulo p_256 into 4 limbs.
func ModP256(z, x []uint64) { ModReduce(z, x, P256[:]) }

// ModP2564 reduces an exactly-4-limb x modulo p_256 with a single
// conditional subtraction of p_256, which suffices because every 4-limb
// value is below 2*p_256.
func ModP2564(z, x []uint64) {
	if len(x) != 4 {
		panic("bignum: mod_p256_4 requires a 4-limb input")
	}
	var sub [4]uint64
	borrow := Sub(sub[:], x, P256[:])
	Mux(1^borrow, z, sub[:], x)
}

// ModN256 reduces an arbitrary-length x modulo n_256 into 4 limbs.
func ModN256(z, x []uint64) { ModReduce(z, x, N256[:]) }

// ModN2564 reduces an exactly-4-limb x modulo n_256, valid when
// x < 2*n_256.
func ModN2564(z, x []uint64) {
	if len(x) != 4 {
		panic("bignum: mod_n256_4 requires a 4-limb input")
	}
	var sub [4]uint64
	borrow := Sub(sub[:], x, N256[:])
	Mux(1^borrow, z, sub[:], x)
}
