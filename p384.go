package bignum

// P-384's counterpart to p256.go: fixed k=6 bindings of the generic
// Montgomery/number-theoretic layers to the NIST P-384 field prime and
// group order.

// P384 is the NIST P-384 field prime, little-endian limbs.
var P384 = [6]uint64{
	0x00000000ffffffff,
	0xffffffff00000000,
	0xfffffffffffffffe,
	0xffffffffffffffff,
	0xffffffffffffffff,
	0xffffffffffffffff,
}

// N384 is the order of the P-384 base point, little-endian limbs.
var N384 = [6]uint64{
	0xecec196accc52973,
	0x581a0db248b0a77a,
	0xc7634d81f4372ddf,
	0xffffffffffffffff,
	0xffffffffffffffff,
	0xffffffffffffffff,
}

// AddP384 sets z = (x+y) mod p_384. Precondition: x, y < p_384.
func AddP384(z, x, y []uint64) { ModAdd(z, x, y, P384[:]) }

// SubP384 sets z = (x-y) mod p_384. Precondition: x, y < p_384.
func SubP384(z, x, y []uint64) { ModSub(z, x, y, P384[:]) }

// DoubleP384 sets z = (2x) mod p_384. Precondition: x < p_384.
func DoubleP384(z, x []uint64) { ModDouble(z, x, P384[:]) }

// TripleP384 sets z = (3x) mod p_384. Precondition: x < p_384.
func TripleP384(z, x []uint64) {
	var t [6]uint64
	ModDouble(t[:], x, P384[:])
	ModAdd(z, t[:], x, P384[:])
}

// HalveP384 sets z = (x * 2^-1) mod p_384. Precondition: x < p_384.
func HalveP384(z, x []uint64) {
	var t [6]uint64
	ModHalve(z, x, P384[:], t[:])
}

// NegP384 sets z = (-x) mod p_384. Precondition: x < p_384.
func NegP384(z, x []uint64) { ModOptNeg(z, 1, x, P384[:]) }

// OptNegP384 sets z = (-x mod p_384) if p != 0, else z = x.
// Precondition: x < p_384.
func OptNegP384(z []uint64, p uint64, x []uint64) { ModOptNeg(z, p, x, P384[:]) }

// ToMontP384 sets z = (x * R) mod p_384, the Montgomery image of x.
func ToMontP384(z, x []uint64) {
	var montifier, t [6]uint64
	Montifier(montifier[:], P384[:], t[:])
	MontMul(z, x, montifier[:], P384[:])
}

// DeMontP384 sets z = (x * R^-1) mod p_384, strict. Precondition:
// x < p_384*R.
func DeMontP384(z, x []uint64) { Demont(z, x, P384[:]) }

// DeAmontP384 is DeMontP384's almost-reduction counterpart: z < 2*p_384.
func DeAmontP384(z, x []uint64) { DeAmont(z, x, P384[:]) }

// MontMulP384 sets z = (x*y*R^-1) mod p_384, strict. Precondition:
// x, y < p_384.
func MontMulP384(z, x, y []uint64) { MontMul(z, x, y, P384[:]) }

// MontSqrP384 sets z = (x^2*R^-1) mod p_384, strict. Precondition:
// x < p_384.
func MontSqrP384(z, x []uint64) { MontSqr(z, x, P384[:]) }

// AMontMulP384 sets z congruent to x*y*R^-1 (mod p_384), z < 2*p_384.
func AMontMulP384(z, x, y []uint64) { AMontMul(z, x, y, P384[:]) }

// AMontSqrP384 sets z congruent to x^2*R^-1 (mod p_384), z < 2*p_384.
func AMontSqrP384(z, x []uint64) { AMontSqr(z, x, P384[:]) }

// ModP384 reduces an arbitrary-length x modulo p_384 into 6 limbs.
func ModP384(z, x []uint64) { ModReduce(z, x, P384[:]) }

// ModP3846 reduces an exactly-6-limb x modulo p_384, valid when
// x < 2*p_384.
func ModP3846(z, x []uint64) {
	if len(x) != 6 {
		panic("bignum: mod_p384_6 requires a 6-limb input")
	}
	var sub [6]uint64
	borrow := Sub(sub[:], x, P384[:])
	Mux(1^borrow, z, sub[:], x)
}

// ModN384 reduces an arbitrary-length x modulo n_384 into 6 limbs.
func ModN384(z, x []uint64) { ModReduce(z, x, N384[:]) }

// ModN3846 reduces an exactly-6-limb x modulo n_384, valid when
// x < 2*n_384.
func ModN3846(z, x []uint64) {
	if len(x) != 6 {
		panic("bignum: mod_n384_6 requires a 6-limb input")
	}
	var sub [6]uint64
	borrow := Sub(sub[:], x, N384[:])
	Mux(1^borrow, z, sub[:], x)
}
