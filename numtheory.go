package bignum

// This file implements spec.md section 4.6, the number-theoretic layer.
// modadd/modsub/moddouble/modhalve stay constant-time, built from the
// same mask-and-select idiom as add.go. modinv and coprime are the two
// kernels spec.md itself documents as data-variable (binary extended
// GCD, grounded in the Bandersnatch pack's
// uint256_modular.go/ModularInverse_a_NAIVEHAC, generalized from its
// hardcoded 4-limb a/b/c/d bookkeeping to arbitrary k); their loop
// bodies branch on limb parity and magnitude by design, and for that
// reason they also use ordinary local temporaries rather than a
// caller scratch buffer for every intermediate, in the same spirit as
// montgomery.go's negmodinv/modifier: these are one-time setup
// operations, not the constant-time hot path.

// shrOneWithTopBit shifts x right by one bit in place, shifting topBit
// (0 or 1) into the new most-significant bit.
func shrOneWithTopBit(x []uint64, topBit uint64) {
	k := len(x)
	for i := 0; i < k-1; i++ {
		x[i] = (x[i] >> 1) | (x[i+1] << 63)
	}
	if k > 0 {
		x[k-1] = (x[k-1] >> 1) | (topBit << 63)
	}
}

// ModAdd sets z = (x+y) mod m, constant-time. Precondition: x, y < m.
// Destructively subtracts m and, via OptAdd's masked add, restores the
// unsubtracted sum when that subtraction wasn't needed — the same
// add-then-maybe-undo trick MontRedc uses, avoiding a second k-limb
// buffer since modadd's contract (spec.md 4.6) gives it no scratch
// parameter.
func ModAdd(z, x, y, m []uint64) {
	carry := Add(z, x, y)
	borrow := Sub(z, z, m)
	needSub := carry | (1 ^ borrow)
	OptAdd(z, z, 1^needSub, m)
}

// ModSub sets z = (x-y) mod m, constant-time. Precondition: x, y < m.
func ModSub(z, x, y, m []uint64) {
	borrow := Sub(z, x, y)
	OptAdd(z, z, borrow, m)
}

// ModDouble sets z = (2x) mod m, constant-time. Precondition: x < m.
func ModDouble(z, x, m []uint64) {
	ModAdd(z, x, x, m)
}

// ModHalve sets z = (x * 2^-1) mod m for odd m, constant-time.
// Precondition: x < m. t is scratch the size of z (modhalve has no
// caller-supplied scratch in spec.md's kernel table, so this adds one
// rather than allocating internally).
func ModHalve(z, x, m, t []uint64) {
	odd := x[0] & 1

	ShrSmall(z, x, 1)

	carry := Add(t, x, m)
	shrOneWithTopBit(t, carry)

	Mux(odd, z, t, z)
}

func subMod(z, x, y, m []uint64) {
	b := Sub(z, x, y)
	if b != 0 {
		Add(z, z, m)
	}
}

// ModInv sets z such that a*z == 1 (mod m), 0 <= z < m, for odd modulus
// m and a coprime to m. t is scratch the same size as z (unused by this
// implementation beyond sizing convention, kept for contract parity
// with the other Montgomery-layer kernels that do need it). Not
// constant-time: the binary extended GCD below branches on the parity
// and relative magnitude of intermediate values, though its round count
// depends only on bitsize(m).
func ModInv(z, a, m, t []uint64) {
	k := len(z)
	_ = t

	u := make([]uint64, k)
	v := make([]uint64, k)
	cu := make([]uint64, k)
	cv := make([]uint64, k)
	Copy(u, a)
	Copy(v, m)
	OfWord(cu, 1)

	rounds := 2 * int(BitSize(m))
	if rounds == 0 {
		rounds = 1
	}

	// halve divides w by two and its cofactor cw by two modulo m. The
	// subtraction cases below use it too: the difference of two odd
	// values is even, so each round shrinks u or v by at least one bit.
	halve := func(w, cw []uint64) {
		ShrSmall(w, w, 1)
		if Odd(cw) == 1 {
			carry := Add(cw, cw, m)
			shrOneWithTopBit(cw, carry)
		} else {
			shrOneWithTopBit(cw, 0)
		}
	}

	for i := 0; i < rounds; i++ {
		if IsZero(u) == 1 {
			continue
		}
		switch {
		case Even(u) == 1:
			ShrSmall(u, u, 1)
			if Odd(cu) == 1 {
				carry := Add(cu, cu, m)
				shrOneWithTopBit(cu, carry)
			} else {
				shrOneWithTopBit(cu, 0)
			}
		case Even(v) == 1:
			ShrSmall(v, v, 1)
			if Odd(cv) == 1 {
				carry := Add(cv, cv, m)
				shrOneWithTopBit(cv, carry)
			} else {
				shrOneWithTopBit(cv, 0)
			}
		case Ge(u, v) == 1:
			Sub(u, u, v)
			subMod(cu, cu, cv, m)
			halve(u, cu)
		default:
			Sub(v, v, u)
			subMod(cv, cv, cu, m)
			halve(v, cv)
		}
	}

	if IsZero(u) == 1 {
		Copy(z, cv)
	} else {
		Copy(z, cu)
	}
}

// binaryGCD computes gcd(u, v) into a fresh k-limb slice, consuming
// (destroying) its u, v arguments.
func binaryGCD(u, v []uint64) []uint64 {
	k := len(u)
	rounds := 128 * k
	if rounds == 0 {
		rounds = 1
	}
	for i := 0; i < rounds; i++ {
		if IsZero(u) == 1 {
			continue
		}
		switch {
		case Even(u) == 1:
			ShrSmall(u, u, 1)
		case Even(v) == 1:
			ShrSmall(v, v, 1)
		case Ge(u, v) == 1:
			Sub(u, u, v)
			ShrSmall(u, u, 1)
		default:
			Sub(v, v, u)
			ShrSmall(v, v, 1)
		}
	}
	if IsZero(u) == 1 {
		return v
	}
	return u
}

// Coprime returns 1 iff gcd(x, y) == 1, else 0. t is scratch sized like
// x, y, kept for contract parity; this implementation allocates its own
// working copies since x, y must survive unmodified for the caller.
// Not constant-time, per spec.md's explicit exception for this kernel.
func Coprime(x, y, t []uint64) uint64 {
	_ = t
	k := len(x)
	if Even(x) == 1 && Even(y) == 1 {
		return 0
	}
	u := make([]uint64, k)
	v := make([]uint64, k)
	Copy(u, x)
	Copy(v, y)
	g := binaryGCD(u, v)
	one := make([]uint64, k)
	OfWord(one, 1)
	return Eq(g, one)
}
