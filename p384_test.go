package bignum

import (
	"math/big"
	"testing"
)

func TestP384Arithmetic(t *testing.T) {
	rng := newRand(70)
	bp := toBig(P384[:])
	for trial := 0; trial < 150; trial++ {
		x := fromBig(6, modBig(randLimbs(rng, 6), bp))
		y := fromBig(6, modBig(randLimbs(rng, 6), bp))

		z := make([]uint64, 6)
		AddP384(z, x, y)
		want := new(big.Int).Mod(new(big.Int).Add(toBig(x), toBig(y)), bp)
		if toBig(z).Cmp(want) != 0 {
			t.Fatalf("AddP384 mismatch")
		}

		SubP384(z, x, y)
		want = new(big.Int).Mod(new(big.Int).Sub(toBig(x), toBig(y)), bp)
		if toBig(z).Cmp(want) != 0 {
			t.Fatalf("SubP384 mismatch")
		}

		TripleP384(z, x)
		want = new(big.Int).Mod(new(big.Int).Mul(big.NewInt(3), toBig(x)), bp)
		if toBig(z).Cmp(want) != 0 {
			t.Fatalf("TripleP384 mismatch")
		}

		HalveP384(z, x)
		doubled := make([]uint64, 6)
		DoubleP384(doubled, z)
		if toBig(doubled).Cmp(toBig(x)) != 0 {
			t.Fatalf("HalveP384 round trip failed")
		}

		NegP384(z, x)
		want = new(big.Int).Mod(new(big.Int).Neg(toBig(x)), bp)
		if toBig(z).Cmp(want) != 0 {
			t.Fatalf("NegP384 mismatch")
		}
		OptNegP384(z, 0, x)
		if toBig(z).Cmp(toBig(x)) != 0 {
			t.Fatalf("OptNegP384(p=0) should copy x")
		}
	}
}

// TestMontRedcP384Bound is spec.md section 8's concrete end-to-end
// scenario 2: for x in [0, 2*p_384) scaled up by R, strict reduction
// stays below p_384.
func TestMontRedcP384Bound(t *testing.T) {
	rng := newRand(71)
	bp := toBig(P384[:])
	twoP := new(big.Int).Lsh(bp, 1)
	for trial := 0; trial < 80; trial++ {
		xHigh := fromBig(6, modBig(randLimbs(rng, 6), twoP))
		x := make([]uint64, 12)
		copy(x[6:], xHigh)

		z := make([]uint64, 6)
		MontRedc(z, x, P384[:], 6)
		if Lt(z, P384[:]) != 1 {
			t.Fatalf("MontRedc(p_384) result not < p_384: got %v", toBig(z))
		}
	}
}

func TestP384MontMulRoundTrip(t *testing.T) {
	rng := newRand(72)
	bp := toBig(P384[:])
	for trial := 0; trial < 80; trial++ {
		x := fromBig(6, modBig(randLimbs(rng, 6), bp))
		y := fromBig(6, modBig(randLimbs(rng, 6), bp))

		mx := make([]uint64, 6)
		my := make([]uint64, 6)
		ToMontP384(mx, x)
		ToMontP384(my, y)

		prod := make([]uint64, 6)
		MontMulP384(prod, mx, my)
		rec := make([]uint64, 6)
		DeMontP384(rec, prod)
		want := new(big.Int).Mod(new(big.Int).Mul(toBig(x), toBig(y)), bp)
		if toBig(rec).Cmp(want) != 0 {
			t.Fatalf("MontMulP384 round trip mismatch: got %v want %v", toBig(rec), want)
		}
	}
}

func TestModP384Agreement(t *testing.T) {
	rng := newRand(73)
	bp := toBig(P384[:])
	for trial := 0; trial < 80; trial++ {
		n := rng.Intn(35)
		x := randLimbs(rng, n)
		z := make([]uint64, 6)
		ModP384(z, x)
		want := new(big.Int).Mod(toBig(x), bp)
		if toBig(z).Cmp(want) != 0 {
			t.Fatalf("ModP384 mismatch n=%d: got %v want %v", n, toBig(z), want)
		}
	}
}

func TestModN384Agreement(t *testing.T) {
	rng := newRand(74)
	bn := toBig(N384[:])
	for trial := 0; trial < 80; trial++ {
		n := rng.Intn(35)
		x := randLimbs(rng, n)
		z := make([]uint64, 6)
		ModN384(z, x)
		want := new(big.Int).Mod(toBig(x), bn)
		if toBig(z).Cmp(want) != 0 {
			t.Fatalf("ModN384 mismatch n=%d: got %v want %v", n, toBig(z), want)
		}
	}
}
