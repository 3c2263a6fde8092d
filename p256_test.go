package bignum

import (
	"math/big"
	"testing"
)

// TestP256MontgomeryIdentity is spec.md section 8's concrete end-to-end
// scenario 1.
func TestP256MontgomeryIdentity(t *testing.T) {
	x := []uint64{1, 0, 0, 0}
	want := []uint64{
		0x0000000000000001,
		0xffffffff00000000,
		0xffffffffffffffff,
		0x00000000fffffffe,
	}

	got := make([]uint64, 4)
	ToMontP256(got, x)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ToMontP256(1) limb %d = %#x, want %#x", i, got[i], want[i])
		}
	}

	back := make([]uint64, 4)
	DeMontP256(back, got)
	if toBig(back).Cmp(toBig(x)) != 0 {
		t.Fatalf("DeMontP256(ToMontP256(1)) = %v, want 1", toBig(back))
	}
}

func TestP256Arithmetic(t *testing.T) {
	rng := newRand(60)
	bp := toBig(P256[:])
	for trial := 0; trial < 150; trial++ {
		x := fromBig(4, modBig(randLimbs(rng, 4), bp))
		y := fromBig(4, modBig(randLimbs(rng, 4), bp))

		z := make([]uint64, 4)
		AddP256(z, x, y)
		want := new(big.Int).Mod(new(big.Int).Add(toBig(x), toBig(y)), bp)
		if toBig(z).Cmp(want) != 0 {
			t.Fatalf("AddP256 mismatch")
		}

		SubP256(z, x, y)
		want = new(big.Int).Mod(new(big.Int).Sub(toBig(x), toBig(y)), bp)
		if toBig(z).Cmp(want) != 0 {
			t.Fatalf("SubP256 mismatch")
		}

		DoubleP256(z, x)
		want = new(big.Int).Mod(new(big.Int).Lsh(toBig(x), 1), bp)
		if toBig(z).Cmp(want) != 0 {
			t.Fatalf("DoubleP256 mismatch")
		}

		TripleP256(z, x)
		want = new(big.Int).Mod(new(big.Int).Mul(big.NewInt(3), toBig(x)), bp)
		if toBig(z).Cmp(want) != 0 {
			t.Fatalf("TripleP256 mismatch")
		}

		HalveP256(z, x)
		doubled := make([]uint64, 4)
		DoubleP256(doubled, z)
		if toBig(doubled).Cmp(toBig(x)) != 0 {
			t.Fatalf("HalveP256 round trip failed")
		}

		NegP256(z, x)
		want = new(big.Int).Mod(new(big.Int).Neg(toBig(x)), bp)
		if toBig(z).Cmp(want) != 0 {
			t.Fatalf("NegP256 mismatch")
		}
	}
}

func TestP256MontMulRoundTrip(t *testing.T) {
	rng := newRand(61)
	bp := toBig(P256[:])
	for trial := 0; trial < 100; trial++ {
		x := fromBig(4, modBig(randLimbs(rng, 4), bp))
		y := fromBig(4, modBig(randLimbs(rng, 4), bp))

		mx := make([]uint64, 4)
		my := make([]uint64, 4)
		ToMontP256(mx, x)
		ToMontP256(my, y)

		prod := make([]uint64, 4)
		MontMulP256(prod, mx, my)
		if Lt(prod[:], P256[:]) != 1 {
			t.Fatal("MontMulP256 result not < p_256")
		}

		rec := make([]uint64, 4)
		DeMontP256(rec, prod)
		want := new(big.Int).Mod(new(big.Int).Mul(toBig(x), toBig(y)), bp)
		if toBig(rec).Cmp(want) != 0 {
			t.Fatalf("MontMulP256 round trip mismatch: got %v want %v", toBig(rec), want)
		}

		sq := make([]uint64, 4)
		MontSqrP256(sq, mx)
		recSq := make([]uint64, 4)
		DeMontP256(recSq, sq)
		wantSq := new(big.Int).Mod(new(big.Int).Mul(toBig(x), toBig(x)), bp)
		if toBig(recSq).Cmp(wantSq) != 0 {
			t.Fatalf("MontSqrP256 round trip mismatch")
		}

		almost := make([]uint64, 4)
		AMontMulP256(almost, mx, my)
		twoP := new(big.Int).Lsh(bp, 1)
		if toBig(almost).Cmp(twoP) >= 0 {
			t.Fatal("AMontMulP256 result not < 2*p_256")
		}
		if new(big.Int).Mod(toBig(almost), bp).Cmp(new(big.Int).Mod(toBig(prod), bp)) != 0 {
			t.Fatal("AMontMulP256 not congruent to MontMulP256")
		}
	}
}

// TestModP256Agreement is spec.md section 8's concrete end-to-end scenario
// 5, scaled down for test speed: bignum_mod_p256 agrees with naive
// division by p_256 for arbitrary-length input.
func TestModP256Agreement(t *testing.T) {
	rng := newRand(62)
	bp := toBig(P256[:])
	for trial := 0; trial < 80; trial++ {
		n := rng.Intn(35)
		x := randLimbs(rng, n)
		z := make([]uint64, 4)
		ModP256(z, x)
		want := new(big.Int).Mod(toBig(x), bp)
		if toBig(z).Cmp(want) != 0 {
			t.Fatalf("ModP256 mismatch n=%d: got %v want %v", n, toBig(z), want)
		}
	}
}

func TestModP2564(t *testing.T) {
	rng := newRand(63)
	bp := toBig(P256[:])
	twoP := new(big.Int).Lsh(bp, 1)
	for trial := 0; trial < 80; trial++ {
		x := fromBig(4, modBig(randLimbs(rng, 4), twoP))
		z := make([]uint64, 4)
		ModP2564(z, x)
		want := new(big.Int).Mod(toBig(x), bp)
		if toBig(z).Cmp(want) != 0 {
			t.Fatalf("ModP2564 mismatch: got %v want %v", toBig(z), want)
		}
	}
}

func TestModN256Agreement(t *testing.T) {
	rng := newRand(64)
	bn := toBig(N256[:])
	for trial := 0; trial < 80; trial++ {
		n := rng.Intn(35)
		x := randLimbs(rng, n)
		z := make([]uint64, 4)
		ModN256(z, x)
		want := new(big.Int).Mod(toBig(x), bn)
		if toBig(z).Cmp(want) != 0 {
			t.Fatalf("ModN256 mismatch n=%d: got %v want %v", n, toBig(z), want)
		}
	}
}
