package bignum

import (
	"math/big"
	"math/rand"
)

// Shared test-only helpers converting between []uint64 limb vectors and
// math/big.Int, and random-limb generation, the same oracle-comparison
// style the field-arithmetic corpus tests itself with (see DESIGN.md's
// "Test tooling" entry).

func toBig(x []uint64) *big.Int {
	n := new(big.Int)
	for i := len(x) - 1; i >= 0; i-- {
		n.Lsh(n, 64)
		n.Or(n, new(big.Int).SetUint64(x[i]))
	}
	return n
}

func fromBig(k int, n *big.Int) []uint64 {
	z := make([]uint64, k)
	m := new(big.Int).Set(n)
	mask := new(big.Int).SetUint64(^uint64(0))
	for i := 0; i < k; i++ {
		w := new(big.Int).And(m, mask)
		z[i] = w.Uint64()
		m.Rsh(m, 64)
	}
	return z
}

func randLimbs(rng *rand.Rand, k int) []uint64 {
	z := make([]uint64, k)
	for i := range z {
		z[i] = rng.Uint64()
	}
	return z
}

func randOddModulus(rng *rand.Rand, k int) []uint64 {
	if k == 0 {
		return nil
	}
	m := randLimbs(rng, k)
	m[0] |= 1
	m[k-1] |= 1 << 63 // keep the top bit set so bitsize stays exactly 64k
	return m
}

func modBig(x []uint64, m *big.Int) *big.Int {
	v := new(big.Int).Mod(toBig(x), m)
	return v
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
