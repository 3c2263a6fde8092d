package bignum

// This file implements spec.md section 4.7's byte-conversion kernels:
// big-endian byte-string <-> little-endian limb-vector conversion for
// the fixed P-256 (4-limb) and P-384 (6-limb) widths, in the style of
// math/big's bigEndianWord/big.Int.SetBytes but fixed-size and
// allocation-free, writing directly into caller buffers.

func bigEndianToLimbs(z []uint64, b []byte) {
	k := len(z)
	for i := 0; i < k; i++ {
		off := len(b) - (i+1)*8
		var w uint64
		for j := 0; j < 8; j++ {
			w = w<<8 | uint64(b[off+j])
		}
		z[i] = w
	}
}

func limbsToBigEndian(b []byte, x []uint64) {
	k := len(x)
	for i := 0; i < k; i++ {
		w := x[i]
		off := len(b) - (i+1)*8
		for j := 7; j >= 0; j-- {
			b[off+j] = byte(w)
			w >>= 8
		}
	}
}

// FromBytes4 parses a 32-byte big-endian string into a 4-limb bignum.
func FromBytes4(z []uint64, b []byte) {
	if len(z) != 4 || len(b) != 32 {
		panic("bignum: frombytes_4 requires a 4-limb output and a 32-byte input")
	}
	bigEndianToLimbs(z, b)
}

// FromBytes6 parses a 48-byte big-endian string into a 6-limb bignum.
func FromBytes6(z []uint64, b []byte) {
	if len(z) != 6 || len(b) != 48 {
		panic("bignum: frombytes_6 requires a 6-limb output and a 48-byte input")
	}
	bigEndianToLimbs(z, b)
}

// ToBytes4 writes a 4-limb bignum as a 32-byte big-endian string.
func ToBytes4(b []byte, x []uint64) {
	if len(x) != 4 || len(b) != 32 {
		panic("bignum: tobytes_4 requires a 4-limb input and a 32-byte output")
	}
	limbsToBigEndian(b, x)
}

// ToBytes6 writes a 6-limb bignum as a 48-byte big-endian string.
func ToBytes6(b []byte, x []uint64) {
	if len(x) != 6 || len(b) != 48 {
		panic("bignum: tobytes_6 requires a 6-limb input and a 48-byte output")
	}
	limbsToBigEndian(b, x)
}

// BigEndian4 reverses limb order and byte order within each limb: it
// turns a little-endian 4-limb bignum into the limb sequence you'd get
// by reading the same bytes big-endian, and is its own inverse. Safe
// when z and x alias the same storage.
func BigEndian4(z, x []uint64) {
	if len(z) != 4 || len(x) != 4 {
		panic("bignum: bigendian_4 requires 4-limb slices")
	}
	var tmp [4]uint64
	for i := 0; i < 4; i++ {
		tmp[i] = WordByteReverse(x[3-i])
	}
	copy(z, tmp[:])
}

// BigEndian6 is BigEndian4's 6-limb counterpart.
func BigEndian6(z, x []uint64) {
	if len(z) != 6 || len(x) != 6 {
		panic("bignum: bigendian_6 requires 6-limb slices")
	}
	var tmp [6]uint64
	for i := 0; i < 6; i++ {
		tmp[i] = WordByteReverse(x[5-i])
	}
	copy(z, tmp[:])
}
