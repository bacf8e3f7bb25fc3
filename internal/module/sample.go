package module

import "github.com/pzverkov/latticekem/internal/shake"

// Uniform expands a 32-byte seed and a pair of matrix indices via SHAKE128
// and rejection-samples 16-bit candidates masked to 13 bits, accepting those
// < Q, producing a polynomial with uniform coefficients (spec §4.4,
// mirroring internal/ring.Uniform at this modulus/degree).
func Uniform(seed []byte, i, j byte) Poly {
	x := shake.New128()
	x.Initialize(append(append(append([]byte{}, seed...), i), j))

	var p Poly
	const blockSize = 168
	buf := make([]byte, blockSize)
	idx := 0
	for idx < N {
		x.Generate(buf)
		for b := 0; b+2 <= len(buf) && idx < N; b += 2 {
			val := uint16(buf[b]) | uint16(buf[b+1])<<8
			val &= 0x1fff // mask to 13 bits
			if val < Q {
				p[idx] = val
				idx++
			}
		}
	}
	return p
}

// Sample draws a centered-binomial-distribution (η=4) noise polynomial from
// a 32-byte seed and a domain nonce: for each coefficient, one byte is drawn
// and split into two 4-bit halves, and the coefficient is the difference of
// their Hamming weights (range [-4, 4]), mapped into Z/qZ.
func Sample(seed []byte, nonce byte) Poly {
	x := shake.New256()
	x.Initialize(append(append([]byte{}, seed...), nonce))

	buf := make([]byte, N)
	x.Generate(buf)

	var p Poly
	for i := 0; i < N; i++ {
		a := popcount4(buf[i] & 0x0f)
		b := popcount4(buf[i] >> 4)
		d := int32(a) - int32(b)
		p[i] = uint16((d + Q) % Q)
	}
	return p
}

func popcount4(b byte) int {
	n := 0
	for i := 0; i < 4; i++ {
		n += int((b >> uint(i)) & 1)
	}
	return n
}
