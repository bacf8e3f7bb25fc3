package ring

import "github.com/pzverkov/latticekem/internal/shake"

// Uniform expands a 32-byte seed via SHAKE128 and rejection-samples 16-bit
// candidates masked to 14 bits, accepting those < Q, producing a polynomial
// with uniform coefficients (spec §4.4). The stream is pulled in fixed-size
// blocks so the common (non-rejected) case has no data-dependent timing
// signature beyond the unavoidable rejection-rate itself.
func Uniform(seed []byte) Poly {
	x := shake.New128()
	x.Initialize(seed)

	var p Poly
	const blockSize = 168 // one SHAKE128 rate block
	buf := make([]byte, blockSize)
	i := 0
	for i < N {
		x.Generate(buf)
		for j := 0; j+2 <= len(buf) && i < N; j += 2 {
			val := uint16(buf[j]) | uint16(buf[j+1])<<8
			val &= 0x3fff // mask to 14 bits
			if val < Q {
				p[i] = val
				i++
			}
		}
	}
	return p
}

// Sample draws a centered-binomial-distribution (ψ_8) noise polynomial from
// a 32-byte seed and a domain nonce: for each coefficient, 16 random bits
// (two bytes) are drawn and split into two 8-bit halves, and the coefficient
// is the difference of their Hamming weights (range [-8, 8]), mapped into
// Z/qZ.
func Sample(seed []byte, nonce byte) Poly {
	x := shake.New256()
	x.Initialize(append(append([]byte{}, seed...), nonce))

	buf := make([]byte, 2*N)
	x.Generate(buf)

	var p Poly
	for i := 0; i < N; i++ {
		a := popcount8(buf[2*i])
		b := popcount8(buf[2*i+1])
		d := int32(a) - int32(b)
		p[i] = uint16((d + Q) % Q)
	}
	return p
}

func popcount8(b byte) int {
	n := 0
	for b != 0 {
		n += int(b & 1)
		b >>= 1
	}
	return n
}
