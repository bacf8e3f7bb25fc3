package module

import "github.com/pzverkov/latticekem/internal/util"

// ToBytes packs p at full 13-bit precision.
func (p *Poly) ToBytes() []byte {
	return util.PackBits(p[:], 13)
}

// FromBytes unpacks a full-precision 13-bit-packed polynomial.
func FromBytes(b []byte) Poly {
	var p Poly
	copy(p[:], util.UnpackBits(b, 13, N))
	return p
}

// CompressU applies the 11-bit lossy compression round(2^11*c/q) mod 2^11 to
// each coefficient of p (spec §6, reverse-solved compression width for u).
func (p *Poly) CompressU() []byte {
	c := make([]uint16, N)
	for i, v := range p {
		c[i] = compressCoeff(v, 11)
	}
	return util.PackBits(c, 11)
}

// DecompressU is the inverse of CompressU.
func DecompressU(b []byte) Poly {
	vals := util.UnpackBits(b, 11, N)
	var p Poly
	for i, v := range vals {
		p[i] = decompressCoeff(v, 11)
	}
	return p
}

// CompressV applies the 3-bit lossy compression to each coefficient of p.
func (p *Poly) CompressV() []byte {
	c := make([]uint16, N)
	for i, v := range p {
		c[i] = compressCoeff(v, 3)
	}
	return util.PackBits(c, 3)
}

// DecompressV is the inverse of CompressV.
func DecompressV(b []byte) Poly {
	vals := util.UnpackBits(b, 3, N)
	var p Poly
	for i, v := range vals {
		p[i] = decompressCoeff(v, 3)
	}
	return p
}

func compressCoeff(c uint16, bits int) uint16 {
	d := uint32(1) << uint(bits)
	return uint16((uint32(c)*d+Q/2)/Q) & uint16(d-1)
}

func decompressCoeff(b uint16, bits int) uint16 {
	d := uint32(1) << uint(bits)
	return uint16((uint32(b)*Q + d/2) / d)
}

// FromMessage encodes a 32-byte message into a polynomial: each bit becomes
// one coefficient, set to round(q/2) for a 1 bit and 0 for a 0 bit (no
// redundancy needed at n=256, one coefficient per bit).
func FromMessage(m []byte) Poly {
	var p Poly
	for i := 0; i < N; i++ {
		bit := (m[i/8] >> uint(i%8)) & 1
		if bit == 1 {
			p[i] = (Q + 1) / 2
		}
	}
	return p
}

// ToMessage decodes a polynomial back to a 32-byte message: bit i is 1 iff
// coefficient i is closer to q/2 than to 0.
func ToMessage(p *Poly) []byte {
	m := make([]byte, 32)
	for i := 0; i < N; i++ {
		if closerToHalf(p[i]) {
			m[i/8] |= 1 << uint(i%8)
		}
	}
	return m
}

func closerToHalf(c uint16) bool {
	d := int32(c) - Q/2
	if d < 0 {
		d = -d
	}
	return d < Q/4
}
