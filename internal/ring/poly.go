package ring

// Poly is an in-memory polynomial: n coefficients in Z/qZ. At every API
// boundary between functions, coefficients satisfy 0 <= c < q (spec data
// model, Polynomial invariant); intermediate NTT-domain values may
// temporarily exceed that bound and must be frozen before crossing a
// boundary.
type Poly [N]uint16

// Freeze maps every coefficient to its canonical representative in [0, q),
// in constant time (no data-dependent branch): since coefficients produced
// by this package's arithmetic never exceed 2q, a single conditional
// subtraction computed via a branch-free mask suffices.
func (p *Poly) Freeze() {
	for i := range p {
		c := p[i]
		// subtract q if c >= q, without branching on the comparison result
		d := c - Q
		// d wraps to a large uint16 when c < q; its top bit then selects c.
		mask := uint16(int16(d) >> 15) // 0xFFFF if d is "negative" (c<q), else 0
		p[i] = (c & mask) | (d &^ mask)
	}
}

// Add computes (a+b) mod q coefficient-wise, result frozen to [0, q).
func Add(a, b *Poly) Poly {
	var r Poly
	for i := range r {
		r[i] = uint16((uint32(a[i]) + uint32(b[i])) % Q)
	}
	return r
}

// Sub computes (a-b) mod q coefficient-wise, result frozen to [0, q).
func Sub(a, b *Poly) Poly {
	var r Poly
	for i := range r {
		r[i] = uint16((int32(a[i]) - int32(b[i]) + 2*Q) % Q)
	}
	return r
}

// PointwiseMul multiplies two polynomials already in the NTT domain,
// coefficient-wise mod q.
func PointwiseMul(a, b *Poly) Poly {
	var r Poly
	for i := range r {
		r[i] = uint16((uint32(a[i]) * uint32(b[i])) % Q)
	}
	return r
}
