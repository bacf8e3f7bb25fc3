package module

// ExpandMatrix deterministically expands a 32-byte seed into a k*k matrix of
// uniform polynomials, each entry seeded by seed||i||j (spec §4.5's
// generalization of §4.4's single-polynomial a to a module rank). Matrix[i]
// is row i, a length-k Vector.
func ExpandMatrix(seed []byte, k Rank) []Vector {
	m := make([]Vector, int(k))
	for i := 0; i < int(k); i++ {
		m[i] = make(Vector, int(k))
		for j := 0; j < int(k); j++ {
			m[i][j] = Uniform(seed, byte(i), byte(j))
		}
	}
	return m
}

// MatrixVectorMul computes A*s for an expanded matrix A and an NTT-domain
// vector s, returning an NTT-domain vector.
func MatrixVectorMul(a []Vector, s Vector) Vector {
	r := make(Vector, len(a))
	for i := range a {
		r[i] = DotProduct(a[i], s)
	}
	return r
}

// TransposeVectorMul computes A^T*s: row i of the result is
// sum_j A[j][i]*s[j], used by encryption (spec §4.5's a^T*s' term).
func TransposeVectorMul(a []Vector, s Vector) Vector {
	k := len(a)
	r := make(Vector, k)
	for i := 0; i < k; i++ {
		var acc Poly
		for j := 0; j < k; j++ {
			term := PointwiseMul(&a[j][i], &s[j])
			acc = Add(&acc, &term)
		}
		r[i] = acc
	}
	return r
}

// ToBytes packs every polynomial in v at full 13-bit precision, concatenated
// in index order.
func (v Vector) ToBytes() []byte {
	out := make([]byte, 0, len(v)*PolySize)
	for i := range v {
		out = append(out, v[i].ToBytes()...)
	}
	return out
}

// VectorFromBytes unpacks a length-k vector packed by Vector.ToBytes.
func VectorFromBytes(b []byte, k Rank) Vector {
	v := make(Vector, int(k))
	for i := range v {
		v[i] = FromBytes(b[i*PolySize : (i+1)*PolySize])
	}
	return v
}

// CompressU packs every polynomial in v via CompressU, concatenated in
// index order.
func (v Vector) CompressU() []byte {
	out := make([]byte, 0, len(v)*UCompressedPolySize)
	for i := range v {
		out = append(out, v[i].CompressU()...)
	}
	return out
}

// DecompressUVector is the inverse of Vector.CompressU.
func DecompressUVector(b []byte, k Rank) Vector {
	v := make(Vector, int(k))
	for i := range v {
		v[i] = DecompressU(b[i*UCompressedPolySize : (i+1)*UCompressedPolySize])
	}
	return v
}

// NTTVector applies NTT to every polynomial in v in place.
func NTTVector(v Vector) {
	for i := range v {
		NTT(&v[i])
	}
}

// InvNTTVector applies InvNTT to every polynomial in v in place.
func InvNTTVector(v Vector) {
	for i := range v {
		InvNTT(&v[i])
	}
}

// SampleVector draws a length-k CBD noise vector from seed, one nonce per
// entry starting at startNonce.
func SampleVector(seed []byte, k Rank, startNonce byte) Vector {
	v := make(Vector, int(k))
	for i := range v {
		v[i] = Sample(seed, startNonce+byte(i))
	}
	return v
}
