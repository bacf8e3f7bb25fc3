package module

import "github.com/pzverkov/latticekem/internal/shake"

// RandomSource mirrors internal/ring.RandomSource; duck-typed against
// pkg/csprng.CSPRNG.
type RandomSource interface {
	Read(p []byte) error
}

// PublicKey is the Module-LWE CPA-PKE public key: b = A*s+e in the NTT
// domain, plus the 32-byte seed ρ used to re-derive the matrix A.
type PublicKey struct {
	B   Vector
	Rho []byte
	K   Rank
}

// PrivateKey is the CPA-PKE private key: the secret vector s, in the NTT
// domain.
type PrivateKey struct {
	S Vector
	K Rank
}

// Bytes packs pk as pack(b) || ρ.
func (pk *PublicKey) Bytes() []byte {
	out := make([]byte, 0, int(pk.K)*PolySize+SeedSize)
	out = append(out, pk.B.ToBytes()...)
	out = append(out, pk.Rho...)
	return out
}

// PublicKeyFromBytes unpacks a CPA public key of rank k.
func PublicKeyFromBytes(b []byte, k Rank) PublicKey {
	n := int(k) * PolySize
	return PublicKey{
		B:   VectorFromBytes(b[:n], k),
		Rho: append([]byte{}, b[n:n+SeedSize]...),
		K:   k,
	}
}

// Bytes packs sk as pack(s).
func (sk *PrivateKey) Bytes() []byte {
	return sk.S.ToBytes()
}

// PrivateKeyFromBytes unpacks a CPA private key of rank k.
func PrivateKeyFromBytes(b []byte, k Rank) PrivateKey {
	n := int(k) * PolySize
	return PrivateKey{S: VectorFromBytes(b[:n], k), K: k}
}

// KeyGen runs Module-LWE CPA-PKE key generation (spec §4.5, generalizing
// §4.4's single-polynomial construction to a k*k matrix and length-k
// vectors):
//  1. draw a uniform 32-byte seed d,
//  2. expand d into a public seed ρ and a noise seed σ,
//  3. expand ρ into the matrix A,
//  4. sample s, e from σ with distinct nonces,
//  5. compute b = A*s + e in the NTT domain.
func KeyGen(prng RandomSource, k Rank) (PublicKey, PrivateKey, error) {
	d := make([]byte, SeedSize)
	if err := prng.Read(d); err != nil {
		return PublicKey{}, PrivateKey{}, err
	}

	expanded := shake.Sum256(d, 2*SeedSize)
	rho := expanded[:SeedSize]
	sigma := expanded[SeedSize:]

	a := ExpandMatrix(rho, k)
	s := SampleVector(sigma, k, 0)
	e := SampleVector(sigma, k, byte(k))

	sNTT := make(Vector, len(s))
	copy(sNTT, s)
	NTTVector(sNTT)
	eNTT := make(Vector, len(e))
	copy(eNTT, e)
	NTTVector(eNTT)

	b := AddVec(MatrixVectorMul(a, sNTT), eNTT)

	return PublicKey{B: b, Rho: append([]byte{}, rho...), K: k},
		PrivateKey{S: sNTT, K: k}, nil
}

// Encrypt runs Module-LWE CPA-PKE encryption of a 32-byte message m under pk
// with 32-byte coin r.
func Encrypt(pk PublicKey, m [32]byte, r []byte) []byte {
	k := pk.K
	a := ExpandMatrix(pk.Rho, k)

	sPrime := SampleVector(r, k, 0)
	ePrime := SampleVector(r, k, byte(k))
	eDoublePrime := Sample(r, byte(2*int(k)))

	sPrimeNTT := make(Vector, len(sPrime))
	copy(sPrimeNTT, sPrime)
	NTTVector(sPrimeNTT)

	u := TransposeVectorMul(a, sPrimeNTT)
	InvNTTVector(u)
	u = AddVec(u, ePrime)

	vAcc := DotProduct(pk.B, sPrimeNTT)
	InvNTT(&vAcc)
	v := Add(&vAcc, &eDoublePrime)
	encoded := FromMessage(m[:])
	v = Add(&v, &encoded)

	ct := make([]byte, 0, int(k)*UCompressedPolySize+VCompressedPolySize)
	ct = append(ct, u.CompressU()...)
	ct = append(ct, v.CompressV()...)
	return ct
}

// Decrypt runs Module-LWE CPA-PKE decryption: recovers u, v, computes
// v - s^T*u in the NTT domain, and decodes the result to a 32-byte message.
func Decrypt(sk PrivateKey, ct []byte) [32]byte {
	k := sk.K
	uSize := int(k) * UCompressedPolySize
	u := DecompressUVector(ct[:uSize], k)
	v := DecompressV(ct[uSize : uSize+VCompressedPolySize])

	uNTT := make(Vector, len(u))
	copy(uNTT, u)
	NTTVector(uNTT)

	su := DotProduct(sk.S, uNTT)
	InvNTT(&su)

	diff := Sub(&v, &su)
	var m [32]byte
	copy(m[:], ToMessage(&diff))
	return m
}
