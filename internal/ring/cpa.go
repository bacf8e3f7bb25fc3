package ring

import "github.com/pzverkov/latticekem/internal/shake"

// RandomSource is the minimal entropy-source contract this package needs; it
// is structurally satisfied by pkg/csprng.CSPRNG without an import, keeping
// internal/ring below pkg/csprng in the dependency order (spec §2).
type RandomSource interface {
	Read(p []byte) error
}

// PublicKey is the CPA-PKE public key: b in NTT domain, packed, plus the
// 32-byte seed ρ used to re-derive the uniform polynomial a.
type PublicKey struct {
	B   Poly
	Rho []byte
}

// PrivateKey is the CPA-PKE private key: the secret polynomial s, in NTT
// domain.
type PrivateKey struct {
	S Poly
}

// Bytes packs pk as pack(b) || ρ (spec §3, §4.6).
func (pk *PublicKey) Bytes() []byte {
	out := make([]byte, 0, CPAPublicKeySize)
	out = append(out, pk.B.ToBytes()...)
	out = append(out, pk.Rho...)
	return out
}

// PublicKeyFromBytes unpacks a CPA public key.
func PublicKeyFromBytes(b []byte) PublicKey {
	return PublicKey{
		B:   FromBytes(b[:PolySize]),
		Rho: append([]byte{}, b[PolySize:PolySize+SeedSize]...),
	}
}

// Bytes packs sk as pack(s).
func (sk *PrivateKey) Bytes() []byte {
	return sk.S.ToBytes()
}

// PrivateKeyFromBytes unpacks a CPA private key.
func PrivateKeyFromBytes(b []byte) PrivateKey {
	return PrivateKey{S: FromBytes(b[:PolySize])}
}

// KeyGen runs CPA-PKE key generation (spec §4.6):
//  1. draw a uniform 32-byte seed d,
//  2. expand d into a public seed ρ and a noise seed σ,
//  3. sample s, e from σ with distinct nonces,
//  4. compute b = a*s + e in the NTT domain.
func KeyGen(prng RandomSource) (PublicKey, PrivateKey, error) {
	d := make([]byte, SeedSize)
	if err := prng.Read(d); err != nil {
		return PublicKey{}, PrivateKey{}, err
	}

	expanded := shake.Sum256(d, 2*SeedSize)
	rho := expanded[:SeedSize]
	sigma := expanded[SeedSize:]

	a := Uniform(rho)
	s := Sample(sigma, 0)
	e := Sample(sigma, 1)

	sNTT := s
	NTT(&sNTT)
	eNTT := e
	NTT(&eNTT)

	b := PointwiseMul(&a, &sNTT)
	b = Add(&b, &eNTT)

	return PublicKey{B: b, Rho: append([]byte{}, rho...)}, PrivateKey{S: sNTT}, nil
}

// Encrypt runs CPA-PKE encryption of a 32-byte message m under pk with
// 32-byte coin r (spec §4.6). Returns the CPA ciphertext bytes: pack(u) at
// full precision || pack(compress(v)).
func Encrypt(pk PublicKey, m [32]byte, r []byte) []byte {
	a := Uniform(pk.Rho)

	sPrime := Sample(r, 0)
	ePrime := Sample(r, 1)
	eDoublePrime := Sample(r, 2)

	sPrimeNTT := sPrime
	NTT(&sPrimeNTT)

	u := PointwiseMul(&a, &sPrimeNTT)
	InvNTT(&u)
	u = Add(&u, &ePrime)

	bt := PointwiseMul(&pk.B, &sPrimeNTT)
	InvNTT(&bt)
	v := Add(&bt, &eDoublePrime)
	encoded := FromMessage(m[:])
	v = Add(&v, &encoded)

	ct := make([]byte, 0, CPACiphertextSize)
	ct = append(ct, u.ToBytes()...)
	ct = append(ct, v.Compress()...)
	return ct
}

// Decrypt runs CPA-PKE decryption (spec §4.6): recovers u, v, computes
// v - s*u in the NTT domain, and decodes the result to a 32-byte message.
func Decrypt(sk PrivateKey, ct []byte) [32]byte {
	u := FromBytes(ct[:PolySize])
	v := Decompress(ct[PolySize : PolySize+PolyCompressedSize])

	uNTT := u
	NTT(&uNTT)
	su := PointwiseMul(&sk.S, &uNTT)
	InvNTT(&su)

	diff := Sub(&v, &su)
	var m [32]byte
	copy(m[:], ToMessage(&diff))
	return m
}
