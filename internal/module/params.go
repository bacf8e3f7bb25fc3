// Package module implements Poly7681 arithmetic (Module-LWE, q=7681,
// n=256) with module rank k in {2,3,4}, and the CPA-secure PKE built on it
// (spec §4.5), grounded on ModuleLWE.cpp/MLWEQ7681N256.h. pkg/kem wraps it in
// the Fujisaki-Okamoto CCA transform, same as internal/ring.
package module

import "github.com/pzverkov/latticekem/internal/constants"

const (
	// N is the ring dimension shared by every rank.
	N = constants.MLWEDegree
	// Q is the modulus shared by every rank.
	Q = constants.MLWEModulus

	// SeedSize is the size of the public seed ρ, the noise seed σ, and the
	// message/coin buffers.
	SeedSize = constants.MLWESeedSize

	// PolySize is the fully-packed (13 bits/coefficient) polynomial size.
	PolySize = constants.MLWEPolySize

	// UCompressedPolySize / VCompressedPolySize are the per-polynomial
	// compressed sizes (11 bits/coefficient for u, 3 bits/coefficient for v).
	UCompressedPolySize = constants.MLWEUCompressedPolySize
	VCompressedPolySize = constants.MLWEVCompressedPolySize
)

// CBDEta is the centered-binomial noise parameter (spec open question,
// resolved to 4; see DESIGN.md).
const CBDEta = constants.MLWECBDEta

// Rank is the module rank k. Only 2, 3 and 4 are valid (spec §4.2).
type Rank int

const (
	Rank2 Rank = 2
	Rank3 Rank = 3
	Rank4 Rank = 4
)

// Valid reports whether k is one of the supported ranks.
func (k Rank) Valid() bool {
	return k == Rank2 || k == Rank3 || k == Rank4
}

// Sizes returns the (PublicKey, PrivateKey, Ciphertext) byte sizes for this
// rank as defined by constants.MLWESizes. PublicKey and Ciphertext equal the
// CPA-PKE sizes; PrivateKey is the CCA-KEM private key size (s || pk ||
// h(pk) || z), not the CPA private key alone (k*PolySize).
func (k Rank) Sizes() (pub, priv, ct int) {
	return constants.MLWESizes(int(k))
}
