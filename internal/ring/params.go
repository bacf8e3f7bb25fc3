// Package ring implements PolyQ12289 arithmetic (Ring-LWE, q=12289, n=1024)
// and the CPA-secure PKE built on it (spec §4.4, §4.6). This is the single
// instance of the Ring-LWE parameter family; pkg/kem wraps it in the
// Fujisaki–Okamoto CCA transform.
package ring

import "github.com/pzverkov/latticekem/internal/constants"

const (
	// N is the ring dimension.
	N = constants.RLWEDegree
	// Q is the modulus.
	Q = constants.RLWEModulus

	// SeedSize is the size of the public seed ρ, the noise seed σ, and the
	// message/coin buffers.
	SeedSize = constants.RLWESeedSize

	// PolySize is the fully-packed (14 bits/coefficient) polynomial size.
	PolySize = constants.RLWEPolySize
	// PolyCompressedSize is the 3-bit compressed polynomial size.
	PolyCompressedSize = constants.RLWEPolyCompressedSize

	// CPAPublicKeySize, CPAPrivateKeySize, CPACiphertextSize are the CPA-PKE
	// byte sizes (spec §4.6).
	CPAPublicKeySize  = constants.RLWECPAPublicKeySize
	CPAPrivateKeySize = constants.RLWECPAPrivateKeySize
	CPACiphertextSize = constants.RLWECPACiphertextSize
)

// CBDEta is the centered-binomial noise parameter ψ_8 (spec §4.4).
const CBDEta = 8
