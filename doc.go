// Package latticekem provides a post-quantum key encapsulation mechanism (KEM)
// built from lattice-based public-key cryptography: Ring-LWE (q=12289, n=1024)
// and Module-LWE (q=7681, n=256, k∈{2,3,4}), wrapped in an IND-CCA2
// Fujisaki–Okamoto transform with implicit rejection.
//
// # Quick Start
//
//	import (
//		"github.com/pzverkov/latticekem/pkg/csprng"
//		"github.com/pzverkov/latticekem/pkg/kem"
//	)
//
//	k, _ := kem.New(kem.MLWEQ7681N256K4, csprng.System())
//	pub, priv, _ := k.Generate()
//
//	enc, _ := kem.New(kem.MLWEQ7681N256K4, csprng.System())
//	enc.InitializeEncryptor(pub)
//	ct, secret, _ := enc.Encapsulate()
//
//	dec, _ := kem.New(kem.MLWEQ7681N256K4, csprng.System())
//	dec.InitializeDecryptor(priv)
//	recovered, _ := dec.Decapsulate(ct)
//
// # Package Structure
//
//   - pkg/kem: the public CCA-KEM API (Generate/Encapsulate/Decapsulate)
//   - pkg/csprng: pluggable entropy sources (system and deterministic)
//   - pkg/hybrid: supplemental X25519 + lattice-KEM composition
//   - pkg/metrics: optional OpenTelemetry-backed tracing of KEM operations
//   - internal/ring: Ring-LWE polynomial arithmetic and CPA-PKE
//   - internal/module: Module-LWE polynomial/vector arithmetic and CPA-PKE
//   - internal/shake: SHAKE128/256 and cSHAKE (SP 800-185) framing
//   - internal/keccak: Keccak-f[1600] permutation and sponge construction
//   - internal/util: constant-time primitives and endian packing
//   - internal/constants: parameter-set byte sizes and domain separators
//   - internal/errors: error taxonomy shared across the module
//
// # Security Properties
//
//   - Post-quantum security from lattice hardness (Ring-LWE / Module-LWE)
//   - IND-CCA2 via the Fujisaki–Okamoto transform with implicit rejection
//   - Constant-time re-encryption verification and secret substitution
//   - Domain-separated shared-secret derivation via an optional DomainKey
//
// # Testing
//
//	go test ./...                                # all tests
//	go test -run TestRoundTrip ./pkg/kem          # KEM round trip, every parameter set
//	go test -run TestImplicitRejection ./pkg/kem  # tampered-ciphertext handling
//
// # References
//
//   - NIST SP 800-185: SHA-3 Derived Functions (cSHAKE, KMAC, ...)
//   - NIST FIPS 202: SHA-3 Standard (SHAKE128/256)
//   - Fujisaki, Okamoto: Secure Integration of Asymmetric and Symmetric Encryption Schemes
//
// For more information, see: https://github.com/pzverkov/latticekem
package latticekem
