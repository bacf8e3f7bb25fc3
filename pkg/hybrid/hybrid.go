// Package hybrid composes a classical X25519 Diffie-Hellman exchange with
// one pkg/kem instance, so the combined secret remains safe if either
// primitive alone is broken (SPEC_FULL.md §4.12, generalizing the teacher's
// CH-KEM composition pattern from X25519+ML-KEM-1024 to X25519 plus the
// from-scratch lattice KEM built here). This is additive: it does not
// change pkg/kem's semantics and is not required for its core properties.
package hybrid

import (
	"crypto/rand"

	"golang.org/x/crypto/curve25519"

	"github.com/pzverkov/latticekem/internal/constants"
	"github.com/pzverkov/latticekem/internal/errors"
	"github.com/pzverkov/latticekem/internal/shake"
	"github.com/pzverkov/latticekem/internal/util"
	"github.com/pzverkov/latticekem/pkg/kem"
)

const x25519KeySize = 32

// HybridPublicKey is the combined public component: an X25519 public point
// plus a pkg/kem public key.
type HybridPublicKey struct {
	X25519 [x25519KeySize]byte
	KEM    *kem.PublicKey
}

// HybridPrivateKey is the combined private component.
type HybridPrivateKey struct {
	X25519 [x25519KeySize]byte
	KEM    *kem.PrivateKey
}

// Bytes serializes the public key as x25519 (32 bytes) ‖ kem public key.
func (pk *HybridPublicKey) Bytes() []byte {
	out := make([]byte, 0, x25519KeySize+len(pk.KEM.Bytes()))
	out = append(out, pk.X25519[:]...)
	out = append(out, pk.KEM.Bytes()...)
	return out
}

// Zeroize overwrites the X25519 private scalar with zeros.
func (sk *HybridPrivateKey) Zeroize() {
	util.Zeroize(sk.X25519[:])
}

// HybridCiphertext is the combined ciphertext: an ephemeral X25519 public
// point plus a pkg/kem ciphertext.
type HybridCiphertext struct {
	X25519Ephemeral [x25519KeySize]byte
	KEM             *kem.Ciphertext
}

// Bytes serializes the ciphertext as x25519_ephemeral (32 bytes) ‖
// kem ciphertext.
func (ct *HybridCiphertext) Bytes() []byte {
	out := make([]byte, 0, x25519KeySize+len(ct.KEM.Bytes()))
	out = append(out, ct.X25519Ephemeral[:]...)
	out = append(out, ct.KEM.Bytes()...)
	return out
}

// GenerateHybridKeyPair generates an X25519 scalar/point pair and, using k
// (already Configured for the desired ParamSet), a pkg/kem key pair.
func GenerateHybridKeyPair(k *kem.KEM) (*HybridPublicKey, *HybridPrivateKey, error) {
	var priv [x25519KeySize]byte
	if _, err := rand.Read(priv[:]); err != nil {
		return nil, nil, errors.NewCryptoError("hybrid.GenerateHybridKeyPair", errors.ErrEntropyUnavailable)
	}
	var pub [x25519KeySize]byte
	scalar, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return nil, nil, errors.NewCryptoError("hybrid.GenerateHybridKeyPair", errors.ErrInvalidKey)
	}
	copy(pub[:], scalar)

	kemPub, kemPriv, err := k.Generate()
	if err != nil {
		return nil, nil, errors.NewCryptoError("hybrid.GenerateHybridKeyPair", err)
	}

	return &HybridPublicKey{X25519: pub, KEM: kemPub},
		&HybridPrivateKey{X25519: priv, KEM: kemPriv}, nil
}

// HybridEncapsulate performs an ephemeral X25519 exchange against
// recipientPublic.X25519 and a pkg/kem encapsulation against
// recipientPublic.KEM (using enc, already InitializeEncryptor'd with
// recipientPublic.KEM), then combines both secrets via SHAKE256 under a
// fixed domain separator.
func HybridEncapsulate(enc *kem.KEM, recipientPublic *HybridPublicKey) (*HybridCiphertext, []byte, error) {
	var ephPriv [x25519KeySize]byte
	if _, err := rand.Read(ephPriv[:]); err != nil {
		return nil, nil, errors.NewCryptoError("hybrid.HybridEncapsulate", errors.ErrEntropyUnavailable)
	}
	ephPubBytes, err := curve25519.X25519(ephPriv[:], curve25519.Basepoint)
	if err != nil {
		return nil, nil, errors.NewCryptoError("hybrid.HybridEncapsulate", errors.ErrInvalidKey)
	}
	var ephPub [x25519KeySize]byte
	copy(ephPub[:], ephPubBytes)

	classicalSecret, err := curve25519.X25519(ephPriv[:], recipientPublic.X25519[:])
	if err != nil {
		return nil, nil, errors.NewCryptoError("hybrid.HybridEncapsulate", errors.ErrInvalidKey)
	}

	kemCT, kemSecret, err := enc.Encapsulate()
	if err != nil {
		return nil, nil, errors.NewCryptoError("hybrid.HybridEncapsulate", err)
	}

	combined := deriveHybridSecret(classicalSecret, kemSecret.Bytes())
	util.Zeroize(classicalSecret)

	return &HybridCiphertext{X25519Ephemeral: ephPub, KEM: kemCT}, combined, nil
}

// HybridDecapsulate recovers the combined secret using sk and dec (already
// InitializeDecryptor'd with sk.KEM).
func HybridDecapsulate(dec *kem.KEM, sk *HybridPrivateKey, ct *HybridCiphertext) ([]byte, error) {
	classicalSecret, err := curve25519.X25519(sk.X25519[:], ct.X25519Ephemeral[:])
	if err != nil {
		return nil, errors.NewCryptoError("hybrid.HybridDecapsulate", errors.ErrInvalidKey)
	}

	kemSecret, err := dec.Decapsulate(ct.KEM)
	if err != nil && !errors.Is(err, errors.ErrAuthenticationFailure) {
		return nil, errors.NewCryptoError("hybrid.HybridDecapsulate", err)
	}
	kemFailed := errors.Is(err, errors.ErrAuthenticationFailure)

	combined := deriveHybridSecret(classicalSecret, kemSecret.Bytes())
	util.Zeroize(classicalSecret)

	if kemFailed {
		return combined, errors.NewCryptoError("hybrid.HybridDecapsulate", errors.ErrAuthenticationFailure)
	}
	return combined, nil
}

// deriveHybridSecret computes SHAKE256(classical || kem, customization=
// DomainSeparatorHybrid, 32), generalizing the teacher's CH-KEM transcript
// derivation.
func deriveHybridSecret(classical, kemSecret []byte) []byte {
	x := shake.New256()
	x.InitializeCustom(append(append([]byte{}, classical...), kemSecret...), []byte(constants.DomainSeparatorHybrid))
	out := make([]byte, 32)
	x.Generate(out)
	return out
}
