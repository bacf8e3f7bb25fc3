package kem

import (
	"context"

	"github.com/pzverkov/latticekem/internal/errors"
	"github.com/pzverkov/latticekem/internal/shake"
	"github.com/pzverkov/latticekem/internal/util"
	"github.com/pzverkov/latticekem/pkg/metrics"
)

// hashLen is the length in bytes of the embedded public-key hash h, the
// implicit-rejection secret z, and the Targhi-Unruh hash appended to RLWE
// ciphertexts (spec §4.7 uses 32 bytes throughout).
const hashLen = 32

// privateKeyLayout slices a packed CCA private key into its four
// components: sk_cpa || pk_cpa || h || z (spec §4.7 step 4).
func privateKeyLayout(c codec, skBytes []byte) (skCPA, pkCPA, h, z []byte) {
	skSize := c.cpaPrivateKeySize()
	pkSize := c.cpaPublicKeySize()
	skCPA = skBytes[:skSize]
	pkCPA = skBytes[skSize : skSize+pkSize]
	h = skBytes[skSize+pkSize : skSize+pkSize+hashLen]
	z = skBytes[skSize+pkSize+hashLen : skSize+pkSize+2*hashLen]
	return
}

func verifyPrivateKeyHash(c codec, skBytes []byte) error {
	_, pkCPA, h, _ := privateKeyLayout(c, skBytes)
	recomputed := shake.Sum256(pkCPA, hashLen)
	if util.CTCompare(h, recomputed) != 0 {
		return errors.NewCryptoError("kem.InitializeDecryptor", errors.ErrInvalidKey)
	}
	return nil
}

// ciphertextBody splits the Targhi-Unruh hash (RLWE family only, spec §4.7
// step 4) off the end of a full ciphertext, returning the CPA-PKE ciphertext
// portion that CPA.Decrypt/Encrypt operate on and the trailing hash (empty
// for Module-LWE).
func (k *KEM) ciphertextBody(ctBytes []byte) (cpaPart []byte, tu []byte) {
	cpaSize := k.codec.cpaCiphertextSize()
	if !k.paramSet.isRLWE() {
		return ctBytes, nil
	}
	return ctBytes[:cpaSize], ctBytes[cpaSize:]
}

// targhiUnruhHash computes the RLWE-only auxiliary ciphertext component
// binding the derived coin pair to the ciphertext (spec §4.7 step 4, GLOSSARY
// "Targhi-Unruh hash"). The byte-for-byte layout is this module's own
// resolution of the spec's "as specified by the original scheme" deferral:
// a 32-byte SHAKE256 hash of K̄‖r, recorded in DESIGN.md.
func targhiUnruhHash(kbar, r []byte) []byte {
	return shake.Sum256(append(append([]byte{}, kbar...), r...), hashLen)
}

// Generate runs CCA-KEM key generation (spec §4.7): CPA key-gen, the
// embedded public-key hash h, and a fresh implicit-rejection secret z. Valid
// in the Configured state; does not change the instance's state.
func (k *KEM) Generate() (*PublicKey, *PrivateKey, error) {
	_, end := metrics.StartSpan(context.Background(), metrics.SpanGenerate,
		metrics.WithAttributes(metrics.SpanAttributes{ParamSet: k.paramSet.String()}.ToMap()))
	var err error
	defer func() { end(err) }()

	var pkCPA, skCPA []byte
	pkCPA, skCPA, err = k.codec.cpaKeyGen(k.prng)
	if err != nil {
		err = errors.NewCryptoError("kem.Generate", errors.ErrEntropyUnavailable)
		return nil, nil, err
	}

	h := shake.Sum256(pkCPA, hashLen)

	z := make([]byte, hashLen)
	if err = k.prng.Read(z); err != nil {
		err = errors.NewCryptoError("kem.Generate", errors.ErrEntropyUnavailable)
		return nil, nil, err
	}

	skBytes := make([]byte, 0, len(skCPA)+len(pkCPA)+2*hashLen)
	skBytes = append(skBytes, skCPA...)
	skBytes = append(skBytes, pkCPA...)
	skBytes = append(skBytes, h...)
	skBytes = append(skBytes, z...)

	return &PublicKey{paramSet: k.paramSet, bytes: pkCPA},
		&PrivateKey{paramSet: k.paramSet, bytes: skBytes}, nil
}

// Encapsulate runs CCA-KEM encapsulation (spec §4.7). Requires the instance
// to be Initialized(Encryptor).
func (k *KEM) Encapsulate() (*Ciphertext, *SharedSecret, error) {
	_, end := metrics.StartSpan(context.Background(), metrics.SpanEncapsulate,
		metrics.WithAttributes(metrics.SpanAttributes{ParamSet: k.paramSet.String(), Role: "encryptor"}.ToMap()))
	var err error
	defer func() { end(err) }()

	if k.state != initializedEncryptor {
		err = errors.NewCryptoError("kem.Encapsulate", errors.ErrInvalidState)
		return nil, nil, err
	}

	mPrime := make([]byte, hashLen)
	if err = k.prng.Read(mPrime); err != nil {
		err = errors.NewCryptoError("kem.Encapsulate", errors.ErrEntropyUnavailable)
		return nil, nil, err
	}
	m := shake.Sum256(mPrime, hashLen)

	pkHash := shake.Sum256(k.pk.bytes, hashLen)
	kr := shake.Sum256(append(append([]byte{}, m...), pkHash...), 2*hashLen)
	kbar, r := kr[:hashLen], kr[hashLen:]

	var mArr [32]byte
	copy(mArr[:], m)
	c := k.codec.cpaEncrypt(k.pk.bytes, mArr, r)
	if k.paramSet.isRLWE() {
		c = append(c, targhiUnruhHash(kbar, r)...)
	}

	secret := k.deriveSharedSecret(kbar, c)

	return &Ciphertext{paramSet: k.paramSet, bytes: c},
		&SharedSecret{bytes: secret}, nil
}

// Decapsulate runs CCA-KEM decapsulation with implicit rejection (spec
// §4.7). Requires the instance to be Initialized(Decryptor). The returned
// SharedSecret is always the correct output of the constant-time branch
// taken — real on success, z-derived and indistinguishable from real on
// failure — regardless of whether the accompanying error is nil; this
// resolves the spec's own internal tension between §4.7's "never returns an
// error" framing and §6/§8's requirement that a distinguishable
// AuthenticationFailure signal reach the caller (see DESIGN.md).
func (k *KEM) Decapsulate(ct *Ciphertext) (*SharedSecret, error) {
	_, end := metrics.StartSpan(context.Background(), metrics.SpanDecapsulate,
		metrics.WithAttributes(metrics.SpanAttributes{ParamSet: k.paramSet.String(), Role: "decryptor"}.ToMap()))
	var err error
	defer func() { end(err) }()

	if k.state != initializedDecryptor {
		err = errors.NewCryptoError("kem.Decapsulate", errors.ErrInvalidState)
		return nil, err
	}
	_, _, ctSize, _ := k.paramSet.Sizes()
	if ct == nil || ct.paramSet != k.paramSet || len(ct.bytes) != ctSize {
		err = errors.NewCryptoError("kem.Decapsulate", errors.ErrInvalidKey)
		return nil, err
	}

	skCPA, pkCPA, h, z := privateKeyLayout(k.codec, k.sk.bytes)
	cpaPart, _ := k.ciphertextBody(ct.bytes)

	mArr := k.codec.cpaDecrypt(skCPA, cpaPart)

	kr := shake.Sum256(append(append([]byte{}, mArr[:]...), h...), 2*hashLen)
	kbar, r := kr[:hashLen], kr[hashLen:]

	cPrime := k.codec.cpaEncrypt(pkCPA, mArr, r)
	if k.paramSet.isRLWE() {
		cPrime = append(cPrime, targhiUnruhHash(kbar, r)...)
	}

	fail := util.CTCompare(ct.bytes, cPrime)

	kbarSelected := make([]byte, hashLen)
	copy(kbarSelected, kbar)
	util.CTSelect(kbarSelected, z, fail)

	secret := k.deriveSharedSecret(kbarSelected, ct.bytes)

	if fail != 0 {
		err = errors.NewCryptoError("kem.Decapsulate", errors.ErrAuthenticationFailure)
		return &SharedSecret{bytes: secret}, err
	}
	return &SharedSecret{bytes: secret}, nil
}

// deriveSharedSecret computes SHAKE256(kbar‖SHAKE256(c,32), customization=
// DomainKey, sharedSecretLen) (spec §4.7 steps 5/6).
func (k *KEM) deriveSharedSecret(kbar, c []byte) []byte {
	cHash := shake.Sum256(c, hashLen)
	x := shake.New256()
	x.InitializeCustom(append(append([]byte{}, kbar...), cHash...), k.domainKey)
	out := make([]byte, k.sharedSecretLen)
	x.Generate(out)
	return out
}
