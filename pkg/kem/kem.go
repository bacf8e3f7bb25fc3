package kem

import (
	"github.com/pzverkov/latticekem/internal/constants"
	"github.com/pzverkov/latticekem/internal/errors"
	"github.com/pzverkov/latticekem/pkg/csprng"
)

// state is the CCA-KEM instance's lifecycle position (spec §4.7).
type state int

const (
	configured state = iota
	initializedEncryptor
	initializedDecryptor
)

// KEM is a Fujisaki-Okamoto CCA-secure key encapsulation mechanism instance,
// configured for one ParamSet. An instance transitions
// Unconfigured->Configured at construction, then Configured->Initialized(role)
// on InitializeEncryptor/InitializeDecryptor; generate() is valid in
// Configured and does not change state (spec §4.7 state machine). It is not
// safe for concurrent state transitions.
type KEM struct {
	paramSet        ParamSet
	prng            csprng.CSPRNG
	domainKey       []byte
	sharedSecretLen int

	codec codec
	state state
	pk    *PublicKey
	sk    *PrivateKey
}

// Option configures a KEM instance at construction.
type Option func(*KEM)

// WithDomainKey sets the SHAKE customization string mixed into
// shared-secret derivation (spec §3, §4.7 step 5/6).
func WithDomainKey(key DomainKey) Option {
	return func(k *KEM) { k.domainKey = append([]byte{}, key...) }
}

// WithSharedSecretLen overrides the default 32-byte shared-secret output
// length.
func WithSharedSecretLen(n int) Option {
	return func(k *KEM) { k.sharedSecretLen = n }
}

// New constructs a KEM instance configured for paramSet, drawing entropy
// from prng. Returns InvalidParameter if paramSet is unrecognized or prng
// is nil.
func New(paramSet ParamSet, prng csprng.CSPRNG, opts ...Option) (*KEM, error) {
	if !paramSet.Valid() {
		return nil, errors.NewCryptoError("kem.New", errors.ErrInvalidParameter)
	}
	if prng == nil {
		return nil, errors.NewCryptoError("kem.New", errors.ErrInvalidParameter)
	}

	k := &KEM{
		paramSet:        paramSet,
		prng:            prng,
		sharedSecretLen: constants.SharedSecretDefaultLen,
		codec:           codecFor(paramSet),
		state:           configured,
	}
	for _, opt := range opts {
		opt(k)
	}
	if k.sharedSecretLen <= 0 {
		return nil, errors.NewCryptoError("kem.New", errors.ErrInvalidParameter)
	}
	return k, nil
}

// ParamSet returns the parameter set this instance is configured for.
func (k *KEM) ParamSet() ParamSet { return k.paramSet }

// InitializeEncryptor transitions the instance to Initialized(Encryptor),
// required before Encapsulate. Returns InvalidKey if pk's parameter set
// does not match this instance's.
func (k *KEM) InitializeEncryptor(pk *PublicKey) error {
	if pk == nil || pk.paramSet != k.paramSet {
		return errors.NewCryptoError("kem.InitializeEncryptor", errors.ErrInvalidKey)
	}
	if len(pk.bytes) != k.codec.cpaPublicKeySize() {
		return errors.NewCryptoError("kem.InitializeEncryptor", errors.ErrInvalidKey)
	}
	k.pk = pk
	k.state = initializedEncryptor
	return nil
}

// InitializeDecryptor transitions the instance to Initialized(Decryptor),
// required before Decapsulate. Returns InvalidKey if sk's parameter set
// does not match this instance's, or if sk's embedded public-key hash does
// not match its re-hashed embedded public key (spec §7 InvalidKey).
func (k *KEM) InitializeDecryptor(sk *PrivateKey) error {
	if sk == nil || sk.paramSet != k.paramSet {
		return errors.NewCryptoError("kem.InitializeDecryptor", errors.ErrInvalidKey)
	}
	want, err := sk.paramSet.privateKeySize()
	if err != nil || len(sk.bytes) != want {
		return errors.NewCryptoError("kem.InitializeDecryptor", errors.ErrInvalidKey)
	}
	if err := verifyPrivateKeyHash(k.codec, sk.bytes); err != nil {
		return err
	}
	k.sk = sk
	k.state = initializedDecryptor
	return nil
}

func (p ParamSet) privateKeySize() (int, error) {
	_, priv, _, err := p.Sizes()
	return priv, err
}
