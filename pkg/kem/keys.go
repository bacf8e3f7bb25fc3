package kem

import "github.com/pzverkov/latticekem/internal/util"

// PublicKey is an opaque, immutable public-key byte blob tagged with its
// parameter set (spec §3).
type PublicKey struct {
	paramSet ParamSet
	bytes    []byte
}

// ParamSet returns the parameter set this key was created under.
func (pk *PublicKey) ParamSet() ParamSet { return pk.paramSet }

// Bytes returns the packed public-key byte blob. The caller MUST NOT modify
// the returned slice.
func (pk *PublicKey) Bytes() []byte { return pk.bytes }

// PrivateKey is an opaque private-key byte blob tagged with its parameter
// set. Bytes = packed secret ‖ embedded public key ‖ hash(public key) ‖ z
// (spec §3, §4.7). MUST be zeroized when no longer needed.
type PrivateKey struct {
	paramSet ParamSet
	bytes    []byte
}

// ParamSet returns the parameter set this key was created under.
func (sk *PrivateKey) ParamSet() ParamSet { return sk.paramSet }

// Bytes returns the packed private-key byte blob. The caller MUST NOT
// modify the returned slice, and MUST call Zeroize before discarding it.
func (sk *PrivateKey) Bytes() []byte { return sk.bytes }

// Zeroize overwrites the private-key bytes with zeros.
func (sk *PrivateKey) Zeroize() {
	util.Zeroize(sk.bytes)
}

// Ciphertext is an opaque ciphertext byte blob; its size is fixed by the
// parameter set and never varies with content (spec §6).
type Ciphertext struct {
	paramSet ParamSet
	bytes    []byte
}

// ParamSet returns the parameter set this ciphertext was produced under.
func (c *Ciphertext) ParamSet() ParamSet { return c.paramSet }

// Bytes returns the ciphertext byte blob.
func (c *Ciphertext) Bytes() []byte { return c.bytes }

// SharedSecret is the symmetric key output of encapsulate/decapsulate.
type SharedSecret struct {
	bytes []byte
}

// Bytes returns the shared-secret bytes.
func (s *SharedSecret) Bytes() []byte { return s.bytes }

// Zeroize overwrites the shared-secret bytes with zeros.
func (s *SharedSecret) Zeroize() {
	util.Zeroize(s.bytes)
}

// DomainKey is an optional caller-supplied byte string fed as SHAKE
// customization to shared-secret derivation (spec §3).
type DomainKey []byte
