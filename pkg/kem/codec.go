package kem

import (
	"github.com/pzverkov/latticekem/internal/module"
	"github.com/pzverkov/latticekem/internal/ring"
)

// codec dispatches CPA-PKE operations (spec §4.6) to the relevant lattice
// family, so the FO transform in transform.go is written once and shared by
// both (spec §2: "CCA-KEM ... delegates polynomial arithmetic to the
// relevant CPA-PKE").
type codec interface {
	cpaPublicKeySize() int
	cpaPrivateKeySize() int
	cpaCiphertextSize() int

	cpaKeyGen(prng ring.RandomSource) (pk, sk []byte, err error)
	cpaEncrypt(pk []byte, m [32]byte, coin []byte) []byte
	cpaDecrypt(sk []byte, ct []byte) [32]byte
}

func codecFor(p ParamSet) codec {
	if p.isRLWE() {
		return ringCodec{}
	}
	return moduleCodec{k: p.moduleRank()}
}

type ringCodec struct{}

func (ringCodec) cpaPublicKeySize() int  { return ring.CPAPublicKeySize }
func (ringCodec) cpaPrivateKeySize() int { return ring.CPAPrivateKeySize }
func (ringCodec) cpaCiphertextSize() int { return ring.CPACiphertextSize }

func (ringCodec) cpaKeyGen(prng ring.RandomSource) ([]byte, []byte, error) {
	pk, sk, err := ring.KeyGen(prng)
	if err != nil {
		return nil, nil, err
	}
	return pk.Bytes(), sk.Bytes(), nil
}

func (ringCodec) cpaEncrypt(pk []byte, m [32]byte, coin []byte) []byte {
	return ring.Encrypt(ring.PublicKeyFromBytes(pk), m, coin)
}

func (ringCodec) cpaDecrypt(sk []byte, ct []byte) [32]byte {
	return ring.Decrypt(ring.PrivateKeyFromBytes(sk), ct)
}

type moduleCodec struct{ k module.Rank }

func (c moduleCodec) cpaPublicKeySize() int  { return int(c.k)*module.PolySize + module.SeedSize }
func (c moduleCodec) cpaPrivateKeySize() int { return int(c.k) * module.PolySize }
func (c moduleCodec) cpaCiphertextSize() int {
	return int(c.k)*module.UCompressedPolySize + module.VCompressedPolySize
}

func (c moduleCodec) cpaKeyGen(prng ring.RandomSource) ([]byte, []byte, error) {
	pk, sk, err := module.KeyGen(prng, c.k)
	if err != nil {
		return nil, nil, err
	}
	return pk.Bytes(), sk.Bytes(), nil
}

func (c moduleCodec) cpaEncrypt(pk []byte, m [32]byte, coin []byte) []byte {
	return module.Encrypt(module.PublicKeyFromBytes(pk, c.k), m, coin)
}

func (c moduleCodec) cpaDecrypt(sk []byte, ct []byte) [32]byte {
	return module.Decrypt(module.PrivateKeyFromBytes(sk, c.k), ct)
}
