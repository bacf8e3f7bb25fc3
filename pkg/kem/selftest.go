package kem

import (
	"sync"

	"github.com/pzverkov/latticekem/internal/errors"
	"github.com/pzverkov/latticekem/internal/util"
	"github.com/pzverkov/latticekem/pkg/csprng"
)

// Pairwise-consistency self-test state, grounded on the teacher's
// Conditional-Self-Test pattern (pkg/crypto/cst.go): generate a key pair,
// encapsulate, decapsulate, and compare shared secrets, but run once per
// process via sync.Once rather than per-operation.
var (
	selfTestOnce   sync.Once
	selfTestErr    error
	selfTestParams = []ParamSet{RLWEQ12289N1024, MLWEQ7681N256K2, MLWEQ7681N256K3, MLWEQ7681N256K4}
)

// RunSelfTest executes the pairwise-consistency self-test for every
// ParamSet exactly once per process and returns its result on every call.
// It is not part of the cryptographic construction itself (spec §4.7); it
// is an ambient health-check surface (SPEC_FULL.md §4.10).
func RunSelfTest() error {
	selfTestOnce.Do(func() {
		for _, ps := range selfTestParams {
			if err := pairwiseConsistencyCheck(ps); err != nil {
				selfTestErr = err
				return
			}
		}
	})
	return selfTestErr
}

// SelfTestPassed reports whether RunSelfTest has been run and succeeded. It
// triggers the self-test if it has not yet run.
func SelfTestPassed() bool {
	return RunSelfTest() == nil
}

func pairwiseConsistencyCheck(ps ParamSet) error {
	prng := csprng.System()

	k, err := New(ps, prng)
	if err != nil {
		return errors.NewCryptoError("kem.selfTest", err)
	}
	pk, sk, err := k.Generate()
	if err != nil {
		return errors.NewCryptoError("kem.selfTest", err)
	}

	enc, err := New(ps, prng)
	if err != nil {
		return errors.NewCryptoError("kem.selfTest", err)
	}
	if err := enc.InitializeEncryptor(pk); err != nil {
		return errors.NewCryptoError("kem.selfTest", err)
	}
	ct, secret1, err := enc.Encapsulate()
	if err != nil {
		return errors.NewCryptoError("kem.selfTest", err)
	}

	dec, err := New(ps, prng)
	if err != nil {
		return errors.NewCryptoError("kem.selfTest", err)
	}
	if err := dec.InitializeDecryptor(sk); err != nil {
		return errors.NewCryptoError("kem.selfTest", err)
	}
	secret2, err := dec.Decapsulate(ct)
	if err != nil {
		return errors.NewCryptoError("kem.selfTest", err)
	}

	if util.CTCompare(secret1.Bytes(), secret2.Bytes()) != 0 {
		return errors.NewCryptoError("kem.selfTest", errors.ErrAuthenticationFailure)
	}
	return nil
}
