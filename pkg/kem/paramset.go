// Package kem implements the IND-CCA2 Fujisaki-Okamoto key encapsulation
// mechanism (spec §4.7) over the Ring-LWE and Module-LWE families
// implemented in internal/ring and internal/module.
package kem

import (
	"github.com/pzverkov/latticekem/internal/constants"
	"github.com/pzverkov/latticekem/internal/errors"
	"github.com/pzverkov/latticekem/internal/module"
)

// ParamSet selects the lattice family and, for Module-LWE, its rank.
type ParamSet int

const (
	// RLWEQ12289N1024 is the single Ring-LWE instance (q=12289, n=1024).
	RLWEQ12289N1024 ParamSet = iota
	// MLWEQ7681N256K2 is Module-LWE at rank 2.
	MLWEQ7681N256K2
	// MLWEQ7681N256K3 is Module-LWE at rank 3.
	MLWEQ7681N256K3
	// MLWEQ7681N256K4 is Module-LWE at rank 4.
	MLWEQ7681N256K4
)

func (p ParamSet) String() string {
	switch p {
	case RLWEQ12289N1024:
		return "RLWE_Q12289_N1024"
	case MLWEQ7681N256K2:
		return "MLWE_Q7681_N256_K2"
	case MLWEQ7681N256K3:
		return "MLWE_Q7681_N256_K3"
	case MLWEQ7681N256K4:
		return "MLWE_Q7681_N256_K4"
	default:
		return "unknown"
	}
}

// Valid reports whether p names one of the four supported parameter sets.
func (p ParamSet) Valid() bool {
	return p >= RLWEQ12289N1024 && p <= MLWEQ7681N256K4
}

// isRLWE reports whether p selects the Ring-LWE family.
func (p ParamSet) isRLWE() bool {
	return p == RLWEQ12289N1024
}

// moduleRank returns the Module-LWE rank for p; only valid when !isRLWE().
func (p ParamSet) moduleRank() module.Rank {
	switch p {
	case MLWEQ7681N256K2:
		return module.Rank2
	case MLWEQ7681N256K3:
		return module.Rank3
	case MLWEQ7681N256K4:
		return module.Rank4
	default:
		return 0
	}
}

// Sizes returns the (PublicKey, PrivateKey, Ciphertext) CCA-KEM byte sizes
// for this parameter set (spec §6).
func (p ParamSet) Sizes() (pub, priv, ct int, err error) {
	switch p {
	case RLWEQ12289N1024:
		return constants.RLWECCAPublicKeySize, constants.RLWECCAPrivateKeySize, constants.RLWECCACiphertextSize, nil
	case MLWEQ7681N256K2, MLWEQ7681N256K3, MLWEQ7681N256K4:
		pub, priv, ct = constants.MLWESizes(int(p.moduleRank()))
		return pub, priv, ct, nil
	default:
		return 0, 0, 0, errors.NewCryptoError("ParamSet.Sizes", errors.ErrInvalidParameter)
	}
}
