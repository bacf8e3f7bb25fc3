// Package errors defines the error taxonomy shared across the lattice KEM
// core. Error kinds are semantic, not type names: every returned error wraps
// one of the sentinels below via CryptoError, so callers can use errors.Is
// without depending on the operation that produced it.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the CCA-KEM error taxonomy (spec §7).
var (
	// ErrInvalidParameter indicates an unknown parameter set or a zero-length
	// shared secret request.
	ErrInvalidParameter = errors.New("latticekem: invalid parameter")

	// ErrInvalidState indicates an operation called against the wrong state
	// machine state (e.g. encapsulate before initialize).
	ErrInvalidState = errors.New("latticekem: invalid state")

	// ErrInvalidKey indicates a key type mismatch, a byte-length mismatch
	// against the parameter set, or a stored public-key hash that does not
	// match the re-hashed embedded public key.
	ErrInvalidKey = errors.New("latticekem: invalid key")

	// ErrEntropyUnavailable indicates the CSPRNG failed to produce the
	// requested bytes.
	ErrEntropyUnavailable = errors.New("latticekem: entropy source unavailable")

	// ErrAuthenticationFailure indicates the re-encryption verify failed
	// during decapsulation. It is surfaced only after the implicit-rejection
	// shared secret has already been computed; the returned secret remains
	// safe to use.
	ErrAuthenticationFailure = errors.New("latticekem: authentication failure")
)

// CryptoError wraps a cryptographic error with the operation that produced it.
type CryptoError struct {
	Op  string // Operation that failed, e.g. "kem.Encapsulate"
	Err error  // Underlying sentinel error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}

// NewCryptoError creates a new CryptoError.
func NewCryptoError(op string, err error) *CryptoError {
	return &CryptoError{Op: op, Err: err}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
