package csprng

import "crypto/rand"

// SystemCSPRNG reads from the operating system's cryptographically secure
// random source (crypto/rand). It is stateless and safe for concurrent use.
type SystemCSPRNG struct{}

// System returns a CSPRNG backed by crypto/rand.
func System() CSPRNG {
	return SystemCSPRNG{}
}

// Read fills p with bytes read from crypto/rand.Reader.
func (SystemCSPRNG) Read(p []byte) error {
	_, err := rand.Read(p)
	return err
}
