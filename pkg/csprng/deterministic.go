package csprng

import "github.com/pzverkov/latticekem/internal/shake"

// DeterministicCSPRNG expands a fixed seed via SHAKE256 into an arbitrarily
// long sequential byte stream. It exists to reproduce the literal
// known-answer-test scenarios of spec §8, where the CSPRNG is "a
// deterministic SHAKE256 seeded with" a given byte string. It is not secure
// against adversaries who know the seed and MUST NOT be used outside tests.
//
// Grounded on the teacher's deterministicReader (reads sequentially from a
// fixed buffer), generalized to draw from a SHAKE256 stream instead of a
// literal buffer since KAT scenarios request more bytes than any one seed
// provides.
type DeterministicCSPRNG struct {
	xof *shake.XOF
}

// NewDeterministic creates a DeterministicCSPRNG seeded with seed.
func NewDeterministic(seed []byte) *DeterministicCSPRNG {
	x := shake.New256()
	x.Initialize(seed)
	return &DeterministicCSPRNG{xof: x}
}

// Read fills p by continuing the SHAKE256 stream seeded at construction.
func (d *DeterministicCSPRNG) Read(p []byte) error {
	d.xof.Generate(p)
	return nil
}
