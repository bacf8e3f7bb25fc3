// Package keccak implements the Keccak-f[1600] permutation and a
// rate/capacity sponge construction on top of it (spec §4.1). Higher-level
// XOFs (SHAKE128/256, cSHAKE) are built on this package in internal/shake.
package keccak

import "github.com/pzverkov/latticekem/internal/errors"

// State is a Keccak sponge with a caller-chosen rate and domain-separation
// byte. It supports Absorb (repeatable until Finalize), Finalize (pads with
// the domain byte and the 0x80 FIPS-202 terminator, idempotent), and Squeeze
// (extracts arbitrarily many bytes, continuing the stream across calls).
//
// A State is not safe for concurrent use; it is owned by the operation that
// created it. State has no reset or zeroize method: callers drop it once
// they are done with it.
type State struct {
	a        [25]uint64
	rate     int
	dsbyte   byte
	buf      [200]byte // staging buffer, sized to the largest possible rate
	pos      int       // bytes filled in buf during absorb, or consumed during squeeze
	final    bool
}

// New creates a Keccak sponge with the given rate (in bytes) and
// domain-separation byte. rate must be in (0, 200].
func New(rate int, dsbyte byte) *State {
	if rate <= 0 || rate > 200 {
		panic("keccak: invalid rate")
	}
	return &State{rate: rate, dsbyte: dsbyte}
}

// Absorb feeds p into the sponge. It may be called multiple times before
// Finalize. Calling Absorb after Finalize returns InvalidState.
func (s *State) Absorb(p []byte) error {
	if s.final {
		return errors.NewCryptoError("keccak.Absorb", errors.ErrInvalidState)
	}
	for len(p) > 0 {
		n := copy(s.buf[s.pos:s.rate], p)
		s.pos += n
		p = p[n:]
		if s.pos == s.rate {
			s.absorbBlock()
			s.pos = 0
		}
	}
	return nil
}

func (s *State) absorbBlock() {
	for i := 0; i < s.rate/8; i++ {
		lane := uint64(s.buf[8*i]) | uint64(s.buf[8*i+1])<<8 | uint64(s.buf[8*i+2])<<16 |
			uint64(s.buf[8*i+3])<<24 | uint64(s.buf[8*i+4])<<32 | uint64(s.buf[8*i+5])<<40 |
			uint64(s.buf[8*i+6])<<48 | uint64(s.buf[8*i+7])<<56
		s.a[i] ^= lane
	}
	permute(&s.a)
}

// Finalize pads the current partial block with the domain-separation byte
// and the FIPS-202 0x80 terminator, then permutes. It is idempotent: calling
// it more than once has no further effect. After Finalize the sponge is
// ready for Squeeze.
func (s *State) Finalize() {
	if s.final {
		return
	}
	for i := s.pos; i < s.rate; i++ {
		s.buf[i] = 0
	}
	s.buf[s.pos] ^= s.dsbyte
	s.buf[s.rate-1] ^= 0x80
	s.absorbBlock()
	s.pos = 0
	s.final = true
}

// Squeeze extracts len(out) bytes, calling Finalize first if needed, and
// continuing the squeeze stream across repeated calls.
func (s *State) Squeeze(out []byte) {
	if !s.final {
		s.Finalize()
	}
	for len(out) > 0 {
		if s.pos == 0 {
			s.extractBlock()
		}
		n := copy(out, s.buf[s.pos:s.rate])
		out = out[n:]
		s.pos += n
		if s.pos == s.rate {
			s.pos = 0
		}
	}
}

func (s *State) extractBlock() {
	for i := 0; i < s.rate/8; i++ {
		lane := s.a[i]
		s.buf[8*i] = byte(lane)
		s.buf[8*i+1] = byte(lane >> 8)
		s.buf[8*i+2] = byte(lane >> 16)
		s.buf[8*i+3] = byte(lane >> 24)
		s.buf[8*i+4] = byte(lane >> 32)
		s.buf[8*i+5] = byte(lane >> 40)
		s.buf[8*i+6] = byte(lane >> 48)
		s.buf[8*i+7] = byte(lane >> 56)
	}
	permute(&s.a)
}

// Rate returns the sponge's rate in bytes.
func (s *State) Rate() int { return s.rate }

// SetDomain overrides the domain-separation byte established at New. Valid
// only before the first Absorb/Finalize; callers that need a sponge with a
// different domain byte than their default constructor provides (cSHAKE's
// 0x04 in place of SHAKE's 0x1f, SP 800-185 §3.3) call this immediately
// after New.
func (s *State) SetDomain(dsbyte byte) {
	s.dsbyte = dsbyte
}
