// Package shake implements SHAKE128/256 and the cSHAKE customization framing
// of NIST SP 800-185, on top of internal/keccak (spec §4.2).
package shake

import (
	"github.com/pzverkov/latticekem/internal/constants"
	"github.com/pzverkov/latticekem/internal/keccak"
)

// XOF is a SHAKE128 or SHAKE256 extendable-output function instance.
type XOF struct {
	state *keccak.State
}

// New128 creates a SHAKE128 instance (rate 168 bytes, domain byte 0x1F).
func New128() *XOF {
	return &XOF{state: keccak.New(constants.ShakeRate128, constants.DSByteSHAKE)}
}

// New256 creates a SHAKE256 instance (rate 136 bytes, domain byte 0x1F).
func New256() *XOF {
	return &XOF{state: keccak.New(constants.ShakeRate256, constants.DSByteSHAKE)}
}

// Initialize absorbs key as the sole input and implicitly finalizes: after
// this call, Generate squeezes the SHAKE output.
func (x *XOF) Initialize(key []byte) {
	_ = x.state.Absorb(key)
	x.state.Finalize()
}

// InitializeCustom behaves as cSHAKE: if customization is non-empty, the
// function-name string (fixed empty here, since this core uses no
// NIST-assigned function names) and customization string are left-encoded
// and bytepadded ahead of key per SP 800-185, the sponge's domain-separation
// byte switches from SHAKE's 0x1f to cSHAKE's 0x04 (SP 800-185 §3.3, required
// whenever N or S is non-empty), then key is absorbed.
// If customization is empty, this is equivalent to Initialize (plain SHAKE).
func (x *XOF) InitializeCustom(key, customization []byte) {
	if len(customization) == 0 {
		x.Initialize(key)
		return
	}
	x.state.SetDomain(constants.DSByteCSHAKE)
	rate := x.state.Rate()
	header := append(encodeString(nil), encodeString(customization)...)
	_ = x.state.Absorb(bytepad(header, rate))
	_ = x.state.Absorb(key)
	x.state.Finalize()
}

// Generate squeezes len(out) bytes into out, continuing the output stream
// across repeated calls (no implicit reset).
func (x *XOF) Generate(out []byte) {
	x.state.Squeeze(out)
}

// Sum256 computes SHAKE256(data) truncated/extended to outLen bytes in one
// call; a convenience wrapper over New256+Initialize+Generate.
func Sum256(data []byte, outLen int) []byte {
	x := New256()
	x.Initialize(data)
	out := make([]byte, outLen)
	x.Generate(out)
	return out
}

// Sum128 computes SHAKE128(data) extended to outLen bytes in one call.
func Sum128(data []byte, outLen int) []byte {
	x := New128()
	x.Initialize(data)
	out := make([]byte, outLen)
	x.Generate(out)
	return out
}
