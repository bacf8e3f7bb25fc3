package keccak

import "testing"

func TestAbsorbAfterFinalizeFails(t *testing.T) {
	s := New(136, 0x06)
	s.Finalize()
	if err := s.Absorb([]byte("more")); err == nil {
		t.Fatal("expected InvalidState error when absorbing after finalize")
	}
}

func TestFinalizeIsIdempotent(t *testing.T) {
	s := New(136, 0x06)
	_ = s.Absorb([]byte("hello"))
	s.Finalize()
	out1 := make([]byte, 32)
	s.Squeeze(out1)

	s2 := New(136, 0x06)
	_ = s2.Absorb([]byte("hello"))
	s2.Finalize()
	s2.Finalize() // idempotent, should not perturb state
	out2 := make([]byte, 32)
	s2.Squeeze(out2)

	if string(out1) != string(out2) {
		t.Fatal("double Finalize should not change squeeze output")
	}
}

func TestDeterministic(t *testing.T) {
	digest := func(msg []byte) []byte {
		s := New(136, 0x06)
		_ = s.Absorb(msg)
		out := make([]byte, 32)
		s.Squeeze(out)
		return out
	}
	a := digest([]byte("message one"))
	b := digest([]byte("message one"))
	if string(a) != string(b) {
		t.Fatal("identical input must produce identical digest")
	}
	c := digest([]byte("message two"))
	if string(a) == string(c) {
		t.Fatal("distinct input should (overwhelmingly) produce distinct digests")
	}
}

func TestSqueezeContinuesStream(t *testing.T) {
	s1 := New(168, 0x1f)
	_ = s1.Absorb([]byte("seed"))
	whole := make([]byte, 64)
	s1.Squeeze(whole)

	s2 := New(168, 0x1f)
	_ = s2.Absorb([]byte("seed"))
	part1 := make([]byte, 20)
	part2 := make([]byte, 44)
	s2.Squeeze(part1)
	s2.Squeeze(part2)

	got := append(append([]byte{}, part1...), part2...)
	if string(got) != string(whole) {
		t.Fatal("squeezing in two calls should continue the same stream as one call")
	}
}

func TestSqueezeAcrossMultipleRateBlocks(t *testing.T) {
	s := New(136, 0x06)
	_ = s.Absorb([]byte("spanning more than one rate block of output"))
	out := make([]byte, 400) // > 2 * rate(136), forces multiple permute calls
	s.Squeeze(out)

	allZero := true
	for _, b := range out {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Fatal("squeeze output should not be all zero")
	}
}

func TestAbsorbInMultipleCalls(t *testing.T) {
	whole := []byte("the quick brown fox jumps over the lazy dog")

	s1 := New(168, 0x1f)
	_ = s1.Absorb(whole)
	out1 := make([]byte, 32)
	s1.Squeeze(out1)

	s2 := New(168, 0x1f)
	_ = s2.Absorb(whole[:10])
	_ = s2.Absorb(whole[10:])
	out2 := make([]byte, 32)
	s2.Squeeze(out2)

	if string(out1) != string(out2) {
		t.Fatal("absorbing in chunks should be equivalent to absorbing in one call")
	}
}
