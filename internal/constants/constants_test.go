package constants

import "testing"

// TestRLWESizes verifies the RLWE byte sizes against spec.md §6, with the
// documented ciphertext-size deviation (2208, not 2240).
func TestRLWESizes(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"RLWECCAPublicKeySize", RLWECCAPublicKeySize, 1824},
		{"RLWECCAPrivateKeySize", RLWECCAPrivateKeySize, 3680},
		{"RLWECCACiphertextSize", RLWECCACiphertextSize, 2208},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

// TestMLWESizes verifies the MLWE byte sizes against spec.md §6 for k=2,3,4.
func TestMLWESizes(t *testing.T) {
	tests := []struct {
		k                    int
		pub, priv, ciphertext int
	}{
		{2, 864, 1760, 800},
		{3, 1280, 2592, 1152},
		{4, 1696, 3424, 1504},
	}
	for _, tt := range tests {
		pub, priv, ct := MLWESizes(tt.k)
		if pub != tt.pub {
			t.Errorf("k=%d: pub = %d, want %d", tt.k, pub, tt.pub)
		}
		if priv != tt.priv {
			t.Errorf("k=%d: priv = %d, want %d", tt.k, priv, tt.priv)
		}
		if ct != tt.ciphertext {
			t.Errorf("k=%d: ciphertext = %d, want %d", tt.k, ct, tt.ciphertext)
		}
	}
}

// TestPolyPackSizes checks invariant I1 arithmetic: ceil(14n/8) and ceil(13n/8).
func TestPolyPackSizes(t *testing.T) {
	if RLWEPolySize != 1792 {
		t.Errorf("RLWEPolySize = %d, want 1792", RLWEPolySize)
	}
	if MLWEPolySize != 416 {
		t.Errorf("MLWEPolySize = %d, want 416", MLWEPolySize)
	}
}

func TestShakeRates(t *testing.T) {
	if ShakeRate128 != 168 {
		t.Errorf("ShakeRate128 = %d, want 168", ShakeRate128)
	}
	if ShakeRate256 != 136 {
		t.Errorf("ShakeRate256 = %d, want 136", ShakeRate256)
	}
}
