package hybrid

import (
	"bytes"
	"testing"

	"github.com/pzverkov/latticekem/pkg/csprng"
	"github.com/pzverkov/latticekem/pkg/kem"
)

func TestHybridRoundTrip(t *testing.T) {
	ps := kem.MLWEQ7681N256K3
	prng := csprng.NewDeterministic([]byte("hybrid-roundtrip-seed"))

	kg, err := kem.New(ps, prng)
	if err != nil {
		t.Fatalf("kem.New: %v", err)
	}
	pk, sk, err := GenerateHybridKeyPair(kg)
	if err != nil {
		t.Fatalf("GenerateHybridKeyPair: %v", err)
	}

	enc, err := kem.New(ps, prng)
	if err != nil {
		t.Fatalf("kem.New: %v", err)
	}
	if err := enc.InitializeEncryptor(pk.KEM); err != nil {
		t.Fatalf("InitializeEncryptor: %v", err)
	}
	ct, secret1, err := HybridEncapsulate(enc, pk)
	if err != nil {
		t.Fatalf("HybridEncapsulate: %v", err)
	}

	dec, err := kem.New(ps, prng)
	if err != nil {
		t.Fatalf("kem.New: %v", err)
	}
	if err := dec.InitializeDecryptor(sk.KEM); err != nil {
		t.Fatalf("InitializeDecryptor: %v", err)
	}
	secret2, err := HybridDecapsulate(dec, sk, ct)
	if err != nil {
		t.Fatalf("HybridDecapsulate: %v", err)
	}

	if !bytes.Equal(secret1, secret2) {
		t.Fatal("hybrid shared secrets do not match")
	}
	if len(secret1) != 32 {
		t.Errorf("len(secret1) = %d, want 32", len(secret1))
	}
}
