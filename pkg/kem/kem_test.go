package kem

import (
	"bytes"
	"testing"

	"github.com/pzverkov/latticekem/internal/errors"
	"github.com/pzverkov/latticekem/pkg/csprng"
)

var allParamSets = []ParamSet{RLWEQ12289N1024, MLWEQ7681N256K2, MLWEQ7681N256K3, MLWEQ7681N256K4}

// TestRoundTrip verifies property P1: decapsulate(sk, encapsulate(pk).c)
// equals encapsulate(pk).K, for every ParamSet.
func TestRoundTrip(t *testing.T) {
	for _, ps := range allParamSets {
		ps := ps
		t.Run(ps.String(), func(t *testing.T) {
			prng := csprng.NewDeterministic([]byte(ps.String() + "-roundtrip-seed"))

			kg, err := New(ps, prng)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			pk, sk, err := kg.Generate()
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}

			enc, err := New(ps, prng)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if err := enc.InitializeEncryptor(pk); err != nil {
				t.Fatalf("InitializeEncryptor: %v", err)
			}
			ct, secret1, err := enc.Encapsulate()
			if err != nil {
				t.Fatalf("Encapsulate: %v", err)
			}

			dec, err := New(ps, prng)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if err := dec.InitializeDecryptor(sk); err != nil {
				t.Fatalf("InitializeDecryptor: %v", err)
			}
			secret2, err := dec.Decapsulate(ct)
			if err != nil {
				t.Fatalf("Decapsulate: %v", err)
			}

			if !bytes.Equal(secret1.Bytes(), secret2.Bytes()) {
				t.Fatal("decapsulated secret does not match encapsulated secret")
			}
		})
	}
}

// TestImplicitRejection checks part of property P4: a tampered ciphertext
// still yields a populated shared secret, with a distinguishable
// AuthenticationFailure error — and distinct tamperings yield distinct
// secrets. It does not check that the secret is derived from sk.z.
func TestImplicitRejection(t *testing.T) {
	ps := MLWEQ7681N256K2
	prng := csprng.NewDeterministic([]byte("implicit-rejection-seed"))

	kg, _ := New(ps, prng)
	pk, sk, err := kg.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	enc, _ := New(ps, prng)
	_ = enc.InitializeEncryptor(pk)
	ct, _, err := enc.Encapsulate()
	if err != nil {
		t.Fatalf("Encapsulate: %v", err)
	}

	dec, _ := New(ps, prng)
	_ = dec.InitializeDecryptor(sk)

	tampered1 := append([]byte{}, ct.Bytes()...)
	tampered1[0] ^= 0x01
	ct1 := &Ciphertext{paramSet: ps, bytes: tampered1}

	secret1, err := dec.Decapsulate(ct1)
	if !errors.Is(err, errors.ErrAuthenticationFailure) {
		t.Fatalf("expected ErrAuthenticationFailure, got %v", err)
	}
	if secret1 == nil || len(secret1.Bytes()) == 0 {
		t.Fatal("expected a populated implicit-rejection secret")
	}

	tampered2 := append([]byte{}, ct.Bytes()...)
	tampered2[1] ^= 0x01
	ct2 := &Ciphertext{paramSet: ps, bytes: tampered2}

	secret2, err := dec.Decapsulate(ct2)
	if !errors.Is(err, errors.ErrAuthenticationFailure) {
		t.Fatalf("expected ErrAuthenticationFailure, got %v", err)
	}

	if bytes.Equal(secret1.Bytes(), secret2.Bytes()) {
		t.Fatal("distinct tamperings should yield distinct implicit-rejection secrets")
	}
}

// TestDomainKeySeparation verifies property P5.
func TestDomainKeySeparation(t *testing.T) {
	ps := RLWEQ12289N1024
	prng := csprng.NewDeterministic([]byte("domain-key-seed"))

	kg, _ := New(ps, prng)
	pk, _, err := kg.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	fixedCoin := csprng.NewDeterministic([]byte("fixed-coin-seed"))

	encA, _ := New(ps, fixedCoin, WithDomainKey([]byte("domain-a")))
	_ = encA.InitializeEncryptor(pk)
	_, secretA, err := encA.Encapsulate()
	if err != nil {
		t.Fatalf("Encapsulate: %v", err)
	}

	fixedCoin2 := csprng.NewDeterministic([]byte("fixed-coin-seed"))
	encB, _ := New(ps, fixedCoin2, WithDomainKey([]byte("domain-b")))
	_ = encB.InitializeEncryptor(pk)
	_, secretB, err := encB.Encapsulate()
	if err != nil {
		t.Fatalf("Encapsulate: %v", err)
	}

	if bytes.Equal(secretA.Bytes(), secretB.Bytes()) {
		t.Fatal("distinct DomainKeys should yield distinct shared secrets")
	}

	fixedCoin3 := csprng.NewDeterministic([]byte("fixed-coin-seed"))
	encA2, _ := New(ps, fixedCoin3, WithDomainKey([]byte("domain-a")))
	_ = encA2.InitializeEncryptor(pk)
	_, secretA2, err := encA2.Encapsulate()
	if err != nil {
		t.Fatalf("Encapsulate: %v", err)
	}
	if !bytes.Equal(secretA.Bytes(), secretA2.Bytes()) {
		t.Fatal("same DomainKey and coin should yield identical shared secrets")
	}
}

// TestStateMachineViolations verifies §4.7's InvalidState contract.
func TestStateMachineViolations(t *testing.T) {
	prng := csprng.System()
	k, err := New(RLWEQ12289N1024, prng)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, _, err := k.Encapsulate(); !errors.Is(err, errors.ErrInvalidState) {
		t.Errorf("Encapsulate before init: got %v, want ErrInvalidState", err)
	}
	if _, err := k.Decapsulate(&Ciphertext{}); !errors.Is(err, errors.ErrInvalidState) {
		t.Errorf("Decapsulate before init: got %v, want ErrInvalidState", err)
	}
}

// TestInvalidParamSet verifies §7's InvalidParameter contract.
func TestInvalidParamSet(t *testing.T) {
	if _, err := New(ParamSet(99), csprng.System()); !errors.Is(err, errors.ErrInvalidParameter) {
		t.Errorf("got %v, want ErrInvalidParameter", err)
	}
}

// TestSharedSecretCustomLength checks WithSharedSecretLen is honored.
func TestSharedSecretCustomLength(t *testing.T) {
	ps := MLWEQ7681N256K4
	prng := csprng.NewDeterministic([]byte("custom-length-seed"))

	kg, _ := New(ps, prng, WithSharedSecretLen(64))
	pk, _, err := kg.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	enc, _ := New(ps, prng, WithSharedSecretLen(64))
	_ = enc.InitializeEncryptor(pk)
	_, secret, err := enc.Encapsulate()
	if err != nil {
		t.Fatalf("Encapsulate: %v", err)
	}
	if len(secret.Bytes()) != 64 {
		t.Errorf("len(secret) = %d, want 64", len(secret.Bytes()))
	}
}

// TestGenerateSizesMatchParamSet checks produced key sizes against §6.
func TestGenerateSizesMatchParamSet(t *testing.T) {
	for _, ps := range allParamSets {
		pub, priv, _, err := ps.Sizes()
		if err != nil {
			t.Fatalf("%s: Sizes: %v", ps, err)
		}
		prng := csprng.NewDeterministic([]byte(ps.String() + "-sizes-seed"))
		kg, _ := New(ps, prng)
		pk, sk, err := kg.Generate()
		if err != nil {
			t.Fatalf("%s: Generate: %v", ps, err)
		}
		if got := len(pk.Bytes()); got != pub {
			t.Errorf("%s: len(pk) = %d, want %d", ps, got, pub)
		}
		if got := len(sk.Bytes()); got != priv {
			t.Errorf("%s: len(sk) = %d, want %d", ps, got, priv)
		}
	}
}

// TestSelfTestPasses exercises the ambient pairwise-consistency self-test.
func TestSelfTestPasses(t *testing.T) {
	if err := RunSelfTest(); err != nil {
		t.Fatalf("RunSelfTest: %v", err)
	}
	if !SelfTestPassed() {
		t.Fatal("SelfTestPassed() = false, want true")
	}
}
