package ring

import "sync"

// log2N is the number of bits needed to index [0, N).
const log2N = 10 // N = 1024 = 2^10

var (
	tablesOnce sync.Once
	zetas      [N]uint32 // zetas[k] = psi^bitrev(k), k=1..N-1
	zetaInvs   [N]uint32 // zetaInvs[k] = psi^-bitrev(k), k=1..N-1
	nInv       uint32    // multiplicative inverse of N mod Q
)

// buildTables derives the Montgomery-free NTT twiddle tables from a verified
// primitive 2N-th root of unity mod Q, computed once via modular
// exponentiation rather than transcribed as literal constants (see
// SPEC_FULL.md §9 for why: the original source's precomputed tables were not
// retrievable in a form this exercise could safely hand-transcribe without
// being able to execute and check 1024 sixteen-bit literals).
func buildTables() {
	g := findGenerator(Q)
	// psi is a primitive 2N-th root of unity: Q-1 = 12*N, so (Q-1)/(2N)=6
	// divides evenly and psi = g^6 has order exactly 2N.
	psi := modpow(uint64(g), uint64((Q-1)/(2*N)), Q)
	psiInv := modpow(psi, uint64(Q-2), Q) // Fermat inverse, Q prime

	for k := 1; k < N; k++ {
		e := bitrev(k, log2N)
		zetas[k] = uint32(modpow(psi, uint64(e), Q))
		zetaInvs[k] = uint32(modpow(psiInv, uint64(e), Q))
	}
	nInv = uint32(modpow(uint64(N), uint64(Q-2), Q))
}

func ensureTables() {
	tablesOnce.Do(buildTables)
}

func bitrev(x, bits int) int {
	r := 0
	for i := 0; i < bits; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}
	return r
}

func modpow(base, exp, mod uint64) uint64 {
	result := uint64(1)
	base %= mod
	for exp > 0 {
		if exp&1 == 1 {
			result = (result * base) % mod
		}
		exp >>= 1
		base = (base * base) % mod
	}
	return result
}

// findGenerator finds a generator of the multiplicative group (Z/qZ)*
// (q prime) by trial, verified against the prime factorization of q-1: g
// generates iff g^((q-1)/p) != 1 mod q for every prime factor p of q-1.
func findGenerator(q uint32) uint32 {
	factors := primeFactors(q - 1)
	for g := uint32(2); g < q; g++ {
		isGenerator := true
		for _, p := range factors {
			if modpow(uint64(g), uint64(q-1)/uint64(p), uint64(q)) == 1 {
				isGenerator = false
				break
			}
		}
		if isGenerator {
			return g
		}
	}
	panic("ring: no generator found")
}

func primeFactors(n uint32) []uint32 {
	var factors []uint32
	for p := uint32(2); p*p <= n; p++ {
		if n%p == 0 {
			factors = append(factors, p)
			for n%p == 0 {
				n /= p
			}
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// NTT transforms p from coefficient representation (natural order) to the
// NTT domain (bit-reversed order), using the standard in-place
// Cooley-Tukey butterfly for the ring Z_q[x]/(x^N+1).
func NTT(p *Poly) {
	ensureTables()
	k := 1
	for length := N / 2; length >= 1; length /= 2 {
		for start := 0; start < N; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := uint32(p[j+length]) * zeta % Q
				a := uint32(p[j])
				p[j] = uint16((a + t) % Q)
				p[j+length] = uint16((a + Q - t) % Q)
			}
		}
	}
}

// InvNTT transforms p from the NTT domain (bit-reversed order) back to
// coefficient representation (natural order), using the matching
// Gentleman-Sande butterfly followed by the final 1/N scaling.
//
// The twiddle index k at a given (length, start) must match the k the
// forward NTT used at that same (length, start): k = (N+start)/(2*length)
// (forward assigns k = 1 + (groups seen in earlier, larger-length stages) +
// (group index within this stage), which reduces to this formula). A
// globally-decrementing k, as if mirroring NTT's globally-incrementing one,
// does not reproduce this pairing whenever a stage has more than one group.
func InvNTT(p *Poly) {
	ensureTables()
	for length := 1; length < N; length *= 2 {
		for start := 0; start < N; start += 2 * length {
			k := (N + start) / (2 * length)
			zeta := zetaInvs[k]
			for j := start; j < start+length; j++ {
				a := uint32(p[j])
				b := uint32(p[j+length])
				p[j] = uint16((a + b) % Q)
				p[j+length] = uint16((a + Q - b) % Q * zeta % Q)
			}
		}
	}
	for i := range p {
		p[i] = uint16(uint32(p[i]) * nInv % Q)
	}
}
