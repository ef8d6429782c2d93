package factorization

import "github.com/bits-and-blooms/bitset"

// Primes returns all primes up to and including limit, by a sieve of
// Eratosthenes over a bitset of composite flags.
func Primes(limit uint64) []uint64 {
	if limit < 2 {
		return nil
	}

	composite := bitset.New(uint(limit) + 1)
	for p := uint64(2); p*p <= limit; p++ {
		if composite.Test(uint(p)) {
			continue
		}
		for m := p * p; m <= limit; m += p {
			composite.Set(uint(m))
		}
	}

	out := make([]uint64, 0, limit/2)
	for p := uint64(2); p <= limit; p++ {
		if !composite.Test(uint(p)) {
			out = append(out, p)
		}
	}
	return out
}
