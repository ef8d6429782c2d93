// Package factorization implements integer factorization and the
// enumerations derived from a factorization: the prime multiset of a number
// and the ascending residues coprime to it.
//
// Factoring combines trial division over a sieved prime table with Pollard's
// rho (Brent variant) for the remaining large cofactors, with Miller-Rabin
// as the primality oracle.
package factorization

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
)

var (
	// ErrNotFactorable is returned by Factor for arguments smaller than 2.
	ErrNotFactorable = errors.New("only integers greater than 1 can be factored")

	// ErrGroupTooLarge is returned by PrimeTo when the factored number is too
	// large for its residues to be enumerated in memory.
	ErrGroupTooLarge = errors.New("modulus too large to enumerate coprime residues")
)

// Entry is one prime power of a factorization.
type Entry struct {
	Prime    *big.Int
	Exponent int
}

// Factorization is a factored positive integer: its prime powers in
// ascending prime order. The product of Prime^Exponent over all entries
// reconstructs the factored number.
type Factorization []Entry

// Product reconstructs the factored number.
func (f Factorization) Product() *big.Int {
	n := big.NewInt(1)
	var pow big.Int
	for _, e := range f {
		pow.Exp(e.Prime, big.NewInt(int64(e.Exponent)), nil)
		n.Mul(n, &pow)
	}
	return n
}

// Primes returns the prime factors as a flat multiset, each prime repeated
// by its multiplicity, in ascending order.
func (f Factorization) Primes() []*big.Int {
	var out []*big.Int
	for _, e := range f {
		for i := 0; i < e.Exponent; i++ {
			out = append(out, e.Prime)
		}
	}
	return out
}

func (f Factorization) String() string {
	var sb strings.Builder
	for i, e := range f {
		if i > 0 {
			sb.WriteString(" * ")
		}
		if e.Exponent == 1 {
			fmt.Fprintf(&sb, "%s", e.Prime)
		} else {
			fmt.Fprintf(&sb, "%s^%d", e.Prime, e.Exponent)
		}
	}
	return sb.String()
}

// normalize builds a sorted Factorization from a prime -> exponent map.
func normalize(counts map[string]*Entry) Factorization {
	f := make(Factorization, 0, len(counts))
	for _, e := range counts {
		f = append(f, *e)
	}
	sort.Slice(f, func(i, j int) bool { return f[i].Prime.Cmp(f[j].Prime) < 0 })
	return f
}
