package factorization

import (
	"fmt"
	"math/big"

	"github.com/numbertheory/numth/integer"
)

// trialDivisionBound caps the sieved prime table used before handing the
// remaining cofactor to Pollard's rho.
const trialDivisionBound = 1 << 16

var smallPrimes []uint64

func init() {
	smallPrimes = Primes(trialDivisionBound)
}

// Factor decomposes n into its prime powers.
//
// Returns ErrNotFactorable for n < 2.
func Factor(n *big.Int) (Factorization, error) {
	if n.Cmp(big.NewInt(2)) < 0 {
		return nil, fmt.Errorf("%s: %w", n, ErrNotFactorable)
	}

	counts := make(map[string]*Entry)
	rest := new(big.Int).Set(n)

	var r big.Int
	for _, p := range smallPrimes {
		if r.SetUint64(p * p).Cmp(rest) > 0 {
			// remaining cofactor has no divisor below p, so it is prime
			addPrime(counts, rest, 1)
			return normalize(counts), nil
		}
		pp := new(big.Int).SetUint64(p)
		if r.Mod(rest, pp).Sign() != 0 {
			continue
		}
		exp, reduced, err := integer.PAdic(rest, pp)
		if err != nil {
			return nil, err
		}
		counts[pp.String()] = &Entry{Prime: pp, Exponent: exp}
		rest = reduced
		if rest.Cmp(big.NewInt(1)) == 0 {
			return normalize(counts), nil
		}
	}

	// rest has no factor below the trial-division bound
	if err := splitCofactor(rest, counts); err != nil {
		return nil, err
	}
	return normalize(counts), nil
}

// splitCofactor recursively splits n (coprime to the small-prime table) into
// primes, accumulating multiplicities into counts.
func splitCofactor(n *big.Int, counts map[string]*Entry) error {
	if n.Cmp(big.NewInt(1)) == 0 {
		return nil
	}
	if IsPrime(n) {
		addPrime(counts, n, 1)
		return nil
	}

	d := pollardRho(n)
	q := new(big.Int).Quo(n, d)
	if err := splitCofactor(d, counts); err != nil {
		return err
	}
	return splitCofactor(q, counts)
}

func addPrime(counts map[string]*Entry, p *big.Int, exp int) {
	key := p.String()
	if e, ok := counts[key]; ok {
		e.Exponent += exp
		return
	}
	counts[key] = &Entry{Prime: new(big.Int).Set(p), Exponent: exp}
}

// pollardRho finds a nontrivial divisor of an odd composite n using Brent's
// cycle-finding variant of Pollard's rho.
func pollardRho(n *big.Int) *big.Int {
	one := big.NewInt(1)

	// exact squares are split directly; the rho iteration stalls on them
	if s := new(big.Int).Sqrt(n); new(big.Int).Mul(s, s).Cmp(n) == 0 {
		return s
	}

	for c := int64(1); ; c++ {
		offset := big.NewInt(c)
		x := big.NewInt(2)
		y := big.NewInt(2)
		d := big.NewInt(1)
		var diff big.Int

		step := func(v *big.Int) {
			v.Mul(v, v).Add(v, offset).Mod(v, n)
		}

		for d.Cmp(one) == 0 {
			step(x)
			step(y)
			step(y)
			diff.Sub(x, y)
			if diff.Sign() == 0 {
				// cycle collapsed, retry with the next polynomial
				d = nil
				break
			}
			d.GCD(nil, nil, diff.Abs(&diff), n)
		}

		if d != nil && d.Cmp(n) != 0 {
			return d
		}
	}
}
