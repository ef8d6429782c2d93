// Package modular derives multiplicative-group invariants from a
// factorization (Euler's totient, the Carmichael function) and solves
// modular square roots for prime moduli.
package modular

import (
	"math/big"

	"github.com/numbertheory/numth/factorization"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// EulerPhi computes Euler's totient of the factored number: the size of its
// multiplicative group, the product of p^(e-1) * (p-1) over the prime powers
// p^e of f.
func EulerPhi(f factorization.Factorization) *big.Int {
	phi := big.NewInt(1)
	var term big.Int
	for _, e := range f {
		term.Sub(e.Prime, one)
		phi.Mul(phi, &term)
		if e.Exponent > 1 {
			term.Exp(e.Prime, big.NewInt(int64(e.Exponent-1)), nil)
			phi.Mul(phi, &term)
		}
	}
	return phi
}

// CarmichaelLambda computes the Carmichael function of the factored number:
// the maximum order of any element of its multiplicative group, the lcm of
// lambda over its prime powers, where lambda(2) = 1, lambda(4) = 2,
// lambda(2^e) = 2^(e-2) for e >= 3 and lambda(p^e) = phi(p^e) for odd p.
func CarmichaelLambda(f factorization.Factorization) *big.Int {
	lam := big.NewInt(1)
	for _, e := range f {
		var l *big.Int
		if e.Prime.Cmp(two) == 0 {
			switch {
			case e.Exponent == 1:
				l = big.NewInt(1)
			case e.Exponent == 2:
				l = big.NewInt(2)
			default:
				l = new(big.Int).Lsh(one, uint(e.Exponent-2))
			}
		} else {
			l = EulerPhi(factorization.Factorization{e})
		}

		// lcm of accumulated value and l, both positive
		var d big.Int
		d.GCD(nil, nil, lam, l)
		lam.Quo(lam, &d).Mul(lam, l)
	}
	return lam
}
