package modular

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/numbertheory/numth/integer"
)

// ErrNotSquare is returned by ModSqrt for quadratic non-residues.
var ErrNotSquare = errors.New("element is not a square")

// ModSqrt computes the square roots of element modulo the odd prime prime
// (the modulus 2 degenerate case is also handled). The result is ascending:
// both roots r and prime-r for a nonzero residue, the single root 0 for a
// zero element. Primality of the modulus is assumed, not verified.
//
// Uses the Tonelli-Shanks algorithm; for prime == 3 mod 4 the direct
// exponentiation (p+1)/4 shortcut applies.
//
// Returns integer.ErrInvalidModulus for prime < 2 and ErrNotSquare when
// element has Jacobi symbol -1.
func ModSqrt(element, prime *big.Int) ([]*big.Int, error) {
	if prime.Cmp(two) < 0 {
		return nil, fmt.Errorf("modulus %s: %w", prime, integer.ErrInvalidModulus)
	}

	a := new(big.Int).Mod(element, prime)
	if a.Sign() == 0 {
		return []*big.Int{new(big.Int)}, nil
	}
	if prime.Cmp(two) == 0 {
		return []*big.Int{a}, nil // a == 1, its own root
	}

	j, err := integer.Jacobi(a, prime)
	if err != nil {
		return nil, err
	}
	if j != 1 {
		return nil, fmt.Errorf("%s modulo %s: %w", element, prime, ErrNotSquare)
	}

	var r *big.Int
	var buf big.Int
	if buf.And(prime, big.NewInt(3)).Int64() == 3 {
		// r = a^((p+1)/4)
		exp := new(big.Int).Add(prime, one)
		exp.Rsh(exp, 2)
		r, err = integer.ModPower(a, exp, prime)
	} else {
		r, err = tonelliShanks(a, prime)
	}
	if err != nil {
		return nil, err
	}

	other := new(big.Int).Sub(prime, r)
	if r.Cmp(other) > 0 {
		r, other = other, r
	}
	return []*big.Int{r, other}, nil
}

// tonelliShanks finds one square root of the quadratic residue a modulo the
// odd prime p with p == 1 mod 4.
func tonelliShanks(a, p *big.Int) (*big.Int, error) {
	// p-1 == 2^s * q with q odd
	pMinus1 := new(big.Int).Sub(p, one)
	s, q, err := integer.PAdic(pMinus1, two)
	if err != nil {
		return nil, err
	}

	// any non-residue serves as the seed of the 2-power subgroup
	z := big.NewInt(2)
	for {
		j, err := integer.Jacobi(z, p)
		if err != nil {
			return nil, err
		}
		if j == -1 {
			break
		}
		z.Add(z, one)
	}

	c, err := integer.ModPower(z, q, p)
	if err != nil {
		return nil, err
	}
	t, err := integer.ModPower(a, q, p)
	if err != nil {
		return nil, err
	}
	exp := new(big.Int).Add(q, one)
	exp.Rsh(exp, 1)
	r, err := integer.ModPower(a, exp, p) // a^((q+1)/2)
	if err != nil {
		return nil, err
	}

	m := s
	var buf big.Int
	for t.Cmp(one) != 0 {
		// least i with t^(2^i) == 1
		i := 0
		buf.Set(t)
		for buf.Cmp(one) != 0 {
			buf.Mul(&buf, &buf).Mod(&buf, p)
			i++
		}

		// b = c^(2^(m-i-1))
		b := new(big.Int).Set(c)
		for k := 0; k < m-i-1; k++ {
			b.Mul(b, b).Mod(b, p)
		}

		m = i
		c.Mul(b, b).Mod(c, p)
		t.Mul(t, c).Mod(t, p)
		r.Mul(r, b).Mod(r, p)
	}

	return r, nil
}
