// Package integer implements exact arithmetic on arbitrary-precision
// integers: division with remainder under two rounding conventions, the
// Euclidean family (gcd, lcm, Bezout coefficients), modular exponentiation
// and inversion, p-adic valuations and the Jacobi symbol.
//
// All functions are pure: arguments are never modified and results are
// freshly allocated big.Ints.
package integer

import "math/big"

// Rounding selects the remainder convention used by DivMod.
type Rounding uint8

const (
	// RoundEuclidean places the remainder in [0, |denom|).
	RoundEuclidean Rounding = iota

	// RoundBalanced places the remainder in (-|denom|/2, |denom|/2].
	// Balanced remainders keep the intermediate values of the Euclidean
	// algorithm small and bound its iteration count.
	RoundBalanced
)

// DivMod performs division with remainder and returns the unique pair
// (q, r) satisfying num == q*denom + r with r in the range selected by mode.
//
// Returns ErrDivisionByZero if denom is zero.
func DivMod(num, denom *big.Int, mode Rounding) (q, r *big.Int, err error) {
	if denom.Sign() == 0 {
		return nil, nil, ErrDivisionByZero
	}

	q, r = new(big.Int), new(big.Int)
	q.DivMod(num, denom, r) // Euclidean: 0 <= r < |denom|

	if mode == RoundBalanced {
		var half big.Int
		half.Abs(denom).Rsh(&half, 1) // floor(|denom| / 2)
		if r.Cmp(&half) > 0 {
			// shift the remainder down by |denom|, compensating
			// the quotient by sign(denom)
			if denom.Sign() > 0 {
				q.Add(q, oneInt)
				r.Sub(r, denom)
			} else {
				q.Sub(q, oneInt)
				r.Add(r, denom)
			}
		}
	}

	return q, r, nil
}

var (
	oneInt = big.NewInt(1)
	twoInt = big.NewInt(2)
)
