package integer

import (
	"fmt"
	"math/big"
)

// PAdic computes the base-adic valuation of num: the pair (exp, rest) with
// num == base^exp * rest and rest not divisible by base. The sign of rest
// follows num.
//
// Returns ErrInvalidBase if base < 2 and ErrPAdicOfZero if num is zero,
// since zero is divisible by every power of every base.
func PAdic(num, base *big.Int) (exp int, rest *big.Int, err error) {
	if base.Cmp(twoInt) < 0 {
		return 0, nil, fmt.Errorf("base %s: %w", base, ErrInvalidBase)
	}
	if num.Sign() == 0 {
		return 0, nil, ErrPAdicOfZero
	}

	rest = new(big.Int).Set(num)
	var q, r big.Int
	for {
		q.QuoRem(rest, base, &r)
		if r.Sign() != 0 {
			return exp, rest, nil
		}
		rest.Set(&q)
		exp++
	}
}
