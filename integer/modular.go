package integer

import (
	"fmt"
	"math/big"
)

// ModInverse computes the multiplicative inverse of num modulo mod,
// guaranteed to lie in (0, mod). The inverse is the Bezout coefficient of
// num reduced into the ring.
//
// Returns ErrInvalidModulus if mod < 2 and ErrNotInvertible if num and mod
// share a factor.
func ModInverse(num, mod *big.Int) (*big.Int, error) {
	if mod.Cmp(twoInt) < 0 {
		return nil, fmt.Errorf("modulus %s: %w", mod, ErrInvalidModulus)
	}

	d, err := GCD(num, mod) // mod >= 2, cannot fail
	if err != nil {
		return nil, err
	}
	if d.Cmp(oneInt) != 0 {
		return nil, fmt.Errorf("%s modulo %s: %w", num, mod, ErrNotInvertible)
	}

	x, _, _, err := Bezout(num, mod)
	if err != nil {
		return nil, err
	}
	return x.Mod(x, mod), nil
}

// ModPower computes num^exp modulo mod for any integer exponent. A negative
// exponent is resolved through ModInverse, so it requires num to be a unit.
//
// The positive case is iterative exponentiation by squaring, reducing after
// every multiplication so operands never exceed mod^2. O(log exp)
// multiplications.
//
// Returns ErrInvalidModulus if mod < 2; for exp < 0, ErrNotInvertible
// propagates from ModInverse when gcd(num, mod) != 1.
func ModPower(num, exp, mod *big.Int) (*big.Int, error) {
	if mod.Cmp(twoInt) < 0 {
		return nil, fmt.Errorf("modulus %s: %w", mod, ErrInvalidModulus)
	}

	if exp.Sign() < 0 {
		inv, err := ModInverse(num, mod)
		if err != nil {
			return nil, err
		}
		return ModPower(inv, new(big.Int).Neg(exp), mod)
	}

	result := big.NewInt(1)
	base := new(big.Int).Mod(num, mod)
	var buf big.Int
	for i, n := 0, exp.BitLen(); i < n; i++ {
		if exp.Bit(i) == 1 {
			buf.Mul(result, base)
			result.Mod(&buf, mod)
		}
		buf.Mul(base, base)
		base.Mod(&buf, mod)
	}

	return result, nil
}
