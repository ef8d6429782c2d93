package integer

import (
	"fmt"
	"math/big"
)

// Jacobi computes the Jacobi symbol (a | b) in {-1, 0, 1} for odd b.
//
// The mathematical definition is the recursion
//
//	(a | 1) = 1
//	(a | b) = 0                     if gcd(a, b) != 1
//	(a | b) = s * (b | a')          with a mod b == 2^e * a'
//
// where the sign s collects the supplementary law (e odd and b = 3, 5 mod 8)
// and quadratic reciprocity (a' = b = 3 mod 4). The implementation unrolls
// the recursion into a loop: the second argument strictly decreases, so it
// terminates after O(log b) rounds.
//
// Returns ErrUndefinedJacobiSymbol if b is even.
func Jacobi(a, b *big.Int) (int, error) {
	if b.Bit(0) == 0 {
		return 0, fmt.Errorf("(%s | %s): %w", a, b, ErrUndefinedJacobiSymbol)
	}

	aa := new(big.Int).Set(a)
	bb := new(big.Int).Set(b)
	sign := 1
	var buf big.Int

	for {
		if bb.CmpAbs(oneInt) == 0 {
			return sign, nil
		}

		d, err := GCD(aa, bb) // bb odd and |bb| > 1, cannot fail
		if err != nil {
			return 0, err
		}
		if d.Cmp(oneInt) != 0 {
			return 0, nil
		}

		// aa and bb are coprime, so aa mod bb is nonzero and the
		// 2-adic split below is defined
		aa.Mod(aa, bb)
		exp, rest, err := PAdic(aa, twoInt)
		if err != nil {
			return 0, err
		}

		// supplementary law: (2 | b) = -1 iff b = 3, 5 mod 8
		if exp%2 == 1 {
			switch buf.And(bb, big.NewInt(7)).Int64() {
			case 3, 5:
				sign = -sign
			}
		}

		if rest.Cmp(oneInt) == 0 {
			return sign, nil
		}

		// quadratic reciprocity: flip unless either side is 1 mod 4
		if buf.And(bb, big.NewInt(3)).Int64() == 3 && new(big.Int).And(rest, big.NewInt(3)).Int64() == 3 {
			sign = -sign
		}

		aa.Set(bb)
		bb = rest
	}
}
