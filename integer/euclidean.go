package integer

import "math/big"

// GCD computes the greatest common divisor of a and b, always positive.
//
// The loop is the Euclidean algorithm with balanced remainders, so each
// remainder is at most half the previous one and the iteration count is
// O(log(min(|a|, |b|))).
//
// Returns ErrUndefinedGCD if both arguments are zero.
func GCD(a, b *big.Int) (*big.Int, error) {
	if a.Sign() == 0 && b.Sign() == 0 {
		return nil, ErrUndefinedGCD
	}

	x := new(big.Int).Set(a)
	y := new(big.Int).Set(b)
	for y.Sign() != 0 {
		_, r, err := DivMod(x, y, RoundBalanced)
		if err != nil {
			return nil, err
		}
		x, y = y, r
	}

	return x.Abs(x), nil
}

// LCM computes the least common multiple of a and b. The result carries the
// sign of a*b. Division by the gcd happens before the multiplication to keep
// the intermediate magnitude at most |a*b|.
//
// Returns ErrUndefinedLCM if either argument is zero.
func LCM(a, b *big.Int) (*big.Int, error) {
	if a.Sign() == 0 || b.Sign() == 0 {
		return nil, ErrUndefinedLCM
	}

	d, err := GCD(a, b)
	if err != nil {
		return nil, err
	}

	m := new(big.Int).Quo(a, d) // exact, d divides a
	return m.Mul(m, b), nil
}

// Bezout solves Bezout's lemma for a and b: it returns (x, y, d) with
// d == gcd(a, b) > 0 and a*x + b*y == d.
//
// The coefficients follow the extended Euclidean recurrence with balanced
// quotients, maintaining two coefficient sequences via
// newer = -q*older + olderOlder. The final sign is normalized so that the
// combination a*x + b*y is positive.
//
// Returns ErrUndefinedGCD if both arguments are zero.
func Bezout(a, b *big.Int) (x, y, d *big.Int, err error) {
	if a.Sign() == 0 && b.Sign() == 0 {
		return nil, nil, nil, ErrUndefinedGCD
	}

	if b.Sign() == 0 {
		x = big.NewInt(int64(a.Sign()))
		return x, new(big.Int), new(big.Int).Abs(a), nil
	}

	aa := new(big.Int).Set(a)
	bb := new(big.Int).Set(b)
	q, r, err := DivMod(aa, bb, RoundBalanced)
	if err != nil {
		return nil, nil, nil, err
	}

	xx, x := big.NewInt(0), big.NewInt(1)
	yy, y := big.NewInt(1), new(big.Int).Neg(q)

	for r.Sign() != 0 {
		aa, bb = bb, r
		q, r, err = DivMod(aa, bb, RoundBalanced)
		if err != nil {
			return nil, nil, nil, err
		}
		xx, x = x, new(big.Int).Sub(xx, new(big.Int).Mul(q, x))
		yy, y = y, new(big.Int).Sub(yy, new(big.Int).Mul(q, y))
	}

	// a*xx + b*yy is +-gcd(a, b); normalize it to be positive
	d = new(big.Int).Mul(a, xx)
	d.Add(d, new(big.Int).Mul(b, yy))
	if d.Sign() < 0 {
		xx.Neg(xx)
		yy.Neg(yy)
		d.Neg(d)
	}

	return xx, yy, d, nil
}
