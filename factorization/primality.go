package factorization

import (
	"math/big"

	"github.com/numbertheory/numth/integer"
)

// The first twelve primes witness primality deterministically for all
// n < 3.317e24 (Sorenson & Webster); larger inputs get a strong
// probabilistic verdict.
var millerRabinWitnesses = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsPrime reports whether n is prime. Deterministic below 3.3e24,
// Miller-Rabin with the fixed witness set above.
func IsPrime(n *big.Int) bool {
	if n.Sign() <= 0 {
		return false
	}
	if n.BitLen() <= 6 {
		// small cases, covers the witness primes themselves
		switch n.Int64() {
		case 2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61:
			return true
		}
		if n.Int64() < 64 {
			return false
		}
	}
	if n.Bit(0) == 0 {
		return false
	}

	// n-1 == 2^s * d with d odd
	nMinus1 := new(big.Int).Sub(n, big.NewInt(1))
	s, d, err := integer.PAdic(nMinus1, big.NewInt(2))
	if err != nil {
		return false
	}

	for _, w := range millerRabinWitnesses {
		witness := big.NewInt(w)
		if witness.Cmp(nMinus1) >= 0 {
			continue
		}
		if millerRabinComposite(n, nMinus1, witness, s, d) {
			return false
		}
	}
	return true
}

// millerRabinComposite reports whether witness proves n composite, given
// n-1 == 2^s * d.
func millerRabinComposite(n, nMinus1, witness *big.Int, s int, d *big.Int) bool {
	x, err := integer.ModPower(witness, d, n)
	if err != nil {
		return true
	}
	if x.Cmp(big.NewInt(1)) == 0 || x.Cmp(nMinus1) == 0 {
		return false
	}
	for i := 1; i < s; i++ {
		x.Mul(x, x).Mod(x, n)
		if x.Cmp(nMinus1) == 0 {
			return false
		}
	}
	return true
}
