package modular

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/numbertheory/numth/factorization"
	"github.com/numbertheory/numth/integer"
)

// bruteForcePhi counts residues in [1, n) coprime to n.
func bruteForcePhi(n int64) int64 {
	var count int64
	for k := int64(1); k < n; k++ {
		var d big.Int
		d.GCD(nil, nil, big.NewInt(k), big.NewInt(n))
		if d.Int64() == 1 {
			count++
		}
	}
	return count
}

func TestEulerPhi(t *testing.T) {
	assert := require.New(t)

	for n := int64(2); n <= 200; n++ {
		f, err := factorization.Factor(big.NewInt(n))
		assert.NoError(err)
		assert.Equal(bruteForcePhi(n), EulerPhi(f).Int64(), "phi(%d)", n)
	}
}

func TestCarmichaelLambda(t *testing.T) {
	assert := require.New(t)

	// OEIS A002322
	want := []int64{1, 1, 2, 2, 4, 2, 6, 2, 6, 4, 10, 2, 12, 6, 4, 4, 16, 6, 18, 4}
	for i, w := range want {
		n := int64(i + 1)
		if n == 1 {
			continue // factorization defined for n >= 2
		}
		f, err := factorization.Factor(big.NewInt(n))
		assert.NoError(err)
		assert.Equal(w, CarmichaelLambda(f).Int64(), "lambda(%d)", n)
	}

	// powers of two switch formulas at 8
	for _, c := range []struct{ n, lam int64 }{{8, 2}, {16, 4}, {32, 8}, {64, 16}} {
		f, err := factorization.Factor(big.NewInt(c.n))
		assert.NoError(err)
		assert.Equal(c.lam, CarmichaelLambda(f).Int64())
	}
}

func TestCarmichaelDividesPhi(t *testing.T) {
	assert := require.New(t)

	for n := int64(2); n <= 300; n++ {
		f, err := factorization.Factor(big.NewInt(n))
		assert.NoError(err)
		phi := EulerPhi(f)
		lam := CarmichaelLambda(f)
		var r big.Int
		assert.Zero(r.Mod(phi, lam).Sign(), "lambda(%d) must divide phi(%d)", n, n)
	}
}

func TestModSqrt(t *testing.T) {
	assert := require.New(t)

	for _, p := range []int64{3, 5, 7, 11, 13, 17, 97, 101, 104729} {
		prime := big.NewInt(p)
		for a := int64(0); a < 50 && a < p; a++ {
			elem := big.NewInt(a)
			j, err := integer.Jacobi(elem, prime)
			assert.NoError(err)

			roots, err := ModSqrt(elem, prime)
			if j == -1 {
				assert.ErrorIs(err, ErrNotSquare)
				continue
			}
			assert.NoError(err)
			if a == 0 {
				assert.Len(roots, 1)
			} else {
				assert.Len(roots, 2)
				assert.Negative(roots[0].Cmp(roots[1]))
			}
			for _, r := range roots {
				var sq big.Int
				sq.Mul(r, r).Mod(&sq, prime)
				assert.Equal(a, sq.Int64(), "sqrt(%d) mod %d", a, p)
			}
		}
	}
}

func TestModSqrtModulusTwo(t *testing.T) {
	assert := require.New(t)

	roots, err := ModSqrt(big.NewInt(5), big.NewInt(2))
	assert.NoError(err)
	assert.Len(roots, 1)
	assert.Equal(int64(1), roots[0].Int64())

	_, err = ModSqrt(big.NewInt(5), big.NewInt(1))
	assert.ErrorIs(err, integer.ErrInvalidModulus)
}
