package factorization

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestPrimesSieve(t *testing.T) {
	assert := require.New(t)

	assert.Equal([]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, Primes(30))
	assert.Nil(Primes(1))
	assert.Equal([]uint64{2}, Primes(2))

	// pi(10^4) == 1229
	assert.Len(Primes(10_000), 1229)
}

func TestIsPrime(t *testing.T) {
	assert := require.New(t)

	primes := []int64{2, 3, 5, 7, 61, 67, 97, 7919, 104729}
	for _, p := range primes {
		assert.True(IsPrime(big.NewInt(p)), "%d should be prime", p)
	}

	composites := []int64{0, 1, 4, 9, 49, 561, 1105, 6601, 8911, 104730}
	for _, c := range composites {
		assert.False(IsPrime(big.NewInt(c)), "%d should be composite", c)
	}

	// Mersenne prime 2^61 - 1
	m61 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 61), big.NewInt(1))
	assert.True(IsPrime(m61))
	assert.False(IsPrime(new(big.Int).Mul(m61, m61)))
}

func TestFactorFixed(t *testing.T) {
	assert := require.New(t)

	f, err := Factor(big.NewInt(360))
	assert.NoError(err)
	assert.Equal("2^3 * 3^2 * 5", f.String())

	f, err = Factor(big.NewInt(97))
	assert.NoError(err)
	assert.Equal("97", f.String())

	// semiprime past the trial-division bound
	p := big.NewInt(1_000_003)
	q := big.NewInt(1_000_033)
	f, err = Factor(new(big.Int).Mul(p, q))
	assert.NoError(err)
	assert.Len(f, 2)
	assert.Zero(f[0].Prime.Cmp(p))
	assert.Zero(f[1].Prime.Cmp(q))

	// prime square past the trial-division bound
	f, err = Factor(new(big.Int).Mul(p, p))
	assert.NoError(err)
	assert.Len(f, 1)
	assert.Zero(f[0].Prime.Cmp(p))
	assert.Equal(2, f[0].Exponent)

	_, err = Factor(big.NewInt(1))
	assert.ErrorIs(err, ErrNotFactorable)
	_, err = Factor(big.NewInt(-12))
	assert.ErrorIs(err, ErrNotFactorable)
}

func TestFactorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)

	properties.Property("product of prime powers reconstructs the number", prop.ForAll(
		func(n int64) bool {
			f, err := Factor(big.NewInt(n))
			if err != nil {
				return false
			}
			for _, e := range f {
				if e.Exponent < 1 || !IsPrime(e.Prime) {
					return false
				}
			}
			return f.Product().Int64() == n
		},
		gen.Int64Range(2, 10_000_000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestPrimesMultiset(t *testing.T) {
	f, err := Factor(big.NewInt(360))
	require.NoError(t, err)

	var got []int64
	for _, p := range f.Primes() {
		got = append(got, p.Int64())
	}
	require.Equal(t, []int64{2, 2, 2, 3, 3, 5}, got)
}

func TestPrimeTo(t *testing.T) {
	assert := require.New(t)

	f, err := Factor(big.NewInt(15))
	assert.NoError(err)
	units, err := PrimeTo(f)
	assert.NoError(err)

	var got []int64
	for _, u := range units {
		got = append(got, u.Int64())
	}
	assert.Equal([]int64{1, 2, 4, 7, 8, 11, 13, 14}, got)

	f, err = Factor(big.NewInt(2))
	assert.NoError(err)
	units, err = PrimeTo(f)
	assert.NoError(err)
	assert.Len(units, 1)
	assert.Equal(int64(1), units[0].Int64())

	// ascending and coprime for a composite with repeated factors
	f, err = Factor(big.NewInt(72))
	assert.NoError(err)
	units, err = PrimeTo(f)
	assert.NoError(err)
	assert.Len(units, 24) // phi(72)
	prev := int64(0)
	for _, u := range units {
		assert.Greater(u.Int64(), prev)
		prev = u.Int64()
		var d big.Int
		d.GCD(nil, nil, u, big.NewInt(72))
		assert.Equal(int64(1), d.Int64())
	}
}

func TestPrimeToTooLarge(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 80)
	f := Factorization{{Prime: big.NewInt(2), Exponent: 80}}
	require.Zero(t, f.Product().Cmp(huge))

	_, err := PrimeTo(f)
	require.ErrorIs(t, err, ErrGroupTooLarge)
}
