package integer

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestGCDProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000

	properties := gopter.NewProperties(parameters)

	properties.Property("gcd divides both arguments and the cofactors are coprime", prop.ForAll(
		func(a, b int64) bool {
			d, err := GCD(big.NewInt(a), big.NewInt(b))
			if err != nil || d.Sign() <= 0 {
				return false
			}
			var r big.Int
			if r.Mod(big.NewInt(a), d).Sign() != 0 || r.Mod(big.NewInt(b), d).Sign() != 0 {
				return false
			}
			ca := new(big.Int).Quo(big.NewInt(a), d)
			cb := new(big.Int).Quo(big.NewInt(b), d)
			dd, err := GCD(ca, cb)
			return err == nil && dd.Cmp(big.NewInt(1)) == 0
		},
		nonZero(),
		nonZero(),
	))

	properties.Property("gcd agrees with math/big", prop.ForAll(
		func(a, b int64) bool {
			d, err := GCD(big.NewInt(a), big.NewInt(b))
			if err != nil {
				return false
			}
			var absA, absB, want big.Int
			absA.Abs(big.NewInt(a))
			absB.Abs(big.NewInt(b))
			want.GCD(nil, nil, &absA, &absB)
			return d.Cmp(&want) == 0
		},
		nonZero(),
		nonZero(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestGCDEdgeCases(t *testing.T) {
	assert := require.New(t)

	_, err := GCD(new(big.Int), new(big.Int))
	assert.ErrorIs(err, ErrUndefinedGCD)

	d, err := GCD(new(big.Int), big.NewInt(-12))
	assert.NoError(err)
	assert.Equal(int64(12), d.Int64())

	d, err = GCD(big.NewInt(12), new(big.Int))
	assert.NoError(err)
	assert.Equal(int64(12), d.Int64())
}

func TestLCMProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000

	properties := gopter.NewProperties(parameters)

	properties.Property("lcm is a common multiple with coprime cofactors", prop.ForAll(
		func(a, b int64) bool {
			m, err := LCM(big.NewInt(a), big.NewInt(b))
			if err != nil {
				return false
			}
			var r big.Int
			if r.Mod(m, big.NewInt(a)).Sign() != 0 || r.Mod(m, big.NewInt(b)).Sign() != 0 {
				return false
			}
			qa := new(big.Int).Quo(m, big.NewInt(a))
			qb := new(big.Int).Quo(m, big.NewInt(b))
			d, err := GCD(qa, qb)
			return err == nil && d.Cmp(big.NewInt(1)) == 0
		},
		nonZero(),
		nonZero(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestLCMEdgeCases(t *testing.T) {
	assert := require.New(t)

	_, err := LCM(new(big.Int), big.NewInt(5))
	assert.ErrorIs(err, ErrUndefinedLCM)
	_, err = LCM(big.NewInt(5), new(big.Int))
	assert.ErrorIs(err, ErrUndefinedLCM)

	m, err := LCM(big.NewInt(4), big.NewInt(6))
	assert.NoError(err)
	assert.Equal(int64(12), m.Int64())
}

func TestBezoutProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000

	properties := gopter.NewProperties(parameters)

	properties.Property("a*x + b*y == gcd(a, b) > 0", prop.ForAll(
		func(a, b int64) bool {
			x, y, d, err := Bezout(big.NewInt(a), big.NewInt(b))
			if err != nil {
				return false
			}
			want, err := GCD(big.NewInt(a), big.NewInt(b))
			if err != nil || d.Cmp(want) != 0 {
				return false
			}
			var lhs, t1 big.Int
			lhs.Mul(big.NewInt(a), x)
			t1.Mul(big.NewInt(b), y)
			lhs.Add(&lhs, &t1)
			return lhs.Cmp(d) == 0 && d.Sign() > 0
		},
		nonZero(),
		nonZero(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestBezoutEdgeCases(t *testing.T) {
	assert := require.New(t)

	_, _, _, err := Bezout(new(big.Int), new(big.Int))
	assert.ErrorIs(err, ErrUndefinedGCD)

	x, y, d, err := Bezout(big.NewInt(7), new(big.Int))
	assert.NoError(err)
	assert.Equal(int64(1), x.Int64())
	assert.Equal(int64(0), y.Int64())
	assert.Equal(int64(7), d.Int64())

	x, y, d, err = Bezout(big.NewInt(-7), new(big.Int))
	assert.NoError(err)
	assert.Equal(int64(-1), x.Int64())
	assert.Equal(int64(0), y.Int64())
	assert.Equal(int64(7), d.Int64())

	_, y, d, err = Bezout(new(big.Int), big.NewInt(-9))
	assert.NoError(err)
	assert.Equal(int64(9), d.Int64())
	var lhs big.Int
	lhs.Mul(big.NewInt(-9), y)
	assert.Zero(lhs.Cmp(d))
}
