// Package modring exposes the structure of the multiplicative group of
// integers modulo n through a lazily computed, permanently cached Ring.
//
// Every structural accessor (factorization, totient, Carmichael exponent,
// group enumeration, generator, discrete-log table, element orders) is
// computed on first demand and cached for the lifetime of the instance.
// The caches form a dependency chain
//
//	factorization -> euler/carmichael -> carmichael factorization/primes
//	  -> order_of -> generator -> cyclic realization -> discrete log
//
// and each cache is only ever populated from caches earlier in the chain.
// A single mutex guards population, so a Ring is safe for concurrent use.
package modring

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/numbertheory/numth/factorization"
	"github.com/numbertheory/numth/integer"
	"github.com/numbertheory/numth/logger"
	"github.com/numbertheory/numth/modular"
)

var (
	// ErrNotCyclic is returned by the generator-dependent accessors when the
	// multiplicative group has no generator (euler != carmichael).
	ErrNotCyclic = errors.New("multiplicative group is not cyclic")

	// ErrNotInGroup is returned when an element shares a factor with the
	// modulus and therefore has no multiplicative order.
	ErrNotInGroup = errors.New("element is not in the multiplicative group")

	// ErrNoGenerator is returned if the generator scan of a cyclic group
	// completes without a hit; with a correct factorizer this cannot happen.
	ErrNoGenerator = errors.New("no generator found")
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Factorizer is the pluggable factorization collaborator of a Ring.
type Factorizer func(*big.Int) (factorization.Factorization, error)

// Option configures a Ring at construction.
type Option func(*config) error

type config struct {
	factor Factorizer
}

// WithFactorizer replaces the default factorization backend; the supplied
// function must return the prime powers of its argument in ascending prime
// order.
func WithFactorizer(f Factorizer) Option {
	return func(c *config) error {
		if f == nil {
			return errors.New("nil factorizer")
		}
		c.factor = f
		return nil
	}
}

// Ring is the ring of integers modulo a fixed modulus, together with a cache
// of the invariants of its multiplicative group. The modulus is immutable;
// every cached field is computed once on first demand and never invalidated.
type Ring struct {
	modulus *big.Int

	factor Factorizer

	mu     sync.Mutex
	fact   factorization.Factorization
	euler  *big.Int
	lambda *big.Int
	// factorization of the Carmichael exponent
	lambdaFact factorization.Factorization
	// ascending units modulo the modulus
	group []*big.Int
	// a generator of the group, when cyclic
	generator *big.Int
	// powers g^0, g^1, ... of the generator, indexed by exponent
	cyclic []*big.Int
	// inverse of cyclic: element (decimal key) -> power index
	dlog map[string]int
	// element (decimal key) -> multiplicative order; insert-only
	orders map[string]*big.Int
}

// New constructs the ring of integers modulo modulus.
//
// Returns integer.ErrInvalidModulus for modulus < 2.
func New(modulus *big.Int, opts ...Option) (*Ring, error) {
	if modulus.Cmp(two) < 0 {
		return nil, fmt.Errorf("modulus %s: %w", modulus, integer.ErrInvalidModulus)
	}

	cfg := config{factor: factorization.Factor}
	for _, o := range opts {
		if err := o(&cfg); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}

	r := &Ring{
		modulus: new(big.Int).Set(modulus),
		factor:  cfg.factor,
		orders:  map[string]*big.Int{"1": big.NewInt(1)},
	}
	if modulus.Cmp(two) != 0 {
		// modulus-1 is its own inverse, of order 2
		last := new(big.Int).Sub(modulus, one)
		r.orders[last.String()] = big.NewInt(2)
	}
	return r, nil
}

// Modulus returns the modulus of the ring.
func (r *Ring) Modulus() *big.Int {
	return new(big.Int).Set(r.modulus)
}

// Factorization returns the factorization of the modulus.
func (r *Ring) Factorization() (factorization.Factorization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.factorizationLocked()
}

func (r *Ring) factorizationLocked() (factorization.Factorization, error) {
	if r.fact == nil {
		f, err := r.factor(r.modulus)
		if err != nil {
			return nil, fmt.Errorf("factor modulus: %w", err)
		}
		r.fact = f
	}
	return r.fact, nil
}

// Euler returns the Euler totient of the modulus: the size of the
// multiplicative group.
func (r *Ring) Euler() (*big.Int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, err := r.eulerLocked()
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(e), nil
}

func (r *Ring) eulerLocked() (*big.Int, error) {
	if r.euler == nil {
		f, err := r.factorizationLocked()
		if err != nil {
			return nil, err
		}
		r.euler = modular.EulerPhi(f)
	}
	return r.euler, nil
}

// Carmichael returns the Carmichael exponent of the modulus: the maximum
// order of any element of the multiplicative group.
func (r *Ring) Carmichael() (*big.Int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, err := r.carmichaelLocked()
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(l), nil
}

func (r *Ring) carmichaelLocked() (*big.Int, error) {
	if r.lambda == nil {
		f, err := r.factorizationLocked()
		if err != nil {
			return nil, err
		}
		r.lambda = modular.CarmichaelLambda(f)
	}
	return r.lambda, nil
}

// CarmichaelFactorization returns the factorization of the Carmichael
// exponent, used to walk the divisor lattice when computing orders.
func (r *Ring) CarmichaelFactorization() (factorization.Factorization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.carmichaelFactorizationLocked()
}

func (r *Ring) carmichaelFactorizationLocked() (factorization.Factorization, error) {
	if r.lambdaFact == nil {
		l, err := r.carmichaelLocked()
		if err != nil {
			return nil, err
		}
		if l.Cmp(one) == 0 {
			// lambda(2) == 1 factors into nothing
			r.lambdaFact = factorization.Factorization{}
			return r.lambdaFact, nil
		}
		f, err := r.factor(l)
		if err != nil {
			return nil, fmt.Errorf("factor carmichael exponent: %w", err)
		}
		r.lambdaFact = f
	}
	return r.lambdaFact, nil
}

// CarmichaelPrimes returns the prime factors of the Carmichael exponent as a
// flat multiset, each prime repeated by its multiplicity.
func (r *Ring) CarmichaelPrimes() ([]*big.Int, error) {
	f, err := r.CarmichaelFactorization()
	if err != nil {
		return nil, err
	}
	return f.Primes(), nil
}

// IsCyclic reports whether the multiplicative group is cyclic, which holds
// exactly when the totient equals the Carmichael exponent.
func (r *Ring) IsCyclic() (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.isCyclicLocked()
}

func (r *Ring) isCyclicLocked() (bool, error) {
	e, err := r.eulerLocked()
	if err != nil {
		return false, err
	}
	l, err := r.carmichaelLocked()
	if err != nil {
		return false, err
	}
	return e.Cmp(l) == 0, nil
}

// MultiplicativeGroup returns the units of the ring in ascending order. The
// returned slice is shared with the cache and must not be modified.
func (r *Ring) MultiplicativeGroup() ([]*big.Int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.groupLocked()
}

func (r *Ring) groupLocked() ([]*big.Int, error) {
	if r.group == nil {
		f, err := r.factorizationLocked()
		if err != nil {
			return nil, err
		}
		g, err := factorization.PrimeTo(f)
		if err != nil {
			return nil, err
		}
		r.group = g

		log := logger.Logger()
		log.Debug().
			Str("modulus", r.modulus.String()).
			Int("units", len(g)).
			Msg("enumerated multiplicative group")
	}
	return r.group, nil
}
