package modring

import (
	"fmt"
	"math/big"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/numbertheory/numth/debug"
	"github.com/numbertheory/numth/integer"
	"github.com/numbertheory/numth/logger"
)

// Generator returns a generator of the multiplicative group: the smallest
// unit whose order equals the totient. Defined only for cyclic groups.
//
// Returns ErrNotCyclic when euler != carmichael.
func (r *Ring) Generator() (*big.Int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, err := r.generatorLocked()
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(g), nil
}

func (r *Ring) generatorLocked() (*big.Int, error) {
	if r.generator != nil {
		return r.generator, nil
	}

	cyclic, err := r.isCyclicLocked()
	if err != nil {
		return nil, err
	}
	if !cyclic {
		return nil, fmt.Errorf("modulus %s: %w", r.modulus, ErrNotCyclic)
	}

	group, err := r.groupLocked()
	if err != nil {
		return nil, err
	}
	euler, err := r.eulerLocked()
	if err != nil {
		return nil, err
	}

	for _, x := range group {
		o, err := r.orderOfLocked(x)
		if err != nil {
			return nil, err
		}
		if o.Cmp(euler) == 0 {
			r.generator = x

			log := logger.Logger()
			log.Debug().
				Str("modulus", r.modulus.String()).
				Str("generator", x.String()).
				Msg("found generator")
			return r.generator, nil
		}
	}

	// unreachable when the factorizer and group enumeration agree
	return nil, fmt.Errorf("modulus %s: %w", r.modulus, ErrNoGenerator)
}

// AsCyclicGroup realizes the multiplicative group as the powers of a
// generator: element i of the result is g^i. Realizing the group also
// records the generator's order. The returned slice is shared with the
// cache and must not be modified.
//
// Returns ErrNotCyclic when the group has no generator.
func (r *Ring) AsCyclicGroup() ([]*big.Int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.realizeLocked(); err != nil {
		return nil, err
	}
	return r.cyclic, nil
}

func (r *Ring) realizeLocked() error {
	if r.cyclic != nil {
		return nil
	}

	g, err := r.generatorLocked()
	if err != nil {
		return err
	}
	sub, err := r.cyclicSubgroupLocked(g)
	if err != nil {
		return err
	}

	dlog := make(map[string]int, len(sub))
	for i, x := range sub {
		dlog[x.String()] = i
	}
	debug.Assert(len(dlog) == len(sub), "cyclic realization must be injective")
	r.cyclic = sub
	r.dlog = dlog
	return nil
}

// DiscreteLog returns the power index of element with respect to the
// realized generator: the i with g^i == element.
//
// Returns ErrNotCyclic when no generator exists and ErrNotInGroup when
// element is not a unit.
func (r *Ring) DiscreteLog(element *big.Int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.realizeLocked(); err != nil {
		return 0, err
	}

	x := new(big.Int).Mod(element, r.modulus)
	idx, ok := r.dlog[x.String()]
	if !ok {
		return 0, fmt.Errorf("%s modulo %s: %w", element, r.modulus, ErrNotInGroup)
	}
	return idx, nil
}

// CyclicSubgroupFrom computes the cyclic subgroup generated by element: its
// powers element^0 == 1, element^1, ... up to the first return to 1. As a
// side effect the element's order is recorded if not already known.
//
// Returns ErrNotInGroup when element is not a unit, since its powers would
// never return to 1.
func (r *Ring) CyclicSubgroupFrom(element *big.Int) ([]*big.Int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cyclicSubgroupLocked(element)
}

func (r *Ring) cyclicSubgroupLocked(element *big.Int) ([]*big.Int, error) {
	x := new(big.Int).Mod(element, r.modulus)
	d, err := integer.GCD(x, r.modulus)
	if err != nil {
		return nil, err
	}
	if d.Cmp(one) != 0 {
		return nil, fmt.Errorf("%s modulo %s: %w", element, r.modulus, ErrNotInGroup)
	}

	sub := []*big.Int{big.NewInt(1)}
	cur := new(big.Int).Set(x)
	for cur.Cmp(one) != 0 {
		sub = append(sub, new(big.Int).Set(cur))
		cur.Mul(cur, x).Mod(cur, r.modulus)
	}

	key := x.String()
	if _, ok := r.orders[key]; !ok {
		r.orders[key] = big.NewInt(int64(len(sub)))
	}
	return sub, nil
}

// OrderOf computes the multiplicative order of element: the least positive
// e with element^e == 1. Results are cached insert-only; a cached entry is
// never overwritten.
//
// When a discrete-log table has been realized the order is derived through
// the isomorphism with the additive group modulo the totient:
// order == euler / gcd(dlog(element), euler). Otherwise the divisors of the
// Carmichael exponent are searched breadth-first along its prime multiset,
// so the first exponent reaching 1 is the minimal one.
//
// Returns ErrNotInGroup when element is not a unit.
func (r *Ring) OrderOf(element *big.Int) (*big.Int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, err := r.orderOfLocked(element)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(o), nil
}

func (r *Ring) orderOfLocked(element *big.Int) (*big.Int, error) {
	x := new(big.Int).Mod(element, r.modulus)
	key := x.String()
	if o, ok := r.orders[key]; ok {
		return o, nil
	}

	d, err := integer.GCD(x, r.modulus)
	if err != nil {
		return nil, err
	}
	if d.Cmp(one) != 0 {
		return nil, fmt.Errorf("%s modulo %s: %w", element, r.modulus, ErrNotInGroup)
	}

	if r.dlog != nil {
		idx, ok := r.dlog[key]
		if !ok {
			return nil, fmt.Errorf("%s modulo %s: %w", element, r.modulus, ErrNotInGroup)
		}
		euler, err := r.eulerLocked()
		if err != nil {
			return nil, err
		}
		g, err := integer.GCD(big.NewInt(int64(idx)), euler)
		if err != nil {
			return nil, err
		}
		order := new(big.Int).Quo(euler, g)
		r.orders[key] = order
		return order, nil
	}

	return r.orderBySearchLocked(x, key)
}

// orderBySearchLocked walks the divisor lattice of the Carmichael exponent
// breadth-first: known powers of x, keyed by exponent, are extended by each
// prime of the Carmichael multiset in turn. Any exponent reaching 1 in a
// round is a multiple of the order, and the order itself is produced no
// later than its multiples, so the minimal hit of the first successful
// round is the order.
func (r *Ring) orderBySearchLocked(x *big.Int, key string) (*big.Int, error) {
	lambdaFact, err := r.carmichaelFactorizationLocked()
	if err != nil {
		return nil, err
	}

	type expPower struct {
		exp *big.Int
		pow *big.Int
	}
	powers := []expPower{{big.NewInt(1), x}}
	seen := map[string]bool{"1": true}

	for _, p := range lambdaFact.Primes() {
		var fresh []expPower
		var best *big.Int
		for _, ep := range powers {
			exp := new(big.Int).Mul(ep.exp, p)
			k := exp.String()
			if seen[k] {
				continue
			}
			seen[k] = true

			pow, err := integer.ModPower(ep.pow, p, r.modulus)
			if err != nil {
				return nil, err
			}
			if pow.Cmp(one) == 0 && (best == nil || exp.Cmp(best) < 0) {
				best = exp
			}
			fresh = append(fresh, expPower{exp, pow})
		}

		if best != nil {
			r.orders[key] = best
			return best, nil
		}
		powers = append(powers, fresh...)
	}

	// x^carmichael was reached without hitting 1; the factorizer must have
	// misfactored the modulus or the Carmichael exponent
	return nil, fmt.Errorf("%s modulo %s: %w", x, r.modulus, ErrNotInGroup)
}

// AllOrders computes the order of every unit and returns the completed
// table, keyed by the decimal representation of each unit. For cyclic
// groups the generator is realized first and the remaining orders are
// derived from the discrete-log table in parallel; otherwise each unit goes
// through the divisor search.
func (r *Ring) AllOrders() (map[string]*big.Int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	group, err := r.groupLocked()
	if err != nil {
		return nil, err
	}

	if len(r.orders) < len(group) {
		cyclic, err := r.isCyclicLocked()
		if err != nil {
			return nil, err
		}
		if cyclic {
			if err := r.allOrdersCyclicLocked(group); err != nil {
				return nil, err
			}
		} else {
			for _, x := range group {
				if _, err := r.orderOfLocked(x); err != nil {
					return nil, err
				}
			}
		}

		log := logger.Logger()
		log.Debug().
			Str("modulus", r.modulus.String()).
			Int("orders", len(r.orders)).
			Msg("completed order table")
	}

	out := make(map[string]*big.Int, len(r.orders))
	for k, v := range r.orders {
		out[k] = new(big.Int).Set(v)
	}
	return out, nil
}

// allOrdersCyclicLocked fills the order table through the discrete-log
// shortcut. The derivations only read the realized table and the totient,
// so they fan out across cores; the merge back into the cache stays under
// the ring lock held by the caller.
func (r *Ring) allOrdersCyclicLocked(group []*big.Int) error {
	if err := r.realizeLocked(); err != nil {
		return err
	}
	euler, err := r.eulerLocked()
	if err != nil {
		return err
	}

	results := make([]*big.Int, len(group))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, x := range group {
		if _, ok := r.orders[x.String()]; ok {
			continue
		}
		i, x := i, x
		g.Go(func() error {
			idx, ok := r.dlog[x.String()]
			if !ok {
				return fmt.Errorf("%s modulo %s: %w", x, r.modulus, ErrNotInGroup)
			}
			d, err := integer.GCD(big.NewInt(int64(idx)), euler)
			if err != nil {
				return err
			}
			results[i] = new(big.Int).Quo(euler, d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, x := range group {
		if results[i] == nil {
			continue
		}
		key := x.String()
		if _, ok := r.orders[key]; !ok {
			r.orders[key] = results[i]
		}
	}
	return nil
}

// AllGenerators returns the units of order euler in ascending order. The
// result is empty for non-cyclic groups.
func (r *Ring) AllGenerators() ([]*big.Int, error) {
	if _, err := r.AllOrders(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	euler, err := r.eulerLocked()
	if err != nil {
		return nil, err
	}

	var out []*big.Int
	for _, x := range r.group {
		if o, ok := r.orders[x.String()]; ok && o.Cmp(euler) == 0 {
			out = append(out, new(big.Int).Set(x))
		}
	}
	return out, nil
}
