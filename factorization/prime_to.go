package factorization

import (
	"fmt"
	"math/big"

	"github.com/bits-and-blooms/bitset"
)

// primeToLimit bounds the modulus for which the coprime residues can be
// materialized; past this the result slice alone would exhaust memory.
const primeToLimit = 1 << 32

// PrimeTo enumerates, in ascending order, the residues in [1, n) coprime to
// n, where n is the product of f. These are the units of the ring of
// integers modulo n.
//
// The residues are found by striking the multiples of each prime factor of
// n from a bitset of [0, n).
//
// Returns ErrGroupTooLarge when n is too large to enumerate.
func PrimeTo(f Factorization) ([]*big.Int, error) {
	n := f.Product()
	if !n.IsUint64() || n.Uint64() >= primeToLimit {
		return nil, fmt.Errorf("%s: %w", n, ErrGroupTooLarge)
	}
	nn := n.Uint64()
	if nn < 2 {
		return nil, nil
	}

	struck := bitset.New(uint(nn))
	for _, e := range f {
		p := e.Prime.Uint64()
		for m := p; m < nn; m += p {
			struck.Set(uint(m))
		}
	}

	out := make([]*big.Int, 0, nn/2)
	for k := uint64(1); k < nn; k++ {
		if !struck.Test(uint(k)) {
			out = append(out, new(big.Int).SetUint64(k))
		}
	}
	return out, nil
}
