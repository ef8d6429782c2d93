package modring

import (
	"math/big"

	"github.com/numbertheory/numth/integer"
	"github.com/numbertheory/numth/modular"
)

// Elem casts a number to its canonical residue in [0, modulus).
func (r *Ring) Elem(number *big.Int) *big.Int {
	return new(big.Int).Mod(number, r.modulus)
}

// Add sums elements in the ring, reducing after every addition.
func (r *Ring) Add(elements ...*big.Int) *big.Int {
	acc := new(big.Int)
	for _, e := range elements {
		acc.Add(acc, e).Mod(acc, r.modulus)
	}
	return acc
}

// Mult multiplies elements in the ring, reducing after every
// multiplication so operands never exceed modulus^2.
func (r *Ring) Mult(elements ...*big.Int) *big.Int {
	acc := big.NewInt(1)
	for _, e := range elements {
		acc.Mul(acc, e).Mod(acc, r.modulus)
	}
	return acc
}

// PowerOf raises element to exponent in the ring. Negative exponents
// require element to be a unit.
func (r *Ring) PowerOf(element, exponent *big.Int) (*big.Int, error) {
	return integer.ModPower(element, exponent, r.modulus)
}

// InverseOf computes the multiplicative inverse of element.
//
// Returns integer.ErrNotInvertible when element is not a unit.
func (r *Ring) InverseOf(element *big.Int) (*big.Int, error) {
	return integer.ModInverse(element, r.modulus)
}

// SqrtOf computes the square roots of element. Only meaningful when the
// modulus is prime; the primality of the modulus is not verified.
func (r *Ring) SqrtOf(element *big.Int) ([]*big.Int, error) {
	return modular.ModSqrt(element, r.modulus)
}
