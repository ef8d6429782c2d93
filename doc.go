// Package numth provides exact number-theoretic computations over
// arbitrary-precision integers and a stateful view of the multiplicative
// group of integers modulo n.
//
// The building blocks live in their own packages:
//   - integer: division with remainder, gcd/lcm/Bezout, modular
//     exponentiation and inversion, p-adic valuations, the Jacobi symbol
//   - factorization: integer factorization and coprime-residue enumeration
//   - modular: Euler's totient, the Carmichael function, modular square roots
//   - modring: the lazily computed, cached ring structure engine
package numth

import "github.com/blang/semver/v4"

// Version of the numth library
var Version = semver.MustParse("0.1.0")
