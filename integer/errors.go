package integer

import "errors"

var (
	// ErrDivisionByZero is returned when the denominator of a division is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUndefinedGCD is returned by GCD and Bezout when both arguments are zero.
	ErrUndefinedGCD = errors.New("gcd(0, 0) is undefined")

	// ErrUndefinedLCM is returned by LCM when either argument is zero.
	ErrUndefinedLCM = errors.New("lcm is undefined for a zero argument")

	// ErrNotInvertible is returned by ModInverse when the element shares a
	// factor with the modulus.
	ErrNotInvertible = errors.New("element is not invertible")

	// ErrInvalidModulus is returned when a modulus smaller than 2 is supplied.
	ErrInvalidModulus = errors.New("modulus must be at least 2")

	// ErrInvalidBase is returned by PAdic when the base is smaller than 2.
	ErrInvalidBase = errors.New("p-adic base must be at least 2")

	// ErrPAdicOfZero is returned by PAdic for a zero argument; zero is evenly
	// divisible by every base, so its valuation is unbounded.
	ErrPAdicOfZero = errors.New("p-adic valuation of zero is undefined")

	// ErrUndefinedJacobiSymbol is returned by Jacobi when the second argument
	// is even.
	ErrUndefinedJacobiSymbol = errors.New("jacobi symbol is undefined for an even second argument")
)
