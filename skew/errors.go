package skew

import "errors"

var (
	// ErrDivisionByZero is returned by every remainder, quotient and gcd routine given a zero
	// divisor, and by negative powers of zero constants.
	ErrDivisionByZero = errors.New("skew: division by zero polynomial")
	// ErrNotInvertible is returned when a negative power is requested for a polynomial of
	// positive degree.
	ErrNotInvertible = errors.New("skew: polynomial is not invertible")
	// ErrNonIntegralExponent is returned when an exponent cannot be coerced to an integer.
	ErrNonIntegralExponent = errors.New("skew: non-integral exponent")
	// ErrRingMismatch is returned when operands belong to different rings.
	ErrRingMismatch = errors.New("skew: operands belong to different rings")
)
