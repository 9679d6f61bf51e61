package bignum

import "errors"

var (
	// ErrDivisionByZero is returned by Quo, Rem and friends when the divisor
	// is zero. The receiver is never modified when it is returned.
	ErrDivisionByZero = errors.New("bignum: division by zero")

	// ErrSyntax is wrapped by every parse failure: empty input, stray
	// characters, or a sign with no digits after it.
	ErrSyntax = errors.New("bignum: invalid syntax")

	// ErrNegativeExponent is returned by Pow for exponents below zero.
	ErrNegativeExponent = errors.New("bignum: negative exponent")

	// ErrRange is returned by checked conversions when the value does not fit
	// in the target type.
	ErrRange = errors.New("bignum: value out of range")
)
