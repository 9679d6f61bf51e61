package bignum

import "fmt"

// Pow returns i**n. i.Pow(0) is 1 for every i, including 0. Negative
// exponents return ErrNegativeExponent.
func (i Int) Pow(n int64) (Int, error) {
	if n < 0 {
		return zeroInt, fmt.Errorf("bignum: %s**%d: %w", i, n, ErrNegativeExponent)
	}
	return i.PowUint(uint64(n)), nil
}

// PowUint returns i**n by repeated squaring.
func (i Int) PowUint(n uint64) Int {
	acc := one
	base := i
	for n > 0 {
		if n&1 == 1 {
			acc = acc.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	return acc
}
