package bignum

import "fmt"

const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// Text returns the string representation of i in the given base, which must
// be between 2 and 36 inclusive. Lowercase letters are used for digits >= 10.
// A '-' prefix is added only for negative values.
func (i Int) Text(base int) string {
	if base < 2 || base > len(digitChars) {
		panic(fmt.Errorf("bignum: invalid base %d", base))
	}
	digits := convertToBase(i.mag(), Word(base))

	buf := make([]byte, 0, len(digits)+1)
	if i.neg {
		buf = append(buf, '-')
	}
	for idx := len(digits) - 1; idx >= 0; idx-- {
		buf = append(buf, digitChars[digits[idx]])
	}
	return string(buf)
}

// Digits returns the magnitude of i in the given base, least-significant
// digit first. base must be at least 2.
func (i Int) Digits(base Word) []Word {
	if base < 2 {
		panic(fmt.Errorf("bignum: invalid base %d", base))
	}
	return convertToBase(i.mag(), base)
}
