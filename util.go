package bignum

type RandSource interface {
	Uint64() uint64
}

// DifferenceInt returns |a - b|.
func DifferenceInt(a, b Int) Int {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func LargerInt(a, b Int) Int {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerInt(a, b Int) Int {
	if b.LessThan(a) {
		return b
	}
	return a
}
