package bignum

// Ordered is implemented by types that provide equality and a strict
// less-than. The remaining comparisons are derived from these two by the
// functions below, once, for every implementing type.
type Ordered[T any] interface {
	Equal(T) bool
	LessThan(T) bool
}

func NotEqual[T Ordered[T]](a, b T) bool       { return !a.Equal(b) }
func LessOrEqual[T Ordered[T]](a, b T) bool    { return a.Equal(b) || a.LessThan(b) }
func Greater[T Ordered[T]](a, b T) bool        { return !LessOrEqual(a, b) }
func GreaterOrEqual[T Ordered[T]](a, b T) bool { return !a.LessThan(b) }

var _ Ordered[Int] = Int{}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
func (i Int) Cmp(n Int) int {
	if i.Equal(n) {
		return 0
	} else if i.LessThan(n) {
		return -1
	}
	return 1
}

// Equal reports whether i and n have the same sign and the same normalized
// digits.
func (i Int) Equal(n Int) bool {
	return i.neg == n.neg && cmpNat(i.mag(), n.mag()) == 0
}

// LessThan orders any negative value below any non-negative one. Two negative
// values are ordered by comparing their negations the other way round.
func (i Int) LessThan(n Int) bool {
	if i.neg {
		if n.neg {
			return n.Neg().LessThan(i.Neg())
		}
		return true
	}
	if n.neg {
		return false
	}
	return cmpNat(i.mag(), n.mag()) < 0
}

func (i Int) NotEqual(n Int) bool         { return NotEqual(i, n) }
func (i Int) LessOrEqualTo(n Int) bool    { return LessOrEqual(i, n) }
func (i Int) GreaterThan(n Int) bool      { return Greater(i, n) }
func (i Int) GreaterOrEqualTo(n Int) bool { return GreaterOrEqual(i, n) }
