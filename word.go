package bignum

import (
	"math/bits"
)

// Word is a single digit of an Int's magnitude. Digits are stored
// least-significant first in base 1<<32.
type Word uint32

const (
	wordBits = 32
	wordMask = 1<<wordBits - 1
)

// nat is a magnitude: a little-endian slice of Words. A normalized nat has
// no most-significant zero words, except that zero is the single word {0}.
//
// Functions operating on nats never mutate their inputs; results are always
// freshly allocated so that no two Ints share backing storage.
type nat []Word

var natZero = nat{0}

func natFromU64(v uint64) nat {
	if v>>wordBits == 0 {
		return nat{Word(v)}
	}
	return nat{Word(v & wordMask), Word(v >> wordBits)}
}

// normalize trims most-significant zero words down to a minimum length of 1.
func normalize(z nat) nat {
	n := len(z)
	for n > 1 && z[n-1] == 0 {
		n--
	}
	if n == 0 {
		return append(z[:0], 0)
	}
	return z[:n]
}

func (z nat) isZero() bool {
	return len(z) == 0 || (len(z) == 1 && z[0] == 0)
}

func (z nat) clone() nat {
	out := make(nat, len(z))
	copy(out, z)
	return out
}

// cmpNat compares two normalized magnitudes.
func cmpNat(x, y nat) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// addWW returns x + y + c as a sum word and a carry-out word.
func addWW(x, y, c Word) (z1, z0 Word) {
	s, carry := bits.Add32(uint32(x), uint32(y), uint32(c))
	return Word(carry), Word(s)
}

// subWW returns x - y - b as a difference word and a borrow-out word.
func subWW(x, y, b Word) (z1, z0 Word) {
	d, borrow := bits.Sub32(uint32(x), uint32(y), uint32(b))
	return Word(borrow), Word(d)
}

// mulAddWWW returns x*y + c + a as a double-width result. The result always
// fits: (B-1)*(B-1) + 2*(B-1) == B*B - 1.
func mulAddWWW(x, y, c, a Word) (z1, z0 Word) {
	t := uint64(x)*uint64(y) + uint64(c) + uint64(a)
	return Word(t >> wordBits), Word(t & wordMask)
}

// addNat computes x + y in a single least-significant-first pass.
func addNat(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x), len(x)+1)
	var c Word
	for i := range x {
		var yi Word
		if i < len(y) {
			yi = y[i]
		}
		c, z[i] = addWW(x[i], yi, c)
	}
	if c != 0 {
		z = append(z, c)
	}
	return normalize(z)
}

// subNat computes x - y. It requires x >= y.
func subNat(x, y nat) nat {
	z := make(nat, len(x))
	var b Word
	for i := range x {
		var yi Word
		if i < len(y) {
			yi = y[i]
		}
		b, z[i] = subWW(x[i], yi, b)
	}
	if b != 0 {
		panic("bignum: subNat underflow")
	}
	return normalize(z)
}

// mulNat is the schoolbook O(n*m) product. Every carry left over after the
// inner loop lands in the still-empty word at i+len(y).
func mulNat(x, y nat) nat {
	if x.isZero() || y.isZero() {
		return nat{0}
	}
	z := make(nat, len(x)+len(y))
	for i, xi := range x {
		var c Word
		for j, yj := range y {
			c, z[i+j] = mulAddWWW(xi, yj, c, z[i+j])
		}
		z[i+len(y)] = c
	}
	return normalize(z)
}

// shlNat shifts x left by s bits, where s < wordBits.
func shlNat(x nat, s uint) nat {
	if s == 0 {
		return x.clone()
	}
	z := make(nat, len(x)+1)
	var c Word
	for i, xi := range x {
		z[i] = xi<<s | c
		c = xi >> (wordBits - s)
	}
	z[len(x)] = c
	return normalize(z)
}

// divWordNat divides x by a single non-zero word, returning the quotient and
// the remainder.
func divWordNat(x nat, d Word) (q nat, r Word) {
	q = make(nat, len(x))
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		cur := rem<<wordBits | uint64(x[i])
		q[i] = Word(cur / uint64(d))
		rem = cur % uint64(d)
	}
	return normalize(q), Word(rem)
}

// quoRemNat is long division: dividend words are brought down one at a time,
// most-significant first, onto a running remainder, and each quotient digit
// is found by subtracting the divisor from the remainder.
//
// Subtracting the bare divisor up to B-1 times per digit is too slow with a
// 32-bit base, so the divisor is subtracted in binary-weighted multiples
// (v<<31, v<<30, ..., v) instead: at most 32 subtractions per digit.
//
// v must not be zero. The quotient truncates toward zero.
func quoRemNat(u, v nat) (q, r nat) {
	if cmpNat(u, v) < 0 {
		return nat{0}, u.clone()
	}
	if len(v) == 1 {
		q, rw := divWordNat(u, v[0])
		return q, nat{rw}
	}

	var shifted [wordBits]nat
	for s := range shifted {
		shifted[s] = shlNat(v, uint(s))
	}

	q = make(nat, len(u))
	r = nat{0}
	for i := len(u) - 1; i >= 0; i-- {
		// Prepend the next dividend digit to the running remainder:
		next := make(nat, len(r)+1)
		next[0] = u[i]
		copy(next[1:], r)
		r = normalize(next)

		var digit Word
		for s := wordBits - 1; s >= 0; s-- {
			if cmpNat(r, shifted[s]) >= 0 {
				r = subNat(r, shifted[s])
				digit |= 1 << uint(s)
			}
		}
		q[i] = digit
	}
	return normalize(q), r
}

// convertToBase returns the digits of x in the given base, least-significant
// first. Each returned digit is strictly less than base. base must be >= 2.
func convertToBase(x nat, base Word) []Word {
	var digits []Word
	n := x
	for cmpNat(n, nat{base}) >= 0 {
		var rem Word
		n, rem = divWordNat(n, base)
		digits = append(digits, rem)
	}
	return append(digits, n[0])
}

func bitLenNat(x nat) int {
	top := len(x) - 1
	return top*wordBits + bits.Len32(uint32(x[top]))
}
