package bignum

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"fortio.org/safecast"
	"golang.org/x/exp/constraints"
)

// Int is an arbitrary-precision signed integer.
//
// The zero value is ready to use and represents 0. Value methods never modify
// the receiver or the argument and always return an Int with its own digit
// storage; the pointer-receiver methods (AddAssign, PreInc, ...) replace the
// receiver's contents in place.
type Int struct {
	words nat
	neg   bool
}

// makeInt builds an Int from a magnitude and a sign, normalizing the
// magnitude and clearing the sign on zero. It takes ownership of words.
func makeInt(words nat, neg bool) Int {
	words = normalize(words)
	if words.isZero() {
		neg = false
	}
	return Int{words: words, neg: neg}
}

// mag returns the receiver's magnitude. The zero value's nil slice is
// reported as natZero, which must never be written to.
func (i Int) mag() nat {
	if len(i.words) == 0 {
		return natZero
	}
	return i.words
}

// IntFromWords creates an Int from a little-endian sequence of base 1<<32
// digits and a sign. words is copied.
func IntFromWords(words []Word, neg bool) Int {
	return makeInt(nat(words).clone(), neg)
}

func IntFrom64(v int64) Int {
	mag := uint64(v)
	if v < 0 {
		mag = -mag
	}
	return makeInt(natFromU64(mag), v < 0)
}

func IntFrom32(v int32) Int   { return IntFrom64(int64(v)) }
func IntFrom16(v int16) Int   { return IntFrom64(int64(v)) }
func IntFrom8(v int8) Int     { return IntFrom64(int64(v)) }
func IntFromInt(v int) Int    { return IntFrom64(int64(v)) }
func IntFromU64(v uint64) Int { return makeInt(natFromU64(v), false) }
func IntFromWord(v Word) Int  { return Int{words: nat{v}} }

// IntFromSigned creates an Int from any signed native integer.
func IntFromSigned[T constraints.Signed](v T) Int { return IntFrom64(int64(v)) }

// IntFromUnsigned creates an Int from any unsigned native integer.
func IntFromUnsigned[T constraints.Unsigned](v T) Int { return IntFromU64(uint64(v)) }

// IntFromString parses an optionally signed decimal literal. The accepted
// grammar is an optional '+' or '-' followed by one or more ASCII digits;
// whitespace, separators and base prefixes are rejected with ErrSyntax.
//
// "-0" parses to 0.
func IntFromString(s string) (out Int, err error) {
	digits := s
	neg := false
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return out, fmt.Errorf("bignum: int string %q: %w", s, ErrSyntax)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return out, fmt.Errorf("bignum: int string %q: %w", s, ErrSyntax)
		}
	}

	// Digits are folded in most-significant first through the arithmetic
	// core itself: out = out*10 + digit.
	for i := 0; i < len(digits); i++ {
		out = out.Mul(ten).Add(IntFromWord(Word(digits[i] - '0')))
	}
	return makeInt(out.words, neg), nil
}

// MustIntFromString is IntFromString for literals known to be valid; it
// panics on malformed input.
func MustIntFromString(s string) Int {
	out, err := IntFromString(s)
	if err != nil {
		panic(err)
	}
	return out
}

// IntFromBigInt creates an Int from a big.Int.
func IntFromBigInt(v *big.Int) Int {
	bts := v.Bytes() // big-endian magnitude
	words := make(nat, (len(bts)+3)/4)
	for i := range words {
		end := len(bts) - i*4
		start := end - 4
		if start < 0 {
			var pad [4]byte
			copy(pad[4-end:], bts[:end])
			words[i] = Word(binary.BigEndian.Uint32(pad[:]))
		} else {
			words[i] = Word(binary.BigEndian.Uint32(bts[start:end]))
		}
	}
	return makeInt(words, v.Sign() < 0)
}

// RandInt generates a non-negative random Int of up to n words from an
// external source.
func RandInt(source RandSource, n int) Int {
	words := make(nat, n)
	for i := 0; i < n; i += 2 {
		v := source.Uint64()
		words[i] = Word(v & wordMask)
		if i+1 < n {
			words[i+1] = Word(v >> wordBits)
		}
	}
	return makeInt(words, false)
}

func (i Int) IsZero() bool { return i.mag().isZero() }

// Bool reports whether i is non-zero.
func (i Int) Bool() bool { return !i.IsZero() }

func (i Int) Sign() int {
	if i.IsZero() {
		return 0
	} else if i.neg {
		return -1
	}
	return 1
}

// Words returns a copy of the magnitude's base 1<<32 digits, least-significant
// first. Zero is returned as a single zero word.
func (i Int) Words() []Word {
	return i.mag().clone()
}

// BitLen returns the length of the absolute value of i in bits. The bit
// length of 0 is 0.
func (i Int) BitLen() int { return bitLenNat(i.mag()) }

// AsUint64 folds the low digits of the magnitude into a uint64, ignoring the
// sign. Digits beyond the second contribute nothing (B^n wraps to zero), so
// values outside the range silently wrap. See IsUint64.
func (i Int) AsUint64() uint64 {
	var out uint64
	for idx, w := range i.mag() {
		if idx >= 2 {
			break
		}
		out += uint64(w) << (uint(idx) * wordBits)
	}
	return out
}

// AsInt64 truncates the Int to fit in an int64. Values outside the range
// will over/underflow. See IsInt64() if you want to check before you convert.
func (i Int) AsInt64() int64 {
	out := int64(i.AsUint64())
	if i.neg {
		out = -out
	}
	return out
}

func (i Int) AsInt() int { return int(i.AsInt64()) }

// IsInt64 reports whether i can be represented as an int64.
func (i Int) IsInt64() bool {
	m := i.mag()
	if len(m) > 2 {
		return false
	}
	u := i.AsUint64()
	if i.neg {
		return u <= 1<<63
	}
	return u <= maxInt64
}

// IsUint64 reports whether i can be represented as a uint64.
func (i Int) IsUint64() bool {
	return !i.neg && len(i.mag()) <= 2
}

// IntAs converts i to a native integer type, returning ErrRange if it does
// not fit.
func IntAs[T constraints.Integer](i Int) (out T, err error) {
	switch {
	case i.IsInt64():
		out, err = safecast.Conv[T](i.AsInt64())
	case i.IsUint64():
		out, err = safecast.Conv[T](i.AsUint64())
	default:
		err = ErrRange
	}
	if err != nil {
		return 0, fmt.Errorf("bignum: %s as %T: %w", i, out, ErrRange)
	}
	return out, nil
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (i Int) IntoBigInt(b *big.Int) {
	m := i.mag()
	bts := make([]byte, len(m)*4)
	for idx, w := range m {
		end := len(bts) - idx*4
		binary.BigEndian.PutUint32(bts[end-4:end], uint32(w))
	}
	b.SetBytes(bts)
	if i.neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (i Int) AsBigInt() *big.Int {
	var b big.Int
	i.IntoBigInt(&b)
	return &b
}

func (i Int) String() string { return i.Text(10) }

// Format implements fmt.Formatter. Supported verbs are %d, %s and %v
// (decimal), %b, %o, %O, %x and %X. The '#' flag adds a base prefix, '+'
// forces a sign, and a width pads with spaces, or zeros if '0' is set.
func (i Int) Format(s fmt.State, c rune) {
	var base int
	var prefix string
	switch c {
	case 'd', 's', 'v':
		base = 10
	case 'b':
		base, prefix = 2, "0b"
	case 'o':
		base, prefix = 8, "0"
	case 'O':
		base, prefix = 8, "0o"
	case 'x':
		base, prefix = 16, "0x"
	case 'X':
		base, prefix = 16, "0X"
	default:
		fmt.Fprintf(s, "%%!%c(bignum.Int=%s)", c, i.String())
		return
	}

	digits := i.Abs().Text(base)
	if c == 'X' {
		digits = strings.ToUpper(digits)
	}

	var sign string
	if i.neg {
		sign = "-"
	} else if s.Flag('+') {
		sign = "+"
	} else if s.Flag(' ') {
		sign = " "
	}
	if !s.Flag('#') && c != 'O' {
		prefix = ""
	}

	body := digits
	head := sign + prefix
	if width, ok := s.Width(); ok && width > len(head)+len(body) {
		pad := width - len(head) - len(body)
		switch {
		case s.Flag('-'):
			body += strings.Repeat(" ", pad)
		case s.Flag('0'):
			body = strings.Repeat("0", pad) + body
		default:
			head = strings.Repeat(" ", pad) + head
		}
	}
	fmt.Fprint(s, head+body)
}

// Scan implements fmt.Scanner: it reads one whitespace-delimited token and
// parses it as a decimal literal.
func (z *Int) Scan(s fmt.ScanState, ch rune) error {
	switch ch {
	case 'd', 's', 'v':
	default:
		return fmt.Errorf("bignum: invalid verb %%%c for Int.Scan", ch)
	}
	s.SkipSpace()
	tok, err := s.Token(true, func(r rune) bool { return !unicode.IsSpace(r) })
	if err != nil {
		return err
	}
	v, err := IntFromString(string(tok))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

func (i Int) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (z *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (z *Int) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("bignum: int invalid JSON %q: %w", string(bts), ErrSyntax)
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*z = v
	return nil
}
