/*
Package bignum provides Int, an arbitrary-precision signed integer.

Int is a value type; value methods return new Ints and never modify their
receiver or arguments. A small set of pointer methods (AddAssign, QuoAssign,
PreInc, PostDec, ...) update an Int in place for callers that want
compound-assignment style code.

Simple example:

	a := MustIntFromString("123456789")
	b := MustIntFromString("987654321")
	fmt.Println(a.Mul(b))
	// Output: 121932631112635269

Int can be created from a variety of sources:

	IntFrom64(v int64) Int
	IntFromU64(v uint64) Int
	IntFromWord(v Word) Int
	IntFromSigned[T](v T) Int
	IntFromUnsigned[T](v T) Int
	IntFromWords(words []Word, neg bool) Int
	IntFromString(s string) (out Int, err error)
	IntFromBigInt(v *big.Int) Int
	IntFromFloat64(f float64) (out Int, inRange bool)

Division and remainder truncate toward zero, like Go's native integers, and
return ErrDivisionByZero rather than panicking:

	q, err := IntFrom64(-100).Quo(IntFrom64(7))  // -14
	r, err := IntFrom64(-100).Rem(IntFrom64(7))  // -2

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- fmt.Scanner
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- msgpack.CustomEncoder
	- msgpack.CustomDecoder

The arithmetic is deliberately simple: schoolbook multiplication and long
division. Int makes no constant-time guarantees and is not safe for
concurrent mutation through the pointer methods.
*/
package bignum
