package bignum

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1

	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64
)

// These are shared between Ints. Nothing ever writes into an Int's digits
// after construction, so sharing them is safe.
var (
	zeroInt Int
	one     = IntFromWord(1)
	two     = IntFromWord(2)
	ten     = IntFromWord(10)
)
