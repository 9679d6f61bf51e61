package bignum

import (
	"fmt"
	"math/big"
	"testing"
)

var (
	BenchBigIntResult *big.Int
	BenchBoolResult   bool
	BenchErrResult    error
	BenchFloatResult  float64
	BenchIntResult    Int
	BenchStringResult string
)

var benchSizes = []int{1, 4, 16, 64}

// benchOperands returns a pair of Ints of roughly the given size in words.
func benchOperands(words int) (Int, Int) {
	a := IntFromBigInt(new(big.Int).Lsh(big.NewInt(0x7fedcba9), uint(words*wordBits-31)))
	b := IntFromBigInt(new(big.Int).Lsh(big.NewInt(0x12345679), uint(words*wordBits/2)))
	return a.Add(i64(12345)), b.Add(i64(987))
}

func BenchmarkIntAdd(b *testing.B) {
	for _, sz := range benchSizes {
		x, y := benchOperands(sz)
		b.Run(fmt.Sprintf("%dw", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchIntResult = x.Add(y)
			}
		})
	}
}

func BenchmarkIntSub(b *testing.B) {
	for _, sz := range benchSizes {
		x, y := benchOperands(sz)
		b.Run(fmt.Sprintf("%dw", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchIntResult = y.Sub(x)
			}
		})
	}
}

func BenchmarkIntMul(b *testing.B) {
	for _, sz := range benchSizes {
		x, y := benchOperands(sz)
		b.Run(fmt.Sprintf("%dw", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchIntResult = x.Mul(y)
			}
		})
	}
}

func BenchmarkIntQuo(b *testing.B) {
	for _, sz := range benchSizes {
		x, y := benchOperands(sz)
		b.Run(fmt.Sprintf("%dw", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchIntResult, BenchErrResult = x.Quo(y)
			}
		})
	}
}

func BenchmarkIntQuoWord(b *testing.B) {
	by := i64(121525124)
	for _, sz := range benchSizes {
		x, _ := benchOperands(sz)
		b.Run(fmt.Sprintf("%dw", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchIntResult, BenchErrResult = x.Quo(by)
			}
		})
	}
}

func BenchmarkIntLessThan(b *testing.B) {
	for _, iv := range []struct {
		a, b Int
	}{
		{i64(1), i64(1)},
		{i64(2), i64(1)},
		{i64(-1), i64(-2)},
		{ints("123456789012345678901234567890"), ints("123456789012345678901234567891")},
	} {
		b.Run(fmt.Sprintf("%s<%s", iv.a, iv.b), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchBoolResult = iv.a.LessThan(iv.b)
			}
		})
	}
}

func BenchmarkIntPow(b *testing.B) {
	for _, n := range []int64{10, 100, 1000} {
		b.Run(fmt.Sprintf("3**%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchIntResult, BenchErrResult = i64(3).Pow(n)
			}
		})
	}
}

func BenchmarkIntString(b *testing.B) {
	for _, sz := range benchSizes {
		x, _ := benchOperands(sz)
		b.Run(fmt.Sprintf("%dw", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = x.String()
			}
		})
	}
}

func BenchmarkIntFromString(b *testing.B) {
	for _, sz := range benchSizes {
		x, _ := benchOperands(sz)
		s := x.String()
		b.Run(fmt.Sprintf("%dw", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchIntResult, BenchErrResult = IntFromString(s)
			}
		})
	}
}

func BenchmarkIntAsBigInt(b *testing.B) {
	x, _ := benchOperands(4)
	for i := 0; i < b.N; i++ {
		BenchBigIntResult = x.AsBigInt()
	}
}

func BenchmarkIntAsFloat64(b *testing.B) {
	x, _ := benchOperands(4)
	for i := 0; i < b.N; i++ {
		BenchFloatResult = x.AsFloat64()
	}
}

func BenchmarkBigIntMul(b *testing.B) {
	for _, sz := range benchSizes {
		x, y := benchOperands(sz)
		bx, by := x.AsBigInt(), y.AsBigInt()
		b.Run(fmt.Sprintf("%dw", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var dest big.Int
				BenchBigIntResult = dest.Mul(bx, by)
			}
		})
	}
}

func BenchmarkBigIntQuo(b *testing.B) {
	for _, sz := range benchSizes {
		x, y := benchOperands(sz)
		bx, by := x.AsBigInt(), y.AsBigInt()
		b.Run(fmt.Sprintf("%dw", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var dest big.Int
				BenchBigIntResult = dest.Quo(bx, by)
			}
		})
	}
}
