package bignum

import (
	"math"
	"math/big"
)

func IntFromFloat32(f float32) (out Int, inRange bool) {
	return IntFromFloat64(float64(f))
}

// IntFromFloat64 creates an Int from a float64.
//
// Any fractional portion will be truncated towards zero. Every finite float64
// is an integer once truncated, so the conversion is exact.
//
// NaN and the infinities are treated as 0 and inRange is set to false.
func IntFromFloat64(f float64) (out Int, inRange bool) {
	if f != f || math.IsInf(f, 0) { // f != f == isnan
		return out, false
	}

	f = math.Trunc(f)
	neg := f < 0
	if neg {
		f = -f
	}

	if f < wrapUint64Float {
		return makeInt(natFromU64(uint64(f)), neg), true
	}

	// f == frac * 2**exp with frac in [0.5, 1). frac carries at most 53
	// significant bits, so frac * 2**64 is an exact uint64.
	frac, exp := math.Frexp(f)
	mant := IntFromU64(uint64(math.Ldexp(frac, 64)))
	out = mant.Mul(two.PowUint(uint64(exp - 64)))
	if neg {
		out = out.Neg()
	}
	return out, true
}

// AsFloat64 returns the float64 nearest to i. Values too large for a float64
// become ±Inf.
func (i Int) AsFloat64() float64 {
	if i.IsInt64() {
		return float64(i.AsInt64())
	}
	f, _ := i.AsBigFloat().Float64()
	return f
}

func (i Int) AsBigFloat() *big.Float {
	return new(big.Float).SetInt(i.AsBigInt())
}
