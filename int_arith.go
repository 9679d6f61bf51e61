package bignum

func (i Int) Neg() Int {
	return makeInt(i.mag().clone(), !i.neg)
}

func (i Int) Abs() Int {
	return Int{words: i.mag().clone()}
}

// Add returns i + n. Mixed-sign addition is routed through magnitude
// subtraction; when |i| < |n| the operands are swapped so no intermediate
// ever holds a negative digit, and the result takes n's sign instead.
func (i Int) Add(n Int) Int {
	x, y := i.mag(), n.mag()
	if i.neg == n.neg {
		return makeInt(addNat(x, y), i.neg)
	}
	if cmpNat(x, y) < 0 {
		return makeInt(subNat(y, x), n.neg)
	}
	return makeInt(subNat(x, y), i.neg)
}

// Sub returns i - n, which is i + (-n).
func (i Int) Sub(n Int) Int {
	return i.Add(n.Neg())
}

// Mul returns the product of two Ints using schoolbook multiplication.
func (i Int) Mul(n Int) Int {
	return makeInt(mulNat(i.mag(), n.mag()), i.neg != n.neg)
}

// Quo returns the quotient i/by for by != 0. If by == 0, ErrDivisionByZero
// is returned.
//
// Quo implements truncated division (like Go): the quotient is rounded
// toward zero.
func (i Int) Quo(by Int) (q Int, err error) {
	if by.IsZero() {
		return q, ErrDivisionByZero
	}
	qm, _ := quoRemNat(i.mag(), by.mag())
	return makeInt(qm, i.neg != by.neg), nil
}

// Rem returns the remainder of i%by for by != 0. If by == 0,
// ErrDivisionByZero is returned.
//
// The remainder is derived from the quotient rather than computed on its
// own:
//
//	r = i - by*(i/by)
//
// so it inherits Quo's truncation and takes the sign of the dividend. This is
// not Euclidean modulus.
func (i Int) Rem(by Int) (r Int, err error) {
	q, err := i.Quo(by)
	if err != nil {
		return r, err
	}
	return i.Sub(by.Mul(q)), nil
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0,
// ErrDivisionByZero is returned.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// Int does not support big.Int.DivMod()-style Euclidean division.
func (i Int) QuoRem(by Int) (q, r Int, err error) {
	q, err = i.Quo(by)
	if err != nil {
		return q, r, err
	}
	return q, i.Sub(by.Mul(q)), nil
}

func (i Int) Inc() Int { return i.Add(one) }
func (i Int) Dec() Int { return i.Sub(one) }

// AddAssign sets z to z + n and returns z.
func (z *Int) AddAssign(n Int) *Int {
	*z = z.Add(n)
	return z
}

// SubAssign sets z to z - n and returns z.
func (z *Int) SubAssign(n Int) *Int {
	*z = z.Sub(n)
	return z
}

// MulAssign sets z to z * n and returns z.
func (z *Int) MulAssign(n Int) *Int {
	*z = z.Mul(n)
	return z
}

// QuoAssign sets z to z / by. z is left untouched if an error is returned.
func (z *Int) QuoAssign(by Int) error {
	q, err := z.Quo(by)
	if err != nil {
		return err
	}
	*z = q
	return nil
}

// RemAssign sets z to z % by. z is left untouched if an error is returned.
func (z *Int) RemAssign(by Int) error {
	r, err := z.Rem(by)
	if err != nil {
		return err
	}
	*z = r
	return nil
}

// PreInc increments z in place and returns the new value, like ++z.
func (z *Int) PreInc() Int {
	*z = z.Inc()
	return *z
}

// PreDec decrements z in place and returns the new value, like --z.
func (z *Int) PreDec() Int {
	*z = z.Dec()
	return *z
}

// PostInc increments z in place and returns the value it held before, like
// z++.
func (z *Int) PostInc() Int {
	old := *z
	*z = z.Inc()
	return old
}

// PostDec decrements z in place and returns the value it held before, like
// z--.
func (z *Int) PostDec() Int {
	old := *z
	*z = z.Dec()
	return old
}
