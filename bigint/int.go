// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bigint implements arbitrary-precision signed integers.
// The magnitude is stored as a vector of base 10^9 limbs, which makes
// conversion to and from decimal strings exact and cheap.
//
// Int is a value type: every operation returns a new value and never
// modifies its operands, so Int values can be copied and shared freely.
// The zero value of Int is 0.
package bigint

import (
	"errors"
	"math"

	"fortio.org/safecast"
	"golang.org/x/exp/constraints"

	mu "github.com/avdva/bignum/internal/mathutil"
)

const (
	// LimbDigits is the number of decimal digits stored in one limb.
	LimbDigits = 9
	// LimbBase is the base of a limb, 10^LimbDigits.
	LimbBase = 1000000000
)

var (
	// ErrDivisionByZero is returned if a divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidFormat is returned if a string is not a decimal integer.
	ErrInvalidFormat = errors.New("invalid format")

	zero = Int{limbs: nat{0}}
	one  = Int{limbs: nat{1}}
)

// Int is an arbitrary-precision signed integer.
type Int struct {
	limbs nat
	neg   bool
}

func fromNat(mag nat, neg bool) Int {
	mag = mag.norm()
	if mag.isZero() {
		return Int{limbs: mag}
	}
	return Int{limbs: mag, neg: neg}
}

// mag returns a normalized magnitude of x.
func (x Int) mag() nat {
	if len(x.limbs) == 0 {
		return nat{0}
	}
	return x.limbs
}

// New returns an Int for given int64 number.
func New(v int64) Int {
	return fromNat(natFromUint64(mu.UAbsInt64(v)), v < 0)
}

// FromUint64 returns an Int for given uint64 number.
func FromUint64(v uint64) Int {
	return fromNat(natFromUint64(v), false)
}

// Of returns an Int for a value of any integer type.
func Of[T constraints.Integer](v T) Int {
	if v < 0 {
		return New(int64(v))
	}
	return FromUint64(uint64(v))
}

// Zero returns 0.
func Zero() Int {
	return zero
}

// One returns 1.
func One() Int {
	return one
}

// Limbs returns a copy of x's magnitude, least-significant limb first.
func (x Int) Limbs() []uint64 {
	return x.mag().clone()
}

// IsZero returns true if x == 0.
func (x Int) IsZero() bool {
	return x.mag().isZero()
}

// Sign returns -1 if x < 0, 0 if x == 0, 1 if x > 0.
func (x Int) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Neg returns -x.
func (x Int) Neg() Int {
	return fromNat(x.mag(), !x.neg)
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return fromNat(x.mag(), false)
}

// CmpAbs compares |x| and |y|.
// Returns -1 if |x| < |y|, 0 if |x| == |y|, 1 if |x| > |y|.
func (x Int) CmpAbs(y Int) int {
	return x.mag().cmp(y.mag())
}

// Cmp compares two values.
// Returns -1 if x < y, 0 if x == y, 1 if x > y.
func (x Int) Cmp(y Int) int {
	s1, s2 := x.Sign(), y.Sign()
	if s1 != s2 {
		if s1 > s2 {
			return 1
		}
		return -1
	}
	if s1 < 0 {
		return -x.CmpAbs(y)
	}
	return x.CmpAbs(y)
}

// Eq returns x == y.
func (x Int) Eq(y Int) bool {
	return x.Cmp(y) == 0
}

// Lt returns x < y.
func (x Int) Lt(y Int) bool {
	return x.Cmp(y) < 0
}

// Le returns x <= y.
func (x Int) Le(y Int) bool {
	return x.Cmp(y) <= 0
}

// Gt returns x > y.
func (x Int) Gt(y Int) bool {
	return x.Cmp(y) > 0
}

// Ge returns x >= y.
func (x Int) Ge(y Int) bool {
	return x.Cmp(y) >= 0
}

// Add returns x+y.
func (x Int) Add(y Int) Int {
	xneg, yneg := x.Sign() < 0, y.Sign() < 0
	if xneg != yneg {
		// x+(-y) = x-y
		// -x+y = -(x-y)
		return x.Sub(y.Neg())
	}
	return fromNat(x.mag().add(y.mag()), xneg)
}

// Sub returns x-y.
func (x Int) Sub(y Int) Int {
	xneg, yneg := x.Sign() < 0, y.Sign() < 0
	if xneg != yneg {
		// x-(-y) = x+y
		// -x-y = -(x+y)
		return fromNat(x.mag().add(y.mag()), xneg)
	}
	// both operands have the same sign, so subtract the smaller magnitude
	// from the larger one and flip the sign if the operands were swapped.
	mx, my := x.mag(), y.mag()
	if mx.cmp(my) < 0 {
		return fromNat(my.sub(mx), !xneg)
	}
	return fromNat(mx.sub(my), xneg)
}

// Mul returns x*y.
func (x Int) Mul(y Int) Int {
	return fromNat(x.mag().mul(y.mag()), x.neg != y.neg)
}

// MulInt64 returns x*n.
func (x Int) MulInt64(n int64) Int {
	return fromNat(x.mag().mulWord(mu.UAbsInt64(n)), x.neg != (n < 0))
}

// DivInt64 returns x/n truncated towards zero.
// Returns ErrDivisionByZero if n == 0.
func (x Int) DivInt64(n int64) (Int, error) {
	if n == 0 {
		return zero, ErrDivisionByZero
	}
	q, _ := x.mag().divWord(mu.UAbsInt64(n))
	return fromNat(q, x.neg != (n < 0)), nil
}

// Div returns x/y truncated towards zero.
// Returns ErrDivisionByZero if y == 0.
func (x Int) Div(y Int) (Int, error) {
	if y.IsZero() {
		return zero, ErrDivisionByZero
	}
	mx, my := x.mag(), y.mag()
	if my.cmp(mx) > 0 {
		return zero, nil
	}
	return fromNat(mx.div(my), x.neg != y.neg), nil
}

// Mod returns x - y*(x/y). The result has the sign of x.
// Returns ErrDivisionByZero if y == 0.
func (x Int) Mod(y Int) (Int, error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// DivMod returns such quo and rem, that x = y*quo + rem and |rem| < |y|.
// Quo is truncated towards zero, rem has the sign of x.
// Returns ErrDivisionByZero if y == 0.
func (x Int) DivMod(y Int) (quo, rem Int, err error) {
	if y.IsZero() {
		return zero, zero, ErrDivisionByZero
	}
	if x.CmpAbs(y) < 0 {
		return zero, x, nil
	}
	if quo, err = x.Div(y); err != nil {
		return zero, zero, err
	}
	return quo, x.Sub(y.Mul(quo)), nil
}

// Inc increments x and returns the new value.
func (x *Int) Inc() Int {
	*x = x.Add(one)
	return *x
}

// PostInc increments x and returns the value it had before.
func (x *Int) PostInc() Int {
	old := *x
	*x = x.Add(one)
	return old
}

// Dec decrements x and returns the new value.
func (x *Int) Dec() Int {
	*x = x.Sub(one)
	return *x
}

// PostDec decrements x and returns the value it had before.
func (x *Int) PostDec() Int {
	old := *x
	*x = x.Sub(one)
	return old
}

// Int64 returns x as an int64.
// The second result is false if x does not fit into int64.
func (x Int) Int64() (int64, bool) {
	m := x.mag()
	if len(m) > 3 {
		return 0, false
	}
	var u uint64
	for i := len(m) - 1; i >= 0; i-- {
		hi, lo := mulAdd64(u, LimbBase, m[i])
		if hi != 0 {
			return 0, false
		}
		u = lo
	}
	if x.neg {
		if u == 1<<63 {
			return math.MinInt64, true
		}
		v, err := safecast.Conv[int64](u)
		if err != nil {
			return 0, false
		}
		return -v, true
	}
	v, err := safecast.Conv[int64](u)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Float64 returns an approximation of x.
// Limbs are accumulated from the most significant one, so the result is
// lossy for magnitudes above 2^53 and becomes ±Inf for huge values.
func (x Int) Float64() float64 {
	m := x.mag()
	var f float64
	for i := len(m) - 1; i >= 0; i-- {
		f = f*LimbBase + float64(m[i])
	}
	if x.neg {
		f = -f
	}
	return f
}
