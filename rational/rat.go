// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package rational implements exact rational numbers on top of bigint.
//
// A Rat is always kept in its canonical form: the denominator is positive,
// the numerator carries the sign, and both parts are coprime.
// Every operation reduces its result, reduction is never deferred.
// The zero value of Rat is 0.
package rational

import (
	"github.com/avdva/bignum/bigint"
)

var (
	// ErrDivisionByZero is returned if a divisor or a denominator is zero.
	ErrDivisionByZero = bigint.ErrDivisionByZero
	// ErrInvalidFormat is returned if a string can't be parsed into a Rat.
	ErrInvalidFormat = bigint.ErrInvalidFormat
)

// Rat is an exact fraction num/den.
type Rat struct {
	num bigint.Int
	den bigint.Int // zero only in the zero value of Rat, which is treated as 0/1.
}

// New returns n/1.
func New(n int64) Rat {
	return Rat{num: bigint.New(n), den: bigint.One()}
}

// FromInt returns x/1.
func FromInt(x bigint.Int) Rat {
	return Rat{num: x, den: bigint.One()}
}

// FromFrac returns num/den reduced to lowest terms.
// Returns ErrDivisionByZero if den == 0.
func FromFrac(num, den bigint.Int) (Rat, error) {
	if den.IsZero() {
		return Rat{}, ErrDivisionByZero
	}
	return normalize(num, den), nil
}

// NewFrac returns num/den reduced to lowest terms.
// Returns ErrDivisionByZero if den == 0.
func NewFrac(num, den int64) (Rat, error) {
	return FromFrac(bigint.New(num), bigint.New(den))
}

// MustFromFrac is like FromFrac, but panics on error.
func MustFromFrac(num, den bigint.Int) Rat {
	r, err := FromFrac(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// normalize moves the sign to the numerator and reduces the fraction.
// den must be non-zero.
func normalize(num, den bigint.Int) Rat {
	if den.Sign() < 0 {
		num, den = num.Neg(), den.Neg()
	}
	// for a zero numerator g == den, so the result is 0/1.
	g := gcd(num.Abs(), den)
	return Rat{num: quo(num, g), den: quo(den, g)}
}

// gcd calculates the greatest common divisor of non-negative x and y
// with the Euclidean algorithm. If one of the values is zero, the other one is returned.
func gcd(x, y bigint.Int) bigint.Int {
	for !x.IsZero() && !y.IsZero() {
		if x.Gt(y) {
			x = rem(x, y)
		} else {
			y = rem(y, x)
		}
	}
	return x.Add(y)
}

func quo(x, y bigint.Int) bigint.Int {
	q, err := x.Div(y)
	if err != nil {
		panic(err) // should not normally happen
	}
	return q
}

func rem(x, y bigint.Int) bigint.Int {
	r, err := x.Mod(y)
	if err != nil {
		panic(err) // should not normally happen
	}
	return r
}

// Num returns the numerator of r. It carries the sign of r.
func (r Rat) Num() bigint.Int {
	return r.num
}

// Denom returns the denominator of r. It is always positive.
func (r Rat) Denom() bigint.Int {
	if r.den.IsZero() {
		return bigint.One()
	}
	return r.den
}

// IsZero returns true if r == 0.
func (r Rat) IsZero() bool {
	return r.num.IsZero()
}

// IsInt returns true if the denominator of r is 1.
func (r Rat) IsInt() bool {
	return r.Denom().Eq(bigint.One())
}

// Sign returns -1 if r < 0, 0 if r == 0, 1 if r > 0.
func (r Rat) Sign() int {
	return r.num.Sign()
}

// Neg returns -r.
func (r Rat) Neg() Rat {
	return Rat{num: r.num.Neg(), den: r.Denom()}
}

// Abs returns |r|.
func (r Rat) Abs() Rat {
	return Rat{num: r.num.Abs(), den: r.Denom()}
}

// Add returns r+other.
func (r Rat) Add(other Rat) Rat {
	// a/b + c/d = (a*d + c*b) / b*d
	b, d := r.Denom(), other.Denom()
	return normalize(r.num.Mul(d).Add(other.num.Mul(b)), b.Mul(d))
}

// Sub returns r-other.
func (r Rat) Sub(other Rat) Rat {
	// a/b - c/d = (a*d - c*b) / b*d
	b, d := r.Denom(), other.Denom()
	return normalize(r.num.Mul(d).Sub(other.num.Mul(b)), b.Mul(d))
}

// Mul returns r*other.
func (r Rat) Mul(other Rat) Rat {
	return normalize(r.num.Mul(other.num), r.Denom().Mul(other.Denom()))
}

// Div returns r/other.
// Returns ErrDivisionByZero if other == 0.
func (r Rat) Div(other Rat) (Rat, error) {
	if other.IsZero() {
		return Rat{}, ErrDivisionByZero
	}
	// a/b / c/d = a*d / b*c
	return normalize(r.num.Mul(other.Denom()), r.Denom().Mul(other.num)), nil
}

// Inv returns 1/r.
// Returns ErrDivisionByZero if r == 0.
func (r Rat) Inv() (Rat, error) {
	return New(1).Div(r)
}

// Cmp compares two values.
// Returns -1 if r < other, 0 if r == other, 1 if r > other.
func (r Rat) Cmp(other Rat) int {
	s1, s2 := r.Sign(), other.Sign()
	if s1 != s2 {
		if s1 > s2 {
			return 1
		}
		return -1
	}
	if s1 == 0 {
		return 0
	}
	// denominators are positive, so a/b ? c/d is the same as a*d ? c*b.
	return r.num.Mul(other.Denom()).Cmp(other.num.Mul(r.Denom()))
}

// Eq returns r == other.
func (r Rat) Eq(other Rat) bool {
	return r.Cmp(other) == 0
}

// Lt returns r < other.
func (r Rat) Lt(other Rat) bool {
	return r.Cmp(other) < 0
}

// Le returns r <= other.
func (r Rat) Le(other Rat) bool {
	return r.Cmp(other) <= 0
}

// Gt returns r > other.
func (r Rat) Gt(other Rat) bool {
	return r.Cmp(other) > 0
}

// Ge returns r >= other.
func (r Rat) Ge(other Rat) bool {
	return r.Cmp(other) >= 0
}

// Float64 returns an approximation of r.
// Both parts are converted with bigint.Int.Float64 first, so the result
// can be imprecise, infinite or NaN if any of them is huge.
func (r Rat) Float64() float64 {
	return r.num.Float64() / r.Denom().Float64()
}
