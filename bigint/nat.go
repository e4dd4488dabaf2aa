// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigint

import (
	"math/bits"
)

// nat is a magnitude in base LimbBase, least-significant limb first.
// A normalized nat has at least one limb and no most-significant zero limbs,
// so zero is nat{0}.
type nat []uint64

func natFromUint64(v uint64) nat {
	if v == 0 {
		return nat{0}
	}
	z := make(nat, 0, 3)
	for v > 0 {
		z = append(z, v%LimbBase)
		v /= LimbBase
	}
	return z
}

// norm drops most-significant zero limbs, leaving a single zero limb for zero.
func (z nat) norm() nat {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return nat{0}
	}
	return z[:i]
}

func (z nat) isZero() bool {
	return len(z) == 0 || len(z) == 1 && z[0] == 0
}

func (z nat) clone() nat {
	c := make(nat, len(z))
	copy(c, z)
	return c
}

// cmp compares two normalized magnitudes.
// Returns -1 if x < y, 0 if x == y, 1 if x > y.
func (x nat) cmp(y nat) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// add returns x+y.
func (x nat) add(y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x), len(x)+1)
	var carry uint64
	for i := range x {
		sum := x[i] + carry
		if i < len(y) {
			sum += y[i]
		}
		// both inputs are below LimbBase, so one subtraction is enough.
		carry = 0
		if sum >= LimbBase {
			sum -= LimbBase
			carry = 1
		}
		z[i] = sum
	}
	if carry > 0 {
		z = append(z, carry)
	}
	return z.norm()
}

// sub returns x-y. x must be >= y.
func (x nat) sub(y nat) nat {
	z := x.clone()
	var borrow uint64
	for i := 0; i < len(z); i++ {
		var d uint64
		if i < len(y) {
			d = y[i]
		} else if borrow == 0 {
			break
		}
		d += borrow
		borrow = 0
		if z[i] < d {
			z[i] += LimbBase
			borrow = 1
		}
		z[i] -= d
	}
	if borrow != 0 {
		panic("bigint: magnitude underflow")
	}
	return z.norm()
}

// mul returns x*y using schoolbook multiplication.
func (x nat) mul(y nat) nat {
	if x.isZero() || y.isZero() {
		return nat{0}
	}
	z := make(nat, len(x)+len(y)+1)
	for i := range x {
		var carry uint64
		for j := range y {
			// x[i]*y[j] < 1e18, and z[i+j]+carry stays well below 2^64-1e18.
			cur := z[i+j] + x[i]*y[j] + carry
			carry = cur / LimbBase
			z[i+j] = cur - carry*LimbBase
		}
		if carry > 0 {
			z[i+len(y)] += carry
		}
	}
	return z.norm()
}

// mulWord returns x*w. The intermediate product of each limb uses 128 bits,
// so any uint64 scalar is accepted.
func (x nat) mulWord(w uint64) nat {
	if w == 0 || x.isZero() {
		return nat{0}
	}
	z := make(nat, len(x), len(x)+3)
	var carry uint64
	for i := range x {
		hi, lo := mulAdd64(x[i], w, carry)
		// x[i] < LimbBase, so hi < LimbBase and the quotient fits 64 bits.
		carry, z[i] = bits.Div64(hi, lo, LimbBase)
	}
	for carry > 0 {
		z = append(z, carry%LimbBase)
		carry /= LimbBase
	}
	return z.norm()
}

// divWord returns x/w and x%w. w must be non-zero.
func (x nat) divWord(w uint64) (nat, uint64) {
	z := make(nat, len(x))
	var rest uint64
	for i := len(x) - 1; i >= 0; i-- {
		hi, lo := mulAdd64(rest, LimbBase, x[i])
		// rest < w, so hi < w.
		z[i], rest = bits.Div64(hi, lo, w)
	}
	return z.norm(), rest
}

// mulAdd64 returns the 128-bit result of x*y+c.
func mulAdd64(x, y, c uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(x, y)
	var carry uint64
	lo, carry = bits.Add64(lo, c, 0)
	return hi + carry, lo
}

// shiftLimb returns x*LimbBase + limb.
func (x nat) shiftLimb(limb uint64) nat {
	if x.isZero() {
		return nat{limb}
	}
	z := make(nat, len(x)+1)
	z[0] = limb
	copy(z[1:], x)
	return z
}

// div returns x/y using long division by limbs. y must be non-zero.
// Every quotient limb is found by a binary search over [0, LimbBase].
func (x nat) div(y nat) nat {
	if y.cmp(x) > 0 {
		return nat{0}
	}
	q := make(nat, len(x))
	cur := nat{0}
	for i := len(x) - 1; i >= 0; i-- {
		cur = cur.shiftLimb(x[i])
		digit := quotientDigit(cur, y)
		q[i] = digit
		if digit > 0 {
			cur = cur.sub(y.mulWord(digit))
		}
	}
	return q.norm()
}

// quotientDigit returns the largest d in [0, LimbBase] such that y*d <= cur.
func quotientDigit(cur, y nat) uint64 {
	if cur.cmp(y) < 0 {
		return 0
	}
	var d uint64
	l, r := uint64(0), uint64(LimbBase)
	for l <= r {
		m := (l + r) / 2
		if y.mulWord(m).cmp(cur) <= 0 {
			d = m
			l = m + 1
		} else {
			r = m - 1
		}
	}
	return d
}
