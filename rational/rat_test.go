// Copyright 2020 Aleksandr Demakin. All rights reserved.

package rational

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/avdva/bignum/bigint"
	"github.com/stretchr/testify/assert"
)

func TestFromFrac(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		num, den string
		res      string
	}{
		{"0", "7", "0"},
		{"0", "-7", "0"},
		{"2", "4", "1/2"},
		{"-2", "4", "-1/2"},
		{"2", "-4", "-1/2"},
		{"-2", "-4", "1/2"},
		{"10", "5", "2"},
		{"17", "17", "1"},
		{"3", "7", "3/7"},
		{"123456789012345678901234567890", "1234567890", "100000000010000000001"},
		{"1000000000000000000000", "-3000000000000000000000", "-1/3"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r, err := FromFrac(bigint.MustFromString(test.num), bigint.MustFromString(test.den))
			if a.NoError(err) {
				a.Equal(test.res, r.String())
				a.Equal(1, r.Denom().Sign())
			}
		})
	}
	_, err := FromFrac(bigint.New(1), bigint.Zero())
	a.ErrorIs(err, ErrDivisionByZero)
	_, err = NewFrac(0, 0)
	a.ErrorIs(err, ErrDivisionByZero)
	a.Panics(func() {
		MustFromFrac(bigint.New(1), bigint.Zero())
	})
}

func TestZeroValue(t *testing.T) {
	a := assert.New(t)
	var r Rat
	a.True(r.IsZero())
	a.Equal("0", r.String())
	a.Equal("1", r.Denom().String())
	a.True(r.Eq(New(0)))
	a.Equal("1/2", r.Add(mustFrac(1, 2)).String())
	a.Equal("0.000", r.AsDecimal(3))
}

func TestArith(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y          string
		add, sub, mul string
		div           string
	}{
		{"1/2", "1/3", "5/6", "1/6", "1/6", "3/2"},
		{"1/2", "1/2", "1", "0", "1/4", "1"},
		{"-3/4", "1/4", "-1/2", "-1", "-3/16", "-3"},
		{"5", "-2/3", "13/3", "17/3", "-10/3", "-15/2"},
		{"0", "7/9", "7/9", "-7/9", "0", "0"},
		{"1/1000000000", "1/1000000000", "1/500000000", "0", "1/1000000000000000000", "1"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x, y := MustFromString(test.x), MustFromString(test.y)
			a.Equal(test.add, x.Add(y).String())
			a.Equal(test.sub, x.Sub(y).String())
			a.Equal(test.mul, x.Mul(y).String())
			q, err := x.Div(y)
			if a.NoError(err) {
				a.Equal(test.div, q.String())
			}
		})
	}
	_, err := New(1).Div(Rat{})
	a.ErrorIs(err, ErrDivisionByZero)
	_, err = Rat{}.Inv()
	a.ErrorIs(err, ErrDivisionByZero)
	inv, err := mustFrac(-2, 3).Inv()
	if a.NoError(err) {
		a.Equal("-3/2", inv.String())
	}
}

func TestNegAbsSign(t *testing.T) {
	a := assert.New(t)
	r := mustFrac(-3, 4)
	a.Equal(-1, r.Sign())
	a.Equal("3/4", r.Neg().String())
	a.Equal("3/4", r.Abs().String())
	a.Equal("-3/4", r.Neg().Neg().String())
	a.Equal(0, New(0).Neg().Sign())
	a.True(New(5).IsInt())
	a.False(r.IsInt())
	a.Equal("-3", r.Num().String())
	a.Equal("4", r.Denom().String())
}

func TestCmp(t *testing.T) {
	a := assert.New(t)
	ordered := []Rat{
		MustFromString("-1000000000000000000000/3"),
		New(-2),
		mustFrac(-1, 2),
		mustFrac(-1, 3),
		New(0),
		mustFrac(1, 1000000000),
		mustFrac(1, 3),
		mustFrac(1, 2),
		mustFrac(2, 3),
		New(1),
		MustFromString("1000000000000000000001/1000000000000000000000"),
	}
	for i := range ordered {
		for j := range ordered {
			x, y := ordered[i], ordered[j]
			switch {
			case i < j:
				a.Equal(-1, x.Cmp(y), "%v vs %v", x, y)
				a.True(x.Lt(y))
				a.True(x.Le(y))
				a.False(x.Ge(y))
			case i > j:
				a.Equal(1, x.Cmp(y), "%v vs %v", x, y)
				a.True(x.Gt(y))
				a.True(x.Ge(y))
				a.False(x.Le(y))
			default:
				a.Equal(0, x.Cmp(y))
				a.True(x.Eq(y))
				a.True(x.Le(y))
				a.True(x.Ge(y))
			}
		}
	}
	a.True(mustFrac(2, 4).Eq(mustFrac(1, 2)))
}

func TestFloat64(t *testing.T) {
	a := assert.New(t)
	a.Equal(0.5, mustFrac(1, 2).Float64())
	a.Equal(-0.75, mustFrac(-3, 4).Float64())
	a.InEpsilon(1.0/3, mustFrac(1, 3).Float64(), 1e-15)
	a.Equal(0.0, Rat{}.Float64())
}

func TestProperties(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		x, y, z := randomRat(rnd), randomRat(rnd), randomRat(rnd)
		a.True(x.Add(y).Eq(y.Add(x)))
		a.True(x.Mul(y).Eq(y.Mul(x)))
		a.True(x.Add(y).Add(z).Eq(x.Add(y.Add(z))))
		a.True(x.Mul(y.Add(z)).Eq(x.Mul(y).Add(x.Mul(z))))
		a.True(x.Sub(x).IsZero())
		a.True(x.Add(y).Sub(y).Eq(x))
		if !y.IsZero() {
			q, err := x.Div(y)
			if a.NoError(err) {
				a.True(q.Mul(y).Eq(x))
			}
		}

		expected := new(big.Rat).Add(toBig(x), toBig(y))
		a.Equal(expected.RatString(), x.Add(y).String())
		expected = new(big.Rat).Mul(toBig(x), toBig(y))
		a.Equal(expected.RatString(), x.Mul(y).String())
		a.Equal(toBig(x).Cmp(toBig(y)), x.Cmp(y))

		g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(toBigInt(x.Num())), toBigInt(x.Denom()))
		a.Equal("1", g.String())
	}
}

func randomRat(rnd *rand.Rand) Rat {
	num := bigint.New(rnd.Int63n(2000000) - 1000000).Mul(bigint.New(rnd.Int63()))
	den := bigint.New(rnd.Int63n(1000000) + 1).Mul(bigint.New(rnd.Int63n(1000) + 1))
	if rnd.Intn(2) == 0 {
		den = den.Neg()
	}
	return MustFromFrac(num, den)
}

func toBigInt(x bigint.Int) *big.Int {
	v, ok := new(big.Int).SetString(x.String(), 10)
	if !ok {
		panic("bad int " + x.String())
	}
	return v
}

func toBig(r Rat) *big.Rat {
	return new(big.Rat).SetFrac(toBigInt(r.Num()), toBigInt(r.Denom()))
}

func mustFrac(num, den int64) Rat {
	r, err := NewFrac(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

func BenchmarkAdd(b *testing.B) {
	x := MustFromString("123456789012345678901/987654321")
	y := MustFromString("-98765432109876543210/123456789")
	for i := 0; i < b.N; i++ {
		x.Add(y)
	}
}
