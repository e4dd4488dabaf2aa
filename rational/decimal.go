// Copyright 2020 Aleksandr Demakin. All rights reserved.

package rational

import (
	"github.com/avdva/bignum/bigint"
	"github.com/shopspring/decimal"
)

// FromDecimal returns the exact value of d.
func FromDecimal(d decimal.Decimal) Rat {
	exp := int(d.Exponent())
	// multiplying by 10^-exp gives a decimal with zero exponent, which is printed as its coefficient.
	coef := bigint.MustFromString(d.Mul(decimal.New(1, -d.Exponent())).String())
	if exp >= 0 {
		return FromInt(coef.Mul(pow10(exp)))
	}
	return normalize(coef, pow10(-exp))
}

// Decimal converts r to a decimal with prec digits after the point.
// Extra digits are truncated.
func (r Rat) Decimal(prec int) decimal.Decimal {
	d, err := decimal.NewFromString(r.AsDecimal(prec))
	if err != nil {
		panic(err) // should not normally happen
	}
	return d
}
