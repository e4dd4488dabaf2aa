// Copyright 2020 Aleksandr Demakin. All rights reserved.

package rational

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/avdva/bignum/bigint"
	mu "github.com/avdva/bignum/internal/mathutil"
)

const (
	delim    = '.'
	fracSep  = "/"
	defPrec  = 6
	negSign  = "-"
	nullJSON = "null"
)

// FromString parses a rational number. The following forms are accepted:
//	"-12"      an integer,
//	"-3/4"     a fraction, the denominator may be negative too,
//	"-12.375"  a decimal number.
func FromString(s string) (Rat, error) {
	if idx := strings.Index(s, fracSep); idx >= 0 {
		num, err := bigint.FromString(s[:idx])
		if err != nil {
			return Rat{}, fmt.Errorf("bad numerator: %w", err)
		}
		den, err := bigint.FromString(s[idx+1:])
		if err != nil {
			return Rat{}, fmt.Errorf("bad denominator: %w", err)
		}
		return FromFrac(num, den)
	}
	if idx := strings.IndexByte(s, delim); idx >= 0 {
		return fromDecimalString(s[:idx], s[idx+1:])
	}
	x, err := bigint.FromString(s)
	if err != nil {
		return Rat{}, err
	}
	return FromInt(x), nil
}

// MustFromString is like FromString, but panics on error.
func MustFromString(s string) Rat {
	r, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return r
}

// fromDecimalString builds a rational from integer and fractional parts of a decimal number.
func fromDecimalString(integ, frac string) (Rat, error) {
	var sign string
	if strings.HasPrefix(integ, negSign) {
		sign, integ = negSign, integ[1:]
	}
	if len(integ)+len(frac) == 0 {
		return Rat{}, fmt.Errorf("bad decimal: no digits: %w", ErrInvalidFormat)
	}
	if strings.HasPrefix(frac, negSign) {
		return Rat{}, fmt.Errorf("bad decimal: unexpected sign in fractional part: %w", ErrInvalidFormat)
	}
	num, err := bigint.FromString(sign + integ + frac)
	if err != nil {
		return Rat{}, fmt.Errorf("bad decimal: %w", err)
	}
	return normalize(num, pow10(len(frac))), nil
}

// pow10 returns 10^n as a bigint.
func pow10(n int) bigint.Int {
	if p := mu.Pow10(n); p > 0 {
		return bigint.FromUint64(p)
	}
	return bigint.MustFromString("1" + mu.Zeros(n))
}

// String returns "num" if the denominator is 1, and "num/den" otherwise.
func (r Rat) String() string {
	if r.IsInt() {
		return r.num.String()
	}
	return r.num.String() + fracSep + r.Denom().String()
}

// AsDecimal returns r as a decimal number with exactly prec digits after the point.
// Extra digits are truncated. If prec <= 0, the integer part of r is returned.
func (r Rat) AsDecimal(prec int) string {
	if prec <= 0 {
		return quo(r.num, r.Denom()).String()
	}
	scaled := quo(r.num.Abs().Mul(pow10(prec)), r.Denom())
	digits := scaled.String()
	if len(digits) < prec {
		digits = mu.Zeros(prec-len(digits)) + digits
	}
	var b strings.Builder
	b.Grow(len(digits) + 3)
	if r.Sign() < 0 {
		b.WriteString(negSign)
	}
	if intLen := len(digits) - prec; intLen > 0 {
		b.WriteString(digits[:intLen])
	} else {
		b.WriteByte('0')
	}
	b.WriteByte(delim)
	b.WriteString(digits[len(digits)-prec:])
	return b.String()
}

// Format implements fmt.Formatter.
// 'v' and 's' verbs produce String(), 'f' produces AsDecimal() for the given precision, 6 by default.
// Width and the '-' flag are supported.
func (r Rat) Format(fs fmt.State, c rune) {
	var s string
	switch c {
	case 'v', 's':
		s = r.String()
	case 'f', 'F':
		prec, ok := fs.Precision()
		if !ok {
			prec = defPrec
		}
		s = r.AsDecimal(prec)
	default:
		fmt.Fprintf(fs, "%%!%c(rational.Rat=%s)", c, r.String())
		return
	}
	if w, ok := fs.Width(); ok && len(s) < w {
		pad := strings.Repeat(" ", w-len(s))
		if fs.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}
	io.WriteString(fs, s)
}

// MarshalJSON marshals r as a string, like `"-3/4"`.
func (r Rat) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(r.String())), nil
}

// UnmarshalJSON unmarshals a string or a number into r.
// A json null leaves r unchanged.
func (r *Rat) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == nullJSON {
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("bad json string: %w", err)
		}
		s = unquoted
	}
	return r.UnmarshalText([]byte(s))
}

// MarshalText implements encoding.TextMarshaler.
func (r Rat) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rat) UnmarshalText(text []byte) error {
	v, err := FromString(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
