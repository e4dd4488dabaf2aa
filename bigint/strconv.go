// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigint

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"

	mu "github.com/avdva/bignum/internal/mathutil"
)

var (
	errEmptyInput = fmt.Errorf("empty input: %w", ErrInvalidFormat)
	errScanVerb   = errors.New("bigint: invalid verb for Scan")
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func (pe posError) Unwrap() error {
	return ErrInvalidFormat
}

// FromString parses a decimal integer of the form -?[0-9]+.
// Leading zeros are allowed, "-0" is parsed as 0.
// Returns an error wrapping ErrInvalidFormat for any other input.
func FromString(s string) (Int, error) {
	if len(s) == 0 {
		return zero, errEmptyInput
	}
	var neg bool
	offset := 1 // positions in errors start from 1.
	if s[0] == '-' {
		neg = true
		s = s[1:]
		offset++
	}
	if len(s) == 0 {
		return zero, fmt.Errorf("parsing failed: %w", newPosError("no digits", offset))
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < '0' || c > '9' {
			var sym string
			if r, size := utf8.DecodeRuneInString(s[i:]); r == utf8.RuneError && size <= 1 {
				sym = fmt.Sprintf("%q", s[i:i+1])
			} else {
				sym = fmt.Sprintf("%q", r)
			}
			return zero, fmt.Errorf("parsing failed: %w", newPosError("unexpected symbol "+sym, i+offset))
		}
	}
	// split the digits into chunks of LimbDigits, starting from the least significant end.
	limbs := make(nat, (len(s)+LimbDigits-1)/LimbDigits)
	for i, end := 0, len(s); end > 0; i, end = i+1, end-LimbDigits {
		start := end - LimbDigits
		if start < 0 {
			start = 0
		}
		limb, err := strconv.ParseUint(s[start:end], 10, 64)
		if err != nil {
			panic(err) // should not normally happen
		}
		limbs[i] = limb
	}
	return fromNat(limbs, neg), nil
}

// MustFromString parses a string and panics on error.
func MustFromString(s string) Int {
	x, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return x
}

// String returns the decimal representation of x.
func (x Int) String() string {
	return string(x.appendDecimal(nil))
}

// GoString returns debug string representation.
func (x Int) GoString() string {
	return x.String() + fmt.Sprintf(" {%v, %v}", x.neg, []uint64(x.mag()))
}

// appendDecimal appends the decimal representation of x to buf.
// Every limb except the most significant one is padded to LimbDigits digits.
func (x Int) appendDecimal(buf []byte) []byte {
	m := x.mag()
	if x.Sign() < 0 {
		buf = append(buf, '-')
	}
	top := len(m) - 1
	buf = strconv.AppendUint(buf, m[top], 10)
	for i := top - 1; i >= 0; i-- {
		buf = append(buf, mu.Zeros(LimbDigits-mu.DecimalDigits(m[i]))...)
		buf = strconv.AppendUint(buf, m[i], 10)
	}
	return buf
}

// WriteTo writes the decimal representation of x to w.
// It implements io.WriterTo, so values can be rendered into a caller-owned buffered writer.
func (x Int) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(x.appendDecimal(nil))
	return int64(n), err
}

// Format implements fmt.Formatter. It accepts 'd', 's' and 'v' verbs,
// the '+' and ' ' flags for positive numbers, and width with '-' and '0' flags.
func (x Int) Format(fs fmt.State, c rune) {
	switch c {
	case 'd', 's', 'v':
	default:
		fmt.Fprintf(fs, "%%!%c(bigint.Int=%s)", c, x.String())
		return
	}
	var sign string
	switch {
	case x.Sign() < 0:
		sign = "-"
	case fs.Flag('+'):
		sign = "+"
	case fs.Flag(' '):
		sign = " "
	}
	digits := x.Abs().appendDecimal(nil)
	var padding int
	if width, ok := fs.Width(); ok {
		padding = width - len(sign) - len(digits)
	}
	switch {
	case padding <= 0:
		io.WriteString(fs, sign)
		fs.Write(digits)
	case fs.Flag('-'):
		io.WriteString(fs, sign)
		fs.Write(digits)
		writeRepeated(fs, ' ', padding)
	case fs.Flag('0'):
		io.WriteString(fs, sign)
		writeRepeated(fs, '0', padding)
		fs.Write(digits)
	default:
		writeRepeated(fs, ' ', padding)
		io.WriteString(fs, sign)
		fs.Write(digits)
	}
}

func writeRepeated(w io.Writer, b byte, count int) {
	buf := make([]byte, count)
	for i := range buf {
		buf[i] = b
	}
	w.Write(buf)
}

var _ fmt.Scanner = (*Int)(nil)

// Scan implements fmt.Scanner. It skips leading spaces, reads one
// whitespace-delimited token and parses it with FromString.
func (x *Int) Scan(s fmt.ScanState, ch rune) error {
	switch ch {
	case 'd', 's', 'v':
	default:
		return errScanVerb
	}
	tok, err := s.Token(true, func(r rune) bool {
		return !unicode.IsSpace(r)
	})
	if err != nil {
		return err
	}
	if len(tok) == 0 {
		return io.EOF
	}
	v, err := FromString(string(tok))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
