// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package mathutil contains word-level helpers shared by bigint and rational.
package mathutil

import (
	"math/bits"
	"strings"
	"unsafe"
)

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}

	manyZeros = strings.Repeat("0", 256)
)

// Pow10 returns 10^pow, or 0 if it does not fit into uint64.
func Pow10(pow int) uint64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}

	digits := digitsHelper[BinaryDigits(value)]
	if value >= decimalFactorTable[digits] {
		digits++
	}
	return digits
}

// Zeros returns a string of count '0' characters.
func Zeros(count int) string {
	if count <= 0 {
		return ""
	}
	if count <= len(manyZeros) {
		return manyZeros[:count]
	}
	return strings.Repeat("0", count)
}

// UAbsInt64 returns the magnitude of val. It is defined for math.MinInt64 too.
func UAbsInt64(val int64) uint64 {
	if val < 0 {
		return uint64(-(val + 1)) + 1
	}
	return uint64(val)
}
