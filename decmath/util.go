package decmath

import "github.com/arbprec/bignum/decimal"

// adjustedExp returns the exponent of x's most significant digit: x is
// d.ddddd * 10^adjustedExp with the leading digit nonzero. x must be
// non-zero.
func adjustedExp(x decimal.Decimal) int {
	tup := x.AsTuple()
	return len(tup.Digits) - 1 + tup.Exponent
}

// nonNegativeIntegerMagnitude converts a non-negative, integer-valued
// Decimal to a uint64 by reading its tuple directly, sidestepping the
// scientific-notation form String() may choose for a negative-scale
// value. The caller is responsible for having verified d carries no
// fractional part.
func nonNegativeIntegerMagnitude(d decimal.Decimal) uint64 {
	tup := d.AsTuple()
	digits := tup.Digits
	exp := tup.Exponent
	if exp < 0 {
		if -exp >= len(digits) {
			return 0
		}
		digits = digits[:len(digits)+exp]
		exp = 0
	}
	var v uint64
	for _, dg := range digits {
		v = v*10 + uint64(dg)
	}
	for i := 0; i < exp; i++ {
		v *= 10
	}
	return v
}
