package decmath

import (
	"strconv"

	"github.com/arbprec/bignum/decimal"
)

// taylorExp evaluates e^r via its defining Taylor series for a small
// argument r (|r| < ln 2, after range reduction), summing
// term_n = r^n/n! incrementally as term_n = term_{n-1} * r / n.
func taylorExp(r decimal.Decimal, wp int) decimal.Decimal {
	threshold := decimal.New(1, wp+2)
	sum := decimal.One
	term := decimal.One
	n := uint64(0)
	for {
		n++
		term = roundToPrec(decimal.Mul(term, r), wp)
		term, _ = decimal.Div(term, decimal.FromUint64(n), wp, decimal.ToNearestEven)
		sum = decimal.Add(sum, term)
		if term.Abs().Cmp(threshold) <= 0 {
			break
		}
	}
	return sum
}

// computeE evaluates e to prec significant digits directly from the
// Taylor series at x=1: no range reduction is needed since factorial
// growth alone gives fast convergence for an argument this small.
func computeE(prec int) decimal.Decimal {
	wp := workingPrecision(prec)
	return roundToPrec(taylorExp(decimal.One, wp), prec)
}

// decimalToUint64 converts a non-negative integer-valued Decimal (scale
// 0) to a uint64, for the loop/exponent counters range reduction
// produces internally.
func decimalToUint64(d decimal.Decimal) uint64 {
	if d.IsZero() {
		return 0
	}
	v, err := strconv.ParseUint(d.String(), 10, 64)
	if err != nil {
		panic("decmath: decimalToUint64: " + err.Error())
	}
	return v
}

// Exp returns e^x rounded to prec significant digits. Large |x| is range
// reduced as x = k*ln2 + r with 0 <= r < ln2, so that e^x = e^r * 2^k;
// e^r is then cheap via Taylor since r is always small.
func Exp(x decimal.Decimal, prec int) decimal.Decimal {
	if x.IsZero() {
		return decimal.One
	}
	wp := workingPrecision(prec)

	neg := x.Sign() < 0
	xa := x.Abs()

	ln2 := Ln2(wp + 10)
	k, r, err := decimal.DivModFloor(xa, ln2)
	if err != nil {
		panic("decmath: Exp: " + err.Error())
	}

	er := taylorExp(r, wp+10)
	kInt := decimalToUint64(k)
	twoPowK, _ := intPow(decimal.FromUint64(2), kInt, wp+10)
	result := roundToPrec(decimal.Mul(er, twoPowK), prec)

	if neg {
		recip, _ := decimal.Div(decimal.One, result, prec, decimal.ToNearestEven)
		return recip
	}
	return result
}
