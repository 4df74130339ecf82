package decmath

import (
	"github.com/arbprec/bignum/bignumerr"
	"github.com/arbprec/bignum/decimal"
)

var ten = decimal.FromUint64(10)

// lnSeries evaluates ln(m) for m already reduced into [0.1, 1) via the
// atanh series ln(m) = 2*atanh((m-1)/(m+1)) = 2*(z + z^3/3 + z^5/5 + ...),
// z = (m-1)/(m+1). z stays negative and bounded away from -1 for any m in
// [0.1,1), so the series converges for every reduced argument.
func lnSeries(m decimal.Decimal, wp int) decimal.Decimal {
	z, _ := decimal.Div(decimal.Sub(m, decimal.One), decimal.Add(m, decimal.One), wp, decimal.ToNearestEven)
	z2 := roundToPrec(decimal.Mul(z, z), wp)

	threshold := decimal.New(1, wp+2)
	sum := z
	term := z
	k := uint64(1)
	for {
		k += 2
		term = roundToPrec(decimal.Mul(term, z2), wp)
		addend, _ := decimal.Div(term, decimal.FromUint64(k), wp, decimal.ToNearestEven)
		sum = decimal.Add(sum, addend)
		if addend.Abs().Cmp(threshold) <= 0 {
			break
		}
	}
	return decimal.Mul(decimal.New(2, 0), sum)
}

// computeLn evaluates ln(x) for x > 0 to prec significant digits, range
// reducing x = m * 10^e with m in [0.1,1) and combining
// ln(x) = ln(m) + e*ln(10). ln(10) itself is obtained from the shared
// cache except when x is exactly 10, where reducing through the cache
// would recurse into this same computation; that one case is solved
// directly as -ln(0.1), which needs no further reduction since 0.1 is
// already in range.
func computeLn(x decimal.Decimal, prec int) decimal.Decimal {
	wp := workingPrecision(prec)

	if x.Cmp(ten) == 0 {
		tenth := lnSeries(decimal.New(1, 1), wp+5)
		return roundToPrec(tenth.Neg(), prec)
	}

	e := adjustedExp(x) + 1
	m, _ := decimal.Div(x, pow10(e), wp+5, decimal.ToNearestEven)
	series := lnSeries(m, wp+5)
	if e == 0 {
		return roundToPrec(series, prec)
	}

	ln10 := Ln10(wp + 5)
	total := decimal.Add(series, decimal.Mul(decimal.FromInt64(int64(e)), ln10))
	return roundToPrec(total, prec)
}

// Ln returns the natural logarithm of x rounded to prec significant
// digits. x must be strictly positive.
func Ln(x decimal.Decimal, prec int) (decimal.Decimal, error) {
	if x.Sign() <= 0 {
		return decimal.Decimal{}, bignumerr.New(bignumerr.DomainError, "ln of non-positive value %s", x)
	}
	return computeLn(x, prec), nil
}

// Log10 returns the base-10 logarithm of x rounded to prec significant
// digits, computed as ln(x)/ln(10) with a couple of guard digits.
func Log10(x decimal.Decimal, prec int) (decimal.Decimal, error) {
	lnx, err := Ln(x, prec+3)
	if err != nil {
		return decimal.Decimal{}, err
	}
	ln10 := Ln10(prec + 3)
	q, err := decimal.Div(lnx, ln10, prec, decimal.ToNearestEven)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return q, nil
}
