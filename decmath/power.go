package decmath

import (
	"github.com/arbprec/bignum/bignumerr"
	"github.com/arbprec/bignum/decimal"
)

// isIntegerValued reports whether d's value has no fractional part, after
// stripping any trailing decadic zeros that would otherwise leave a
// positive scale on an otherwise-integral coefficient (e.g. "2.00").
func isIntegerValued(d decimal.Decimal) bool {
	return d.Normalize().Scale() <= 0
}

// Power returns x^y rounded to prec significant digits. Integer exponents
// (of either sign) take a binary-exponentiation fast path, rounding
// intermediates to working precision; every
// other exponent falls back to exp(y * ln x), which requires x > 0.
// 0**0, a negative base with a non-integer exponent, and 0 raised to a
// negative exponent are domain errors — there is no complex result and
// no signed infinity in this core.
func Power(x, y decimal.Decimal, prec int) (decimal.Decimal, error) {
	if y.IsZero() {
		if x.IsZero() {
			return decimal.Decimal{}, bignumerr.New(bignumerr.DomainError, "0**0 is undefined")
		}
		return decimal.One, nil
	}
	if x.IsZero() {
		if y.Sign() < 0 {
			return decimal.Decimal{}, bignumerr.New(bignumerr.DomainError, "0 cannot be raised to a negative power")
		}
		return decimal.Zero, nil
	}

	if isIntegerValued(y) {
		return integerPower(x, y, prec)
	}

	if x.Sign() < 0 {
		return decimal.Decimal{}, bignumerr.New(bignumerr.DomainError, "negative base %s with non-integer exponent %s", x, y)
	}

	wp := workingPrecision(prec)
	lnx, err := Ln(x, wp)
	if err != nil {
		return decimal.Decimal{}, err
	}
	exponent := roundToPrec(decimal.Mul(y, lnx), wp)
	return roundToPrec(Exp(exponent, wp), prec), nil
}

func integerPower(x, y decimal.Decimal, prec int) (decimal.Decimal, error) {
	wp := workingPrecision(prec)
	yNeg := y.Sign() < 0
	n := nonNegativeIntegerMagnitude(y.Abs())

	result, _ := intPow(x, n, wp)
	result = roundToPrec(result, prec)
	if !yNeg {
		return result, nil
	}
	if result.IsZero() {
		return decimal.Decimal{}, bignumerr.New(bignumerr.DivideByZero, "0 raised to a negative power")
	}
	return decimal.Div(decimal.One, result, prec, decimal.ToNearestEven)
}
