package decmath

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arbprec/bignum/bignumerr"
	"github.com/arbprec/bignum/decimal"
)

// pow10 returns 10^n as an exact Decimal, n may be negative.
func pow10(n int) decimal.Decimal { return decimal.New(1, -n) }

// floatMantissa renders x's leading ~17 significant digits as d.ddddd,
// the most a float64 can usefully resolve, for bootstrapping Newton
// iterations with a machine-precision starting guess.
func floatMantissa(x decimal.Decimal) (mantissa float64, adjustedExp int) {
	tup := x.AsTuple()
	digits := tup.Digits
	var sb strings.Builder
	sb.WriteByte('0' + digits[0])
	if len(digits) > 1 {
		sb.WriteByte('.')
		limit := len(digits)
		if limit > 18 {
			limit = 18
		}
		for i := 1; i < limit; i++ {
			sb.WriteByte('0' + digits[i])
		}
	}
	m, _ := strconv.ParseFloat(sb.String(), 64)
	adjustedExp = len(digits) - 1 + tup.Exponent
	return m, adjustedExp
}

func decimalFromFloat(f float64) decimal.Decimal {
	d, err := decimal.Parse(fmt.Sprintf("%.17g", f))
	if err != nil {
		panic("decmath: decimalFromFloat: " + err.Error())
	}
	return d
}

// inverseSqrtGuess returns a machine-precision approximation of 1/sqrt(x)
// for positive x, used only to seed Newton iteration.
func inverseSqrtGuess(x decimal.Decimal) decimal.Decimal {
	m, e := floatMantissa(x)
	if e%2 != 0 {
		m *= 10
		e--
	}
	half := e / 2
	return decimal.Mul(decimalFromFloat(1/math.Sqrt(m)), pow10(-half))
}

// sqrtPositive computes sqrt(x) to prec significant digits for x > 0 via
// reciprocal Newton iteration (Karatsuba's method): iterate
// y := y*(3 - x*y^2)/2 toward 1/sqrt(x), doubling working precision each
// step, then recover sqrt(x) = x*y. Using the reciprocal avoids dividing
// by the running estimate; the only division in each step is the halving.
// An exact root is returned with its trailing fractional zeros removed.
func sqrtPositive(x decimal.Decimal, prec int) decimal.Decimal {
	wp := workingPrecision(prec)
	y := inverseSqrtGuess(x)
	three := decimal.New(3, 0)
	two := decimal.New(2, 0)

	curPrec := 17
	for {
		if curPrec > wp {
			curPrec = wp
		}
		y2 := decimal.Mul(y, y)
		inner := decimal.Sub(three, decimal.Mul(x, y2))
		prod := decimal.Mul(y, inner)
		next, err := decimal.Div(prod, two, curPrec+2, decimal.ToNearestEven)
		if err != nil {
			panic("decmath: sqrtPositive: " + err.Error())
		}
		y = next
		if curPrec >= wp {
			break
		}
		curPrec *= 2
	}

	result := decimal.Mul(x, y)
	if excess := result.DigitCount() - prec; excess > 0 {
		result = decimal.Round(result, result.Scale()-excess, decimal.ToNearestEven)
	}
	s := result.Normalize().Scale()
	if s < 0 {
		s = 0
	}
	if r := decimal.Round(result, s, decimal.ToNearestEven); decimal.Mul(r, r).Cmp(x) == 0 {
		return r
	}
	return result
}

// Sqrt returns the square root of x rounded to prec significant digits.
// A negative x is a domain error: this core has no complex type.
func Sqrt(x decimal.Decimal, prec int) (decimal.Decimal, error) {
	if x.Sign() < 0 {
		return decimal.Decimal{}, bignumerr.New(bignumerr.DomainError, "sqrt of negative value %s", x)
	}
	if x.IsZero() {
		return decimal.Zero, nil
	}
	return sqrtPositive(x, prec), nil
}

// rootPositive computes the real n-th root of positive x via Newton
// iteration on f(y) = y^n - x: y := ((n-1)*y + x/y^(n-1)) / n. An exact
// root is returned with its trailing fractional zeros removed.
func rootPositive(x decimal.Decimal, n uint64, prec int) decimal.Decimal {
	wp := workingPrecision(prec)
	m, e := floatMantissa(x)
	q, r := e/int(n), e%int(n)
	guessFloat := math.Pow(m*math.Pow(10, float64(r)), 1/float64(n))
	// Newton converges regardless of how rough the seed is; this fallback
	// only guards against a degenerate float64 overflow/underflow seed.
	if guessFloat <= 0 || math.IsNaN(guessFloat) || math.IsInf(guessFloat, 0) {
		guessFloat = 1
	}
	y := decimal.Mul(decimalFromFloat(guessFloat), pow10(q))
	if y.IsZero() {
		y = decimal.New(1, -q)
	}

	nDec := decimal.FromUint64(n)
	nMinus1 := decimal.FromUint64(n - 1)

	curPrec := 17
	for {
		if curPrec > wp {
			curPrec = wp
		}
		yPow, err := intPow(y, n-1, curPrec+2)
		if err != nil {
			panic("decmath: rootPositive: " + err.Error())
		}
		xOverYPow, err := decimal.Div(x, yPow, curPrec+2, decimal.ToNearestEven)
		if err != nil {
			panic("decmath: rootPositive: " + err.Error())
		}
		numerator := decimal.Add(decimal.Mul(nMinus1, y), xOverYPow)
		next, err := decimal.Div(numerator, nDec, curPrec+2, decimal.ToNearestEven)
		if err != nil {
			panic("decmath: rootPositive: " + err.Error())
		}
		y = next
		if curPrec >= wp {
			break
		}
		curPrec *= 2
	}

	if excess := y.DigitCount() - prec; excess > 0 {
		y = decimal.Round(y, y.Scale()-excess, decimal.ToNearestEven)
	}
	s := y.Normalize().Scale()
	if s < 0 {
		s = 0
	}
	root := decimal.Round(y, s, decimal.ToNearestEven)
	if p, _ := intPow(root, n, root.DigitCount()*int(n)+1); p.Cmp(x) == 0 {
		return root
	}
	return y
}

// intPow raises a Decimal to a non-negative integer power via binary
// exponentiation with intermediate rounding to keep coefficients from
// growing unboundedly across iterations.
func intPow(x decimal.Decimal, n uint64, prec int) (decimal.Decimal, error) {
	result := decimal.One
	base := x
	for n > 0 {
		if n&1 == 1 {
			result = roundToPrec(decimal.Mul(result, base), prec)
		}
		n >>= 1
		if n > 0 {
			base = roundToPrec(decimal.Mul(base, base), prec)
		}
	}
	return result, nil
}

func roundToPrec(d decimal.Decimal, prec int) decimal.Decimal {
	excess := d.DigitCount() - prec
	if excess <= 0 {
		return d
	}
	return decimal.Round(d, d.Scale()-excess, decimal.ToNearestEven)
}

// Root returns the real n-th root of x rounded to prec significant
// digits. An even root of a negative number is a domain error; a zero
// root is always a domain error regardless of x.
func Root(x decimal.Decimal, n uint64, prec int) (decimal.Decimal, error) {
	if n == 0 {
		return decimal.Decimal{}, bignumerr.New(bignumerr.DomainError, "0th root is undefined")
	}
	if x.IsZero() {
		return decimal.Zero, nil
	}
	if x.Sign() < 0 {
		if n%2 == 0 {
			return decimal.Decimal{}, bignumerr.New(bignumerr.DomainError, "even root of negative value %s", x)
		}
		r := rootPositive(x.Neg(), n, prec)
		return r.Neg(), nil
	}
	if n == 1 {
		return x, nil
	}
	if n == 2 {
		return sqrtPositive(x, prec), nil
	}
	return rootPositive(x, n, prec), nil
}
