package decmath

import (
	"github.com/arbprec/bignum/bignumerr"
	"github.com/arbprec/bignum/decimal"
)

// taylorSin evaluates sin(t) for a small argument (post range-reduction,
// |t| <= pi/4) via t - t^3/3! + t^5/5! - ..., each term built from the
// previous by term_k = -term_(k-1) * t^2 / (n*(n-1)).
func taylorSin(t decimal.Decimal, wp int) decimal.Decimal {
	threshold := decimal.New(1, wp+2)
	t2 := roundToPrec(decimal.Mul(t, t), wp)
	term, sum := t, t
	n := uint64(1)
	for {
		n += 2
		term = roundToPrec(decimal.Mul(term, t2), wp)
		term, _ = decimal.Div(term, decimal.FromUint64(n*(n-1)), wp, decimal.ToNearestEven)
		term = term.Neg()
		sum = decimal.Add(sum, term)
		if term.Abs().Cmp(threshold) <= 0 {
			break
		}
	}
	return sum
}

// taylorCos evaluates cos(t) the same way: 1 - t^2/2! + t^4/4! - ...
func taylorCos(t decimal.Decimal, wp int) decimal.Decimal {
	threshold := decimal.New(1, wp+2)
	t2 := roundToPrec(decimal.Mul(t, t), wp)
	term, sum := decimal.One, decimal.One
	n := uint64(0)
	for {
		n += 2
		term = roundToPrec(decimal.Mul(term, t2), wp)
		term, _ = decimal.Div(term, decimal.FromUint64(n*(n-1)), wp, decimal.ToNearestEven)
		term = term.Neg()
		sum = decimal.Add(sum, term)
		if term.Abs().Cmp(threshold) <= 0 {
			break
		}
	}
	return sum
}

// octantTable holds sin/cos of k*pi/4 for k=0..7, the constants needed to
// combine a first-octant Taylor evaluation back up to the full circle via
// the angle-sum identities.
func octantTable(wp int) (sinK, cosK [8]decimal.Decimal) {
	sqrt2 := sqrtPositive(decimal.FromUint64(2), wp)
	half := decimal.New(5, 1)
	s := decimal.Mul(sqrt2, half)
	one, zero, negOne, negS := decimal.One, decimal.Zero, decimal.One.Neg(), s.Neg()
	sinK = [8]decimal.Decimal{zero, s, one, s, zero, negS, negOne, negS}
	cosK = [8]decimal.Decimal{one, s, zero, negS, negOne, negS, zero, s}
	return
}

// sinCos jointly reduces x modulo 2*pi down into the first octant
// [0, pi/4) and recombines sin/cos of the reduced angle with the octant's
// constant via the angle-sum identities.
func sinCos(x decimal.Decimal, prec int) (sinX, cosX decimal.Decimal) {
	wp := workingPrecision(prec)
	pi := Pi(wp + 10)
	twoPi := decimal.Mul(decimal.New(2, 0), pi)
	piOver4, _ := decimal.Div(pi, decimal.FromUint64(4), wp+10, decimal.ToNearestEven)

	_, m, err := decimal.DivModFloor(x, twoPi)
	if err != nil {
		panic("decmath: sinCos: " + err.Error())
	}
	kDec, t, err := decimal.DivModFloor(m, piOver4)
	if err != nil {
		panic("decmath: sinCos: " + err.Error())
	}
	k := int(nonNegativeIntegerMagnitude(kDec)) % 8

	s, c := taylorSin(t, wp+10), taylorCos(t, wp+10)
	sinTable, cosTable := octantTable(wp + 10)
	sk, ck := sinTable[k], cosTable[k]

	sinX = roundToPrec(decimal.Add(decimal.Mul(sk, c), decimal.Mul(ck, s)), prec)
	cosX = roundToPrec(decimal.Sub(decimal.Mul(ck, c), decimal.Mul(sk, s)), prec)
	return
}

// Sin returns sin(x) rounded to prec significant digits.
func Sin(x decimal.Decimal, prec int) decimal.Decimal {
	s, _ := sinCos(x, prec)
	return s
}

// Cos returns cos(x) rounded to prec significant digits.
func Cos(x decimal.Decimal, prec int) decimal.Decimal {
	_, c := sinCos(x, prec)
	return c
}

// Tan returns tan(x) rounded to prec significant digits; undefined where
// cos(x) is zero.
func Tan(x decimal.Decimal, prec int) (decimal.Decimal, error) {
	s, c := sinCos(x, workingPrecision(prec))
	if c.IsZero() {
		return decimal.Decimal{}, bignumerr.New(bignumerr.DomainError, "tan undefined at %s", x)
	}
	q, err := decimal.Div(s, c, prec, decimal.ToNearestEven)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return q, nil
}

// Cot returns cot(x) = cos(x)/sin(x), undefined where sin(x) is zero.
func Cot(x decimal.Decimal, prec int) (decimal.Decimal, error) {
	s, c := sinCos(x, workingPrecision(prec))
	if s.IsZero() {
		return decimal.Decimal{}, bignumerr.New(bignumerr.DomainError, "cot undefined at %s", x)
	}
	return decimal.Div(c, s, prec, decimal.ToNearestEven)
}

// Sec returns sec(x) = 1/cos(x), undefined where cos(x) is zero.
func Sec(x decimal.Decimal, prec int) (decimal.Decimal, error) {
	_, c := sinCos(x, workingPrecision(prec))
	if c.IsZero() {
		return decimal.Decimal{}, bignumerr.New(bignumerr.DomainError, "sec undefined at %s", x)
	}
	return decimal.Div(decimal.One, c, prec, decimal.ToNearestEven)
}

// Csc returns csc(x) = 1/sin(x), undefined where sin(x) is zero.
func Csc(x decimal.Decimal, prec int) (decimal.Decimal, error) {
	s, _ := sinCos(x, workingPrecision(prec))
	if s.IsZero() {
		return decimal.Decimal{}, bignumerr.New(bignumerr.DomainError, "csc undefined at %s", x)
	}
	return decimal.Div(decimal.One, s, prec, decimal.ToNearestEven)
}
