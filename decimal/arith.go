package decimal

import (
	"github.com/arbprec/bignum/bignumerr"
	"github.com/arbprec/bignum/dmag"
)

// Add aligns coefficients to the common maximum scale and adds or
// subtracts the signed magnitudes; the result's scale is that maximum and
// nothing is normalized away.
func Add(a, b Decimal) Decimal {
	ac, bc, scale := alignCoefs(a, b)
	if a.neg == b.neg {
		return normSign(a.neg, dmag.Add(ac, bc), scale)
	}
	switch ac.Cmp(bc) {
	case 0:
		return Decimal{}
	case 1:
		d, _ := dmag.Sub(ac, bc)
		return normSign(a.neg, d, scale)
	default:
		d, _ := dmag.Sub(bc, ac)
		return normSign(b.neg, d, scale)
	}
}

func Sub(a, b Decimal) Decimal { return Add(a, b.Neg()) }

// Mul multiplies coefficients and adds scales; always exact.
func Mul(a, b Decimal) Decimal {
	return normSign(a.neg != b.neg, dmag.Mul(a.coef, b.coef), a.scale+b.scale)
}

// DivModTrunc divides a by b, aligning coefficients to a common scale and
// truncating the quotient toward zero; the quotient is an integer
// (scale 0), the remainder keeps the aligned scale.
func DivModTrunc(a, b Decimal) (q, r Decimal, err error) {
	if b.coef.IsZero() {
		return Decimal{}, Decimal{}, bignumerr.New(bignumerr.DivideByZero, "decimal division by zero")
	}
	ac, bc, scale := alignCoefs(a, b)
	qa, ra, derr := dmag.DivMod(ac, bc)
	if derr != nil {
		return Decimal{}, Decimal{}, derr
	}
	return normSign(a.neg != b.neg, qa, 0), normSign(a.neg, ra, scale), nil
}

// DivModFloor is DivModTrunc adjusted so the quotient rounds toward -inf,
// mirroring the signed-integer layer's floor-division adjustment.
func DivModFloor(a, b Decimal) (q, r Decimal, err error) {
	qt, rt, err := DivModTrunc(a, b)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	if !rt.coef.IsZero() && rt.neg != b.neg {
		qt = Sub(qt, One)
		rt = Add(rt, b)
	}
	return qt, rt, nil
}

// Div computes a/b rounded to exactly `precision` significant digits
// under the given rounding mode. Internally it computes a scaled integer
// division with a couple of guard digits beyond the requested precision,
// then rounds down to precision — the same guard-digit discipline used
// throughout the transcendental layer.
func Div(a, b Decimal, precision int, mode RoundingMode) (Decimal, error) {
	if b.coef.IsZero() {
		return Decimal{}, bignumerr.New(bignumerr.DivideByZero, "decimal division by zero")
	}
	if a.coef.IsZero() {
		return Decimal{}, nil
	}
	resultNeg := a.neg != b.neg

	aDigits, bDigits := a.DigitCount(), b.DigitCount()
	shift := precision + 2 + bDigits - aDigits
	if shift < 0 {
		shift = 0
	}
	scaledA := dmag.ScaleUp(a.coef, shift)
	q, _, derr := dmag.DivMod(scaledA, b.coef)
	if derr != nil {
		return Decimal{}, derr
	}
	resultScale := a.scale - b.scale + shift

	excess := q.Digits() - precision
	if excess <= 0 {
		return normSign(resultNeg, q, resultScale), nil
	}
	rounded := roundDrop(q, excess, resultNeg, mode)
	return normSign(resultNeg, rounded, resultScale-excess), nil
}

// Round rounds d to nFrac fractional digits (nFrac may be negative, e.g.
// to round to the nearest hundred).
func Round(d Decimal, nFrac int, mode RoundingMode) Decimal {
	drop := d.scale - nFrac
	if drop <= 0 {
		return normSign(d.neg, dmag.ScaleUp(d.coef, -drop), nFrac)
	}
	rounded := roundDrop(d.coef, drop, d.neg, mode)
	return normSign(d.neg, rounded, nFrac)
}

// Quantize adopts template's scale exactly, rounding the coefficient
// accordingly (growing it with exact trailing zeros if template's scale
// asks for more fractional digits than d currently carries).
func Quantize(d, template Decimal, mode RoundingMode) Decimal {
	return Round(d, template.scale, mode)
}
