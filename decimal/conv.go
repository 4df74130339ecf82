package decimal

import (
	"math"
	"strconv"

	"github.com/arbprec/bignum/bignumerr"
	"github.com/arbprec/bignum/dmag"
)

// integerMagnitude returns d's coefficient scaled to an integer (value *
// 10**scale folded in) and whether that scaling was exact, i.e. whether d
// actually represents a whole number.
func (d Decimal) integerMagnitude() (mag dmag.Dec, exact bool) {
	if d.scale <= 0 {
		return dmag.ScaleUp(d.coef, -d.scale), true
	}
	q, r := dmag.ScaleDown(d.coef, d.scale)
	return q, r.IsZero()
}

// Int64 returns d as a native signed 64-bit integer. It fails with
// ParseNotInteger if d has a nonzero fractional part and with
// OverflowToNative if the whole-number value doesn't fit in an int64.
func (d Decimal) Int64() (int64, error) {
	mag, exact := d.integerMagnitude()
	if !exact {
		return 0, bignumerr.New(bignumerr.ParseNotInteger, "%s has a nonzero fractional part", d)
	}
	u, ok := mag.Uint64()
	if !ok {
		return 0, bignumerr.New(bignumerr.OverflowToNative, "%s overflows int64", d)
	}
	if d.neg {
		if u > 1<<63 {
			return 0, bignumerr.New(bignumerr.OverflowToNative, "%s overflows int64", d)
		}
		return -int64(u), nil
	}
	if u >= 1<<63 {
		return 0, bignumerr.New(bignumerr.OverflowToNative, "%s overflows int64", d)
	}
	return int64(u), nil
}

// Uint64 returns d as a native unsigned 64-bit integer. It fails with
// DomainError if d is negative, ParseNotInteger if d has a nonzero
// fractional part, and OverflowToNative if the value doesn't fit.
func (d Decimal) Uint64() (uint64, error) {
	if d.neg && !d.IsZero() {
		return 0, bignumerr.New(bignumerr.DomainError, "%s is negative", d)
	}
	mag, exact := d.integerMagnitude()
	if !exact {
		return 0, bignumerr.New(bignumerr.ParseNotInteger, "%s has a nonzero fractional part", d)
	}
	u, ok := mag.Uint64()
	if !ok {
		return 0, bignumerr.New(bignumerr.OverflowToNative, "%s overflows uint64", d)
	}
	return u, nil
}

// Float64 renders d through its canonical decimal string, the same path
// Parse and String use, rather than reconstructing a float bit pattern
// from the coefficient directly: the string form is already the single
// source of truth for what d "means" externally.
func (d Decimal) Float64() (float64, error) {
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		return 0, bignumerr.New(bignumerr.OverflowToNative, "%s does not fit a float64: %v", d, err)
	}
	return f, nil
}

// FromFloat64 builds a Decimal from x's canonical shortest decimal string
// (strconv's round-trippable rendering). NaN and infinities have no
// representation in this core and are a domain error.
func FromFloat64(x float64) (Decimal, error) {
	if math.IsNaN(x) {
		return Decimal{}, bignumerr.New(bignumerr.DomainError, "NaN has no decimal representation")
	}
	if math.IsInf(x, 0) {
		return Decimal{}, bignumerr.New(bignumerr.DomainError, "infinity has no decimal representation")
	}
	return Parse(strconv.FormatFloat(x, 'g', -1, 64))
}
