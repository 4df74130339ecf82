package bigint

import (
	"github.com/arbprec/bignum/bignumerr"
	"github.com/arbprec/bignum/binary"
)

// Add returns x+y. Sign logic per §4.2: like signs add magnitudes and
// keep the common sign; unlike signs subtract the smaller magnitude from
// the larger and take the sign of the larger.
func Add(x, y Int) Int {
	if x.neg == y.neg {
		return normSign(x.neg, binary.Add(x.abs, y.abs))
	}
	switch x.abs.Cmp(y.abs) {
	case 0:
		return Zero
	case 1:
		d, _ := binary.Sub(x.abs, y.abs)
		return normSign(x.neg, d)
	default:
		d, _ := binary.Sub(y.abs, x.abs)
		return normSign(y.neg, d)
	}
}

// Sub returns x-y.
func Sub(x, y Int) Int { return Add(x, y.Neg()) }

// Mul returns x*y.
func Mul(x, y Int) Int {
	return normSign(x.neg != y.neg, binary.Mul(x.abs, y.abs))
}

// Incr returns x+1 via the short-circuiting accumulator fast path named in
// §4.2: when x is non-negative this is the magnitude's own incr loop; when
// x is negative it is ordinary subtraction of one from the magnitude.
func Incr(x Int) Int {
	if !x.neg {
		return normSign(false, binary.Incr(x.abs))
	}
	d, err := binary.Sub(x.abs, binary.FromUint64(1))
	if err != nil {
		// x.abs == 0 would mean x was +0, contradicting x.neg
		panic("bigint: Incr: inconsistent sign on zero magnitude")
	}
	return normSign(true, d)
}

// DivModFloor returns (q, r) such that x = q*y + r and
// 0 <= r < |y| when y>0, or |y| < r <= 0 when y<0 — the floor-division
// convention of §4.2.
func DivModFloor(x, y Int) (q, r Int, err error) {
	qt, rt, derr := DivModTrunc(x, y)
	if derr != nil {
		return Int{}, Int{}, derr
	}
	if rt.IsZero() || rt.Sign() == y.Sign() {
		return qt, rt, nil
	}
	// truncated quotient rounds toward zero but the true quotient is
	// negative and non-integer: floor rounds one further toward -inf
	return Sub(qt, One), Add(rt, y), nil
}

// DivModTrunc returns (q, r) such that x = q*y + r with q rounded toward
// zero (the sign of r matches the sign of x, or r is zero).
func DivModTrunc(x, y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, bignumerr.New(bignumerr.DivideByZero, "division by zero")
	}
	qa, ra, derr := binary.DivMod(x.abs, y.abs)
	if derr != nil {
		return Int{}, Int{}, derr
	}
	return normSign(x.neg != y.neg, qa), normSign(x.neg, ra), nil
}

// Sqrt returns floor(sqrt(x)). Fails with domain-error if x is negative.
func Sqrt(x Int) (Int, error) {
	if x.neg {
		return Int{}, bignumerr.New(bignumerr.DomainError, "sqrt of negative integer %s", x)
	}
	return normSign(false, binary.Sqrt(x.abs)), nil
}

// Exp returns x**n for a non-negative integer n, via right-to-left binary
// exponentiation. When x == 2, this is detected and short-circuited to a
// single left shift for O(bits) cost instead of O(log n) multiplications.
func Exp(x Int, n uint64) Int {
	if n == 0 {
		return One
	}
	if x.Cmp(FromInt64(2)) == 0 {
		return normSign(false, binary.Shl(binary.FromUint64(1), uint(n)))
	}
	neg := x.neg && n%2 == 1
	result := binary.FromUint64(1)
	base := x.abs
	for n > 0 {
		if n&1 == 1 {
			result = binary.Mul(result, base)
		}
		base = binary.Mul(base, base)
		n >>= 1
	}
	return normSign(neg, result)
}
