package bigint

import "github.com/arbprec/bignum/bignumerr"

// Gcd computes gcd(a, b) (always non-negative) via Stein's binary GCD:
// repeatedly strip common factors of two, then reduce by subtracting the
// smaller (odd) operand from the larger, which needs no division.
func Gcd(a, b Int) Int {
	a, b = a.Abs(), b.Abs()
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	shift := uint(0)
	for isEven(a) && isEven(b) {
		a = Shr(a, 1)
		b = Shr(b, 1)
		shift++
	}
	for isEven(a) {
		a = Shr(a, 1)
	}
	for !b.IsZero() {
		for isEven(b) {
			b = Shr(b, 1)
		}
		if a.Cmp(b) > 0 {
			a, b = b, a
		}
		b = Sub(b, a)
	}
	return Shl(a, shift)
}

func isEven(x Int) bool {
	return x.abs.IsZero() || x.abs[0]&1 == 0
}

// ExtGcd returns (g, u, v) such that u*a + v*b == g == gcd(a, b), via the
// standard iterative extended Euclidean algorithm.
func ExtGcd(a, b Int) (g, u, v Int) {
	oldR, r := a, b
	oldU, curU := One, Zero
	oldV, curV := Zero, One
	for !r.IsZero() {
		q, rem, err := DivModTrunc(oldR, r)
		if err != nil {
			panic(err) // r != 0 by the loop condition
		}
		oldR, r = r, rem
		oldU, curU = curU, Sub(oldU, Mul(q, curU))
		oldV, curV = curV, Sub(oldV, Mul(q, curV))
	}
	if oldR.neg {
		oldR, oldU, oldV = oldR.Neg(), oldU.Neg(), oldV.Neg()
	}
	return oldR, oldU, oldV
}

// Lcm returns lcm(a, b) = (|a| / gcd(a,b)) * |b|. Returns zero if either
// operand is zero.
func Lcm(a, b Int) Int {
	if a.IsZero() || b.IsZero() {
		return Zero
	}
	g := Gcd(a, b)
	q, _, err := DivModTrunc(a.Abs(), g)
	if err != nil {
		panic(err) // g divides a exactly and g != 0
	}
	return Mul(q, b.Abs())
}

// ModPow computes base**exp mod m (exp >= 0), reducing modulo m at every
// squaring step so intermediates stay below m**2.
func ModPow(base, exp, m Int) (Int, error) {
	if m.IsZero() {
		return Int{}, bignumerr.New(bignumerr.DivideByZero, "modulus is zero")
	}
	if exp.neg {
		return Int{}, bignumerr.New(bignumerr.DomainError, "negative exponent %s in ModPow", exp)
	}
	_, base, err := DivModFloor(base, m)
	if err != nil {
		return Int{}, err
	}
	result := One
	if m.Cmp(One) == 0 {
		return Zero, nil
	}
	e := exp
	for !e.IsZero() {
		if !isEven(e) {
			_, result, err = DivModFloor(Mul(result, base), m)
			if err != nil {
				return Int{}, err
			}
		}
		_, base, err = DivModFloor(Mul(base, base), m)
		if err != nil {
			return Int{}, err
		}
		e = Shr(e, 1)
	}
	return result, nil
}

// ModInverse returns x such that a*x ≡ 1 (mod m), failing with
// not-invertible if gcd(a, m) != 1.
func ModInverse(a, m Int) (Int, error) {
	g, u, _ := ExtGcd(a, m)
	if g.Cmp(One) != 0 {
		return Int{}, bignumerr.New(bignumerr.NotInvertible, "gcd(%s, %s) = %s != 1", a, m, g)
	}
	_, inv, err := DivModFloor(u, m)
	if err != nil {
		return Int{}, err
	}
	return inv, nil
}
