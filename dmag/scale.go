package dmag

// §4.1.6 — scaling by a power of ten. Because the decadic kernel's limbs
// already hold exactly 9 decimal digits, scaling by 10**n decomposes into
// a whole-limb shift (n/9) composed with a single-limb multiply or divide
// by a power of ten smaller than a limb (n%9), rather than the general
// multi-limb multiply/divide used elsewhere.

var pow10Small = [_DW + 1]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}

// ScaleUp returns x * 10**n.
func ScaleUp(x Dec, n int) Dec {
	if x.IsZero() || n == 0 {
		return x
	}
	q, r := n/_DW, n%_DW
	z := x
	if r != 0 {
		z = mulByScalar(z, pow10Small[r])
	}
	if q == 0 {
		return z.norm()
	}
	shifted := Dec(nil).make(len(z) + q)
	shifted.clear()
	copy(shifted[q:], z)
	return shifted.norm()
}

// ScaleDown returns (x / 10**n, x mod 10**n): x floor-divided by 10**n and
// the digits that fell off the bottom.
func ScaleDown(x Dec, n int) (q, r Dec) {
	if x.IsZero() || n == 0 {
		return x, Dec(nil)
	}
	whole, rem := n/_DW, n%_DW
	var loLimbs Dec
	if whole >= len(x) {
		loLimbs = Dec(nil).set(x)
		x = Dec(nil)
	} else {
		loLimbs = Dec(nil).set(x[:whole])
		x = x[whole:]
	}
	if rem == 0 {
		return x.norm(), loLimbs.norm()
	}
	hi, rw := Dec(nil).divW(x, Word(pow10Small[rem]))
	loCarry := Dec(nil).make(whole + 1)
	loCarry.clear()
	copy(loCarry, loLimbs)
	loCarry[whole] = rw
	return hi.norm(), loCarry.norm()
}

// TrimTrailingZeroDigits returns (y, k) where y = x / 10**k and k is the
// largest value for which that division is exact — the decadic analogue
// of stripping trailing zero bits, used by the decimal layer to minimize
// a coefficient's scale.
func TrimTrailingZeroDigits(x Dec) (y Dec, k int) {
	if x.IsZero() {
		return x, 0
	}
	limbsZero := 0
	for limbsZero < len(x) && x[limbsZero] == 0 {
		limbsZero++
	}
	k = limbsZero * _DW
	top := x[limbsZero]
	for top != 0 && top%10 == 0 {
		top /= 10
		k++
	}
	q, _ := ScaleDown(Dec(nil).set(x), k)
	return q.norm(), k
}
