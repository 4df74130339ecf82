package dmag

import "github.com/arbprec/bignum/bignumerr"

// §4.1.3, decadic flavour: single-limb division and Knuth's Algorithm D.
//
// The binary kernel's Burnikel-Ziegler path above a size threshold relies
// on normalizing the divisor's top limb to >= B/2 via a power-of-two bit
// shift, which has no equivalent here: _DB = 10**9 is not a power of two,
// so normalization has to scale by an arbitrary multiplier d in [1, _DB)
// rather than shift bits, and that changes both the recursive split and
// the quotient-digit correction bounds enough that porting
// Burnikel-Ziegler block-for-block isn't a small adaptation. Schoolbook
// Knuth-D (scaled the same way, via multiplication instead of shift)
// already amortizes well against Toom-Cook-3 multiplication for the
// operand sizes this kernel is expected to see, so the decadic divisor
// path stops at Algorithm D; only a future large-scale need would justify
// reimplementing Burnikel-Ziegler's multiplicative normalization here.

// DivMod returns (q, r) such that x = q*y + r, 0 <= r < y.
func DivMod(x, y Dec) (q, r Dec, err error) {
	if y.IsZero() {
		return nil, nil, bignumerr.New(bignumerr.DivideByZero, "division by zero")
	}
	if x.Cmp(y) < 0 {
		return Dec(nil).make(0), Dec(nil).set(x), nil
	}
	if len(y) == 1 {
		qq, rr := Dec(nil).divW(x, y[0])
		return qq, Dec(nil).setWord(rr), nil
	}
	qq, rr := Dec(nil).divKnuth(x, y)
	return qq, rr, nil
}

// divWVW divides the multi-limb dividend x by the single limb y, writing
// the quotient to z and returning the remainder.
func divWVW(z, x Dec, y Word) (r Word) {
	var rw uint64
	for i := len(x) - 1; i >= 0; i-- {
		cur := rw*_DB + uint64(x[i])
		z[i] = Word(cur / uint64(y))
		rw = cur % uint64(y)
	}
	return Word(rw)
}

// divW returns (q, r) = x / y for a single-limb divisor y != 0.
func (z Dec) divW(x Dec, y Word) (q Dec, r Word) {
	m := len(x)
	if m == 0 {
		return z.make(0), 0
	}
	z = z.make(m)
	r = divWVW(z, x, y)
	return z.norm(), r
}

// mulByScalar multiplies x by the native scalar d; used to apply and undo Knuth normalization (d is always < _DB).
func mulByScalar(x Dec, d uint64) Dec {
	z := Dec(nil).make(len(x) + 1)
	var c uint64
	for i, xi := range x {
		p := uint64(xi)*d + c
		z[i] = Word(p % _DB)
		c = p / _DB
	}
	z[len(x)] = Word(c)
	return z.norm()
}

// divKnuth implements Algorithm D (Knuth, TAOCP vol. 2, §4.3.1) for radix
// _DB, with 3-by-2 quotient digit estimation. Normalization scales both
// operands by a native multiplier d = _DB / (v's top limb + 1) so the
// divisor's top limb is >= _DB/2, the multiplicative analogue of the
// binary kernel's bit-shift normalization.
func (z Dec) divKnuth(u, v Dec) (q, r Dec) {
	n := len(v)
	m := len(u) - n

	d := uint64(_DB) / (uint64(v[n-1]) + 1)
	vn := mulByScalar(v, d)
	vn = padTo(vn, n)
	un := padTo(mulByScalar(u, d), len(u)+1)

	qn := Dec(nil).make(m + 1)
	qn.clear()

	vTop, vTop2 := vn[n-1], vn[n-2]

	for j := m; j >= 0; j-- {
		var qhat, rhat uint64
		u2 := wordAt(un, j+n)
		u1 := wordAt(un, j+n-1)
		u0 := wordAt(un, j+n-2)

		num := uint64(u2)*_DB + uint64(u1)
		if uint64(u2) == uint64(vTop) {
			qhat = _DM
			rhat = uint64(u1) + uint64(vTop)
		} else {
			qhat = num / uint64(vTop)
			rhat = num % uint64(vTop)
		}
		for rhat < _DB && qhat*uint64(vTop2) > rhat*_DB+uint64(u0) {
			qhat--
			rhat += uint64(vTop)
		}

		borrow := mulSub(un[j:j+n+1], vn, qhat)
		if borrow != 0 {
			qhat--
			c := addVV(un[j:j+n], un[j:j+n], vn)
			un[j+n] = Word((uint64(un[j+n]) + uint64(c)) % _DB)
		}
		qn[j] = Word(qhat)
	}

	remScaled := padTo(un[:n], n).norm()
	rn, _ := Dec(nil).divW(remScaled, Word(d))
	return qn.norm(), rn.norm()
}

func wordAt(x Dec, i int) Word {
	if i < 0 || i >= len(x) {
		return 0
	}
	return x[i]
}

// mulSub computes z[:] -= x * y (z has one more limb than x, to hold the
// final borrow) and returns the final borrow (0 or 1). y may exceed a
// single limb's natural range during the qhat trial subtraction, so the
// multiply is done in uint64 throughout.
func mulSub(z, x Dec, y uint64) Word {
	var mulCarry, borrow uint64
	n := len(x)
	for i := 0; i < n; i++ {
		p := uint64(x[i])*y + mulCarry
		mulCarry = p / _DB
		lo := p % _DB

		sub := lo + borrow
		if uint64(z[i]) >= sub {
			z[i] = Word(uint64(z[i]) - sub)
			borrow = 0
		} else {
			z[i] = Word(uint64(z[i]) + _DB - sub)
			borrow = 1
		}
	}
	sub := mulCarry + borrow
	if uint64(z[n]) >= sub {
		z[n] = Word(uint64(z[n]) - sub)
		return 0
	}
	z[n] = Word(uint64(z[n]) + _DB - sub)
	return 1
}

func padTo(x Dec, n int) Dec {
	if len(x) >= n {
		return x[:n]
	}
	out := make(Dec, n)
	copy(out, x)
	return out
}
