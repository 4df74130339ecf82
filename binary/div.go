package binary

import "github.com/arbprec/bignum/bignumerr"

// §4.1.3 — division. Dispatched by divisor size: single limb, a power of
// two, Knuth's Algorithm D below a cutoff, and slice-based
// Burnikel-Ziegler above it.

// burnikelZieglerThreshold is the divisor size (in limbs) above which
// Burnikel-Ziegler division overtakes Knuth's Algorithm D.
const burnikelZieglerThreshold = 64

// DivMod returns (q, r) such that x = q*y + r, 0 <= r < y. It fails with
// a DivideByZero error if y is zero.
func DivMod(x, y Nat) (q, r Nat, err error) {
	if y.IsZero() {
		return nil, nil, bignumerr.New(bignumerr.DivideByZero, "division by zero")
	}
	if x.Cmp(y) < 0 {
		return Nat(nil).make(0), Nat(nil).set(x), nil
	}
	if len(y) == 1 {
		qq, rr := Nat(nil).divW(x, y[0])
		return qq, Nat(nil).setWord(rr), nil
	}
	if p, k := isPowerOfTwoWords(y); p {
		qq := Nat(nil).shr(x, k)
		rr := Nat(nil).and(x, Nat(nil).sub(y, natOne))
		return qq, rr, nil
	}
	if len(y) >= burnikelZieglerThreshold {
		qq, rr := Nat(nil).divBurnikelZiegler(x, y)
		return qq, rr, nil
	}
	qq, rr := Nat(nil).divKnuth(x, y)
	return qq, rr, nil
}

// isPowerOfTwoWords reports whether y == 2**k for some k, returning k.
func isPowerOfTwoWords(y Nat) (bool, uint) {
	n := len(y)
	for i := 0; i < n-1; i++ {
		if y[i] != 0 {
			return false, 0
		}
	}
	top := y[n-1]
	if top&(top-1) != 0 {
		return false, 0
	}
	return true, uint(n-1)*_W + trailingZeros32(uint32(top))
}

// divWVW divides the multi-limb dividend (x, xn) by the single limb y,
// writing the quotient to z and returning the remainder. xn is the limb
// above x[len(x)-1] (the initial remainder).
func divWVW(z, xn Nat, x Nat, y Word) (r Word) {
	rw := Word(0)
	if len(xn) == 1 {
		rw = xn[0]
	}
	for i := len(x) - 1; i >= 0; i-- {
		hi, lo := rw, x[i]
		q, rem := divWW(hi, lo, y)
		z[i] = q
		rw = rem
	}
	return rw
}

// divWW computes q, r = (hi*B+lo) / y, 0 <= r < y, using a 64-bit wide
// accumulator (hi must be < y).
func divWW(hi, lo, y Word) (q, r Word) {
	n := uint64(hi)<<_W | uint64(lo)
	return Word(n / uint64(y)), Word(n % uint64(y))
}

// divW returns (q, r) = x / y for a single-limb divisor y != 0.
func (z Nat) divW(x Nat, y Word) (q Nat, r Word) {
	m := len(x)
	if m == 0 {
		return z.make(0), 0
	}
	z = z.make(m)
	r = divWVW(z, nil, x, y)
	return z.norm(), r
}

// divKnuth implements Algorithm D (Knuth, TAOCP vol. 2, §4.3.1), with
// 3-by-2 quotient digit estimation and at most two downward corrections
// per digit.
func (z Nat) divKnuth(u, v Nat) (q, r Nat) {
	n := len(v)
	m := len(u) - n

	// normalize: scale u and v by d so that v's top digit >= B/2
	s := nlzWord(v[n-1])
	vn := Nat(nil).shl(v, s)
	vn = vn.make(n) // drop any overflow limb; shl(v,s) cannot overflow since s<_W and top digit shl stays within n limbs after normalization by construction
	un := Nat(nil).make(len(u) + 1)
	un.clear()
	shiftedU := Nat(nil).shl(u, s)
	copy(un, shiftedU)

	qn := Nat(nil).make(m + 1)
	qn.clear()

	vTop, vTop2 := vn[n-1], vn[n-2]

	for j := m; j >= 0; j-- {
		var qhat, rhat uint64
		u2 := wordAt(un, j+n)
		u1 := wordAt(un, j+n-1)
		u0 := wordAt(un, j+n-2)

		num := uint64(u2)<<_W | uint64(u1)
		if u2 == vTop {
			qhat = _M // B-1
			rhat = uint64(u1) + uint64(vTop)
		} else {
			qhat = num / uint64(vTop)
			rhat = num % uint64(vTop)
		}
		for rhat < _B && qhat*uint64(vTop2) > rhat<<_W|uint64(u0) {
			qhat--
			rhat += uint64(vTop)
		}

		// multiply and subtract: un[j:j+n+1] -= qhat * vn
		borrow := mulSub(un[j:j+n+1], vn, Word(qhat))
		if borrow != 0 {
			// qhat was one too large; add back
			qhat--
			c := addVV(un[j:j+n], un[j:j+n], vn)
			un[j+n] += c
		}
		qn[j] = Word(qhat)
	}

	rn := Nat(nil).shr(un[:n], s)
	return qn.norm(), rn.norm()
}

// wordAt returns x[i] or 0 if i is out of range.
func wordAt(x Nat, i int) Word {
	if i < 0 || i >= len(x) {
		return 0
	}
	return x[i]
}

// mulSub computes z[:] -= x * y (z has one more limb than x, to hold the
// final borrow) and returns the final borrow (0 or 1).
func mulSub(z, x Nat, y Word) Word {
	var mulCarry, borrow uint64
	n := len(x)
	for i := 0; i < n; i++ {
		p := uint64(x[i])*uint64(y) + mulCarry
		mulCarry = p >> _W
		lo := p & _M

		sub := lo + borrow
		if uint64(z[i]) >= sub {
			z[i] = Word(uint64(z[i]) - sub)
			borrow = 0
		} else {
			z[i] = Word(uint64(z[i]) + _B - sub)
			borrow = 1
		}
	}
	sub := mulCarry + borrow
	if uint64(z[n]) >= sub {
		z[n] = Word(uint64(z[n]) - sub)
		return 0
	}
	z[n] = Word(uint64(z[n]) + _B - sub)
	return 1
}

func nlzWord(x Word) uint {
	n := uint(0)
	for x&(1<<(_W-1)) == 0 {
		x <<= 1
		n++
	}
	return n
}

//
// §4.1.3 — slice-based Burnikel-Ziegler division.
//
// Expressed as the mutual recursion two-by-one (2n/n -> n,n) in terms of
// three-by-two (3n/2n -> n,2n), bottoming out in prenormalized Knuth D.
// Sub-problems are passed as (vector, start, end) slice views so the
// recursion allocates only the quotient and a shared denormalization
// workspace, never owned copies of the operands.

// divBurnikelZiegler divides u by v (len(v) >= burnikelZieglerThreshold)
// using the Burnikel-Ziegler algorithm, rounding the divisor's block size
// up to an even number of limbs (never to a power of two, which would
// waste close to 2x).
//
// u is processed one n-limb block at a time, most significant block first,
// each block combined with the running remainder into a 2n-limb dividend
// fed to twoByOne; this is the standard top-level driver for the
// recursion described in §4.1.3.
func (z Nat) divBurnikelZiegler(u, v Nat) (q, r Nat) {
	n := len(v)
	if n%2 != 0 {
		n++
	}
	// shift so that v's top bit lands in the top bit of an n-limb block; an
	// odd-length divisor is shifted up by one extra limb
	s := nlzWord(v[len(v)-1]) + uint(n-len(v))*_W
	vNorm := padTo(Nat(nil).shl(v, s), n)
	uNorm := Nat(nil).shl(u, s)

	// one spare block on top, so the leading block (the initial remainder)
	// is always below vNorm
	t := len(uNorm)/n + 1
	uNorm = padTo(uNorm, t*n)

	rem := Nat(nil).make(n)
	rem.clear()
	copy(rem, uNorm[(t-1)*n:t*n])
	rem = rem.norm()

	quotBlocks := make([]Nat, t-1)
	for i := t - 2; i >= 0; i-- {
		block := uNorm[i*n : (i+1)*n]
		dividend := Nat(nil).make(2 * n)
		dividend.clear()
		copy(dividend, block)
		copy(dividend[n:], rem)
		qi, ri := Nat(nil).twoByOne(dividend, vNorm, n)
		quotBlocks[i] = qi
		rem = ri
	}

	quot := Nat(nil).make((t - 1) * n)
	quot.clear()
	for i, qi := range quotBlocks {
		copy(quot[i*n:], qi)
	}

	rn := Nat(nil).shr(rem, s)
	return quot.norm(), rn.norm()
}

// twoByOne performs a 2n/n -> (n,n) division: dividend has exactly 2n
// limbs, divisor exactly n limbs (already normalized, top limb >= B/2).
// It is expressed in terms of threeByTwo per the Burnikel-Ziegler
// recurrence, bottoming out in Knuth D below the recursion threshold.
func (z Nat) twoByOne(dividend, v Nat, n int) (q, r Nat) {
	if n < burnikelZieglerThreshold || n%2 != 0 {
		return Nat(nil).divKnuth(dividend, v)
	}
	h := n / 2
	vHi, vLo := v[h:], v[:h]

	// first 3h-limb slice: top 3h limbs of the 4h-limb dividend.
	d1 := padTo(dividend[h:], 3*h)
	q1, r1 := Nat(nil).threeByTwo(d1, vHi, vLo, h)

	// second 3h-limb slice: r1 (2h limbs) over the bottom h limbs of dividend.
	d2 := Nat(nil).make(3 * h)
	d2.clear()
	copy(d2, dividend[:h])
	copy(d2[h:], r1)
	q2, r2 := Nat(nil).threeByTwo(d2, vHi, vLo, h)

	qOut := Nat(nil).make(n)
	qOut.clear()
	copy(qOut, q2)
	copy(qOut[h:], q1)
	return qOut.norm(), r2.norm()
}

// threeByTwo performs a 3n/2n -> (n, 2n) division, following Burnikel &
// Ziegler's algorithm 2: dividend has exactly 3*half limbs (blocks a2,a1,a0
// from high to low), divisor is (vHi, vLo), each half limbs.
func (z Nat) threeByTwo(dividend, vHi, vLo Nat, half int) (q, r Nat) {
	a2 := padTo(dividend[2*half:], half)
	a1 := dividend[half : 2*half]
	a0 := dividend[:half]

	a21 := Nat(nil).make(2 * half)
	a21.clear()
	copy(a21, a1)
	copy(a21[half:], a2)

	var qhat, r1 Nat
	if Nat(a2).Cmp(vHi) < 0 {
		qhat, r1 = Nat(nil).twoByOne(a21, vHi, half)
	} else {
		// a2 >= vHi: the quotient saturates at B^half - 1 (a2 < B^half by
		// construction, so it can exceed vHi by at most a little).
		qhat = allOnes(half)
		r1, _ = Sub(a21, Nat(nil).mul(vHi, qhat))
	}

	d := Nat(nil).mul(qhat, vLo)
	rNum := Nat(nil).make(half + len(r1))
	rNum.clear()
	copy(rNum, a0)
	copy(rNum[half:], r1)
	rNum = rNum.norm()

	v := Nat(nil).make(2 * half)
	v.clear()
	copy(v, vLo)
	copy(v[half:], vHi)

	for rNum.Cmp(d) < 0 {
		qhat = Nat(nil).sub(qhat, natOne)
		rNum = Nat(nil).add(rNum, v)
	}
	rem, _ := Sub(rNum, d)
	return qhat.norm(), rem.norm()
}

// allOnes returns the n-limb magnitude B^n - 1 (every limb at its maximum).
func allOnes(n int) Nat {
	z := make(Nat, n)
	for i := range z {
		z[i] = _M
	}
	return z
}

func padTo(x Nat, n int) Nat {
	if len(x) >= n {
		return x[:n]
	}
	out := make(Nat, n)
	copy(out, x)
	return out
}
