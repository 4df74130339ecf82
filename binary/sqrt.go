package binary

// §4.1.7 — integer square root. Three regimes: a hardware path for
// operands that fit in 64 bits, a direct Newton iteration for operands
// up to a few limbs, and precision-doubling Newton (each iteration only
// as wide as the current estimate, doubling toward full width) beyond
// that, so the early iterations of a huge sqrt don't pay full-width
// multiplication cost.

// sqrtDoublingThreshold is the operand size (in limbs) above which Sqrt
// switches from flat Newton iteration to precision-doubling.
const sqrtDoublingThreshold = 16

// Sqrt returns floor(sqrt(x)).
func Sqrt(x Nat) Nat {
	if x.IsZero() {
		return Nat(nil).make(0)
	}
	if v, ok := x.Uint64(); ok {
		return Nat(nil).setUint64(sqrtUint64(v))
	}
	if len(x) <= sqrtDoublingThreshold {
		return sqrtNewton(x)
	}
	return sqrtDoubling(x)
}

// sqrtUint64 computes floor(sqrt(v)) for native operands via a hardware
// float seed refined by integer Newton steps (the seed can be off by a
// handful of ULPs near 2**52, so the refinement loop is load-bearing,
// not cosmetic).
func sqrtUint64(v uint64) uint64 {
	if v < 2 {
		return v
	}
	r := uint64(isqrtSeed(v))
	for {
		if r == 0 {
			r = 1
		}
		next := (r + v/r) / 2
		if next >= r {
			break
		}
		r = next
	}
	for r*r > v {
		r--
	}
	for r < 1<<32-1 && (r+1)*(r+1) <= v {
		r++
	}
	return r
}

func isqrtSeed(v uint64) uint64 {
	f := float64(v)
	s := uint64(sqrtFloat(f))
	return s
}

// sqrtFloat approximates math.Sqrt by float64 Newton iteration, avoiding
// the math package for a single call; its result can differ from math.Sqrt
// in the last bits, which the integer correction in sqrtUint64 absorbs.
func sqrtFloat(x float64) float64 {
	if x == 0 {
		return 0
	}
	z := x
	for i := 0; i < 64; i++ {
		next := 0.5 * (z + x/z)
		if next == z {
			break
		}
		z = next
	}
	return z
}

// sqrtNewton computes floor(sqrt(x)) by direct Newton iteration,
// r[k+1] = (r[k] + x/r[k]) / 2, starting from a bit-length estimate and
// iterating at full precision until convergence.
func sqrtNewton(x Nat) Nat {
	r := initialGuess(x)
	for {
		q, _, err := DivMod(x, r)
		if err != nil {
			panic(err)
		}
		sum := Add(r, q)
		next := Shr(sum, 1)
		if next.Cmp(r) >= 0 {
			break
		}
		r = next
	}
	for {
		sq := Mul(r, r)
		if sq.Cmp(x) <= 0 {
			break
		}
		r, _ = Sub(r, natOne)
	}
	for {
		next := Incr(r)
		if Mul(next, next).Cmp(x) > 0 {
			break
		}
		r = next
	}
	return r
}

// sqrtDoubling computes floor(sqrt(x)) via Newton's method on the
// square root itself, doubling working precision each round: start
// from a low-precision seed (computed by sqrtNewton on the top limbs)
// and repeatedly refine at twice the limb-width until the full operand
// is covered, so early rounds multiply small operands instead of
// full-width ones.
func sqrtDoubling(x Nat) Nat {
	totalBits := x.BitLen()

	// seed precision: enough bits that sqrtNewton on the truncated top
	// stays comfortably below the flat-Newton threshold.
	prec := uint(sqrtDoublingThreshold/2) * _W
	if prec == 0 || prec >= uint(totalBits) {
		return sqrtNewton(x)
	}

	// k counts the low bits of x left out at the current precision; it is
	// kept even, so that sqrt(x >> k) scales to sqrt(x) by exactly 2**(k/2)
	k := uint(totalBits) - prec
	k += k & 1
	r := sqrtNewton(Shr(x, k))

	for k > 0 {
		next := uint(0)
		if 2*k > uint(totalBits) {
			next = 2*k - uint(totalBits)
			next += next & 1
		}
		r = Shl(r, (k-next)/2)
		xAtScale := Shr(x, next)
		// two Newton corrections at the new scale to resettle after the
		// precision jump
		for i := 0; i < 2; i++ {
			q, _, err := DivMod(xAtScale, r)
			if err != nil {
				panic(err)
			}
			r = Shr(Add(r, q), 1)
		}
		k = next
	}

	for Mul(r, r).Cmp(x) > 0 {
		r, _ = Sub(r, natOne)
	}
	for {
		next := Incr(r)
		if Mul(next, next).Cmp(x) > 0 {
			break
		}
		r = next
	}
	return r
}

// initialGuess returns 2**ceil(BitLen(x)/2) as a starting point for
// Newton iteration — always >= the true root, so the iteration descends
// monotonically.
func initialGuess(x Nat) Nat {
	bits := (x.BitLen() + 1) / 2
	return Shl(natOne, uint(bits))
}

// IsSquare reports whether x is a perfect square.
func IsSquare(x Nat) bool {
	r := Sqrt(x)
	return Mul(r, r).Cmp(x) == 0
}
