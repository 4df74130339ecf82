package bigint

import "github.com/arbprec/bignum/binary"

// Two's-complement emulation over binary.Nat magnitudes (§4.1.4, lifted to
// signed values). binary.Nat only knows non-negative magnitudes, so a
// negative operand is modelled the way CPython models its own ints:
// virtually sign-extended with an infinite run of 1 bits, computed on a
// finite window via invert(|x|-1).

// wordBits mirrors binary.Word's width; kept as a local constant so this
// package never needs to reach into binary's unexported limb layout.
const wordBits = 32

func limbsFor(bits int) int {
	return bits/wordBits + 2 // +2: one rounding guard, one sign guard
}

func padNat(x binary.Nat, n int) binary.Nat {
	if len(x) >= n {
		return x
	}
	out := make(binary.Nat, n)
	copy(out, x)
	return out
}

// combineFixed applies op limb-wise over two n-limb windows, returning an
// n-limb result (unlike binary's own And/Or/Xor, which normalize away
// trailing zero limbs — here the window length is load-bearing, since it
// carries the virtual sign bit).
func combineFixed(x, y binary.Nat, n int, op func(a, b binary.Word) binary.Word) binary.Nat {
	z := make(binary.Nat, n)
	for i := 0; i < n; i++ {
		z[i] = op(x[i], y[i])
	}
	return z
}

func invertNat(x binary.Nat, n int) binary.Nat {
	x = padNat(x, n)
	z := make(binary.Nat, n)
	for i := 0; i < n; i++ {
		z[i] = ^x[i]
	}
	return z
}

func normalizeNat(x binary.Nat) binary.Nat {
	return binary.Shr(x, 0)
}

// toTwosComplement renders v as an n-limb two's-complement window.
func toTwosComplement(v Int, n int) binary.Nat {
	if !v.neg {
		return padNat(v.abs, n)
	}
	magMinus1, _ := binary.Sub(v.abs, binary.FromUint64(1))
	return invertNat(magMinus1, n)
}

// fromTwosComplement reads back an n-limb two's-complement window,
// inspecting the top bit of the guard limb as the virtual sign bit.
func fromTwosComplement(tc binary.Nat, n int) Int {
	signBit := tc[n-1]&(binary.Word(1)<<(wordBits-1)) != 0
	if !signBit {
		return normSign(false, normalizeNat(tc))
	}
	mag := normalizeNat(binary.Add(invertNat(tc, n), binary.FromUint64(1)))
	return normSign(true, mag)
}

func bitwiseLimbs(x, y Int) int {
	bx, by := x.abs.BitLen(), y.abs.BitLen()
	if by > bx {
		bx = by
	}
	return limbsFor(bx)
}

// And returns x & y under infinite two's-complement sign extension.
func And(x, y Int) Int {
	n := bitwiseLimbs(x, y)
	tc := combineFixed(toTwosComplement(x, n), toTwosComplement(y, n), n, func(a, b binary.Word) binary.Word { return a & b })
	return fromTwosComplement(tc, n)
}

// Or returns x | y.
func Or(x, y Int) Int {
	n := bitwiseLimbs(x, y)
	tc := combineFixed(toTwosComplement(x, n), toTwosComplement(y, n), n, func(a, b binary.Word) binary.Word { return a | b })
	return fromTwosComplement(tc, n)
}

// Xor returns x ^ y.
func Xor(x, y Int) Int {
	n := bitwiseLimbs(x, y)
	tc := combineFixed(toTwosComplement(x, n), toTwosComplement(y, n), n, func(a, b binary.Word) binary.Word { return a ^ b })
	return fromTwosComplement(tc, n)
}

// AndNot returns x &^ y.
func AndNot(x, y Int) Int {
	n := bitwiseLimbs(x, y)
	tc := combineFixed(toTwosComplement(x, n), toTwosComplement(y, n), n, func(a, b binary.Word) binary.Word { return a &^ b })
	return fromTwosComplement(tc, n)
}

// Not returns ^x == -x-1.
func Not(x Int) Int {
	return Sub(Zero, Incr(x))
}

// Shl returns x * 2**s.
func Shl(x Int, s uint) Int {
	return normSign(x.neg, binary.Shl(x.abs, s))
}

// Shr returns the arithmetic right shift of x by s bits (floor(x / 2**s),
// matching Python's semantics for negative operands rather than C's
// implementation-defined behaviour).
func Shr(x Int, s uint) Int {
	if !x.neg {
		return normSign(false, binary.Shr(x.abs, s))
	}
	// floor((-m) / 2**s) = -ceil(m / 2**s)
	q := binary.Shr(x.abs, s)
	mask, _ := binary.Sub(binary.Shl(binary.FromUint64(1), s), binary.FromUint64(1))
	if !binary.And(x.abs, mask).IsZero() {
		q = binary.Incr(q)
	}
	return normSign(true, q)
}
