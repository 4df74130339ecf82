// Package bigint implements the signed big integer layer: a sign bit over
// a binary.Nat magnitude. Nothing here knows about decimal scale; that is
// the decimal package's job, built on top of this one.
package bigint

import (
	"github.com/arbprec/bignum/bignumerr"
	"github.com/arbprec/bignum/binary"
)

// Int is an arbitrary-precision signed integer: neg is only meaningful
// when abs is non-zero (negative zero is not a distinct value — abs == 0
// always reports neg == false once normalized through the constructors
// and arithmetic below).
type Int struct {
	neg bool
	abs binary.Nat
}

var (
	Zero = Int{}
	One  = Int{abs: binary.FromUint64(1)}
)

// normSign clears neg whenever the magnitude is zero, preventing a
// negative-zero value from ever escaping a constructor or operation.
func normSign(neg bool, abs binary.Nat) Int {
	if abs.IsZero() {
		neg = false
	}
	return Int{neg: neg, abs: abs}
}

// FromInt64 converts a native signed integer.
func FromInt64(x int64) Int {
	if x < 0 {
		return normSign(true, binary.FromUint64(uint64(-(x + 1))+1))
	}
	return normSign(false, binary.FromUint64(uint64(x)))
}

// FromUint64 converts a native unsigned integer.
func FromUint64(x uint64) Int {
	return normSign(false, binary.FromUint64(x))
}

// Neg returns -x.
func (x Int) Neg() Int {
	return normSign(!x.neg, x.abs)
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return normSign(false, x.abs)
}

// Sign returns -1, 0, or 1 according to the sign of x.
func (x Int) Sign() int {
	switch {
	case x.abs.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

func (x Int) IsZero() bool { return x.abs.IsZero() }

// Cmp compares x and y: -1, 0, 1 for x<y, x==y, x>y.
func (x Int) Cmp(y Int) int {
	switch {
	case x.Sign() != y.Sign():
		if x.Sign() < y.Sign() {
			return -1
		}
		return 1
	case x.Sign() == 0:
		return 0
	case !x.neg:
		return x.abs.Cmp(y.abs)
	default:
		return y.abs.Cmp(x.abs)
	}
}

// Uint64 returns x as a uint64 and reports whether the conversion is exact
// (x must be non-negative and fit in 64 bits).
func (x Int) Uint64() (uint64, error) {
	if x.neg {
		return 0, bignumerr.New(bignumerr.NegativeToUnsigned, "cannot convert %s to unsigned", x)
	}
	v, ok := x.abs.Uint64()
	if !ok {
		return 0, bignumerr.New(bignumerr.OverflowToNative, "%s overflows uint64", x)
	}
	return v, nil
}

// Int64 returns x as an int64 and reports whether the conversion is exact.
func (x Int) Int64() (int64, error) {
	v, ok := x.abs.Uint64()
	if !ok {
		return 0, bignumerr.New(bignumerr.OverflowToNative, "%s overflows int64", x)
	}
	if x.neg {
		if v > 1<<63 {
			return 0, bignumerr.New(bignumerr.OverflowToNative, "%s overflows int64", x)
		}
		return -int64(v), nil
	}
	if v >= 1<<63 {
		return 0, bignumerr.New(bignumerr.OverflowToNative, "%s overflows int64", x)
	}
	return int64(v), nil
}

func (x Int) String() string {
	if x.neg {
		return "-" + x.abs.String()
	}
	return x.abs.String()
}

// Magnitude exposes the underlying binary.Nat for layers (decimal, the
// transcendental package) that need to drive the magnitude kernel
// directly. It is a read-only view: mutating the returned slice is not
// supported by any routine in this package.
func (x Int) Magnitude() binary.Nat { return x.abs }

// FromMagnitude builds a signed value from a sign and a binary.Nat,
// normalizing negative zero.
func FromMagnitude(neg bool, abs binary.Nat) Int {
	return normSign(neg, abs)
}

// Parse parses a signed decimal integer string: an optional '+'/'-' sign
// followed by digits (underscores permitted as grouping separators and
// ignored), or a 0x/0o/0b-prefixed value in the corresponding base.
func Parse(s string) (Int, error) {
	if len(s) == 0 {
		return Int{}, bignumerr.New(bignumerr.ParseInvalid, "empty string")
	}
	neg := false
	i := 0
	switch s[0] {
	case '+':
		i++
	case '-':
		neg = true
		i++
	}
	if i >= len(s) {
		return Int{}, bignumerr.New(bignumerr.ParseInvalid, "no digits after sign")
	}
	body := stripUnderscores(s[i:])
	if len(body) == 0 {
		return Int{}, bignumerr.New(bignumerr.ParseInvalid, "no digits")
	}
	if len(body) >= 2 && body[0] == '0' {
		switch body[1] {
		case 'x', 'X':
			return parseBase(body[2:], 16, neg)
		case 'o', 'O':
			return parseBase(body[2:], 8, neg)
		case 'b', 'B':
			return parseBase(body[2:], 2, neg)
		}
	}
	abs, err := binary.ParseDecimalString(body)
	if err != nil {
		return Int{}, err
	}
	return normSign(neg, abs), nil
}

func stripUnderscores(s string) string {
	hasUnderscore := false
	for i := 0; i < len(s); i++ {
		if s[i] == '_' {
			hasUnderscore = true
			break
		}
	}
	if !hasUnderscore {
		return s
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func digitValue(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10, true
	default:
		return 0, false
	}
}

func parseBase(s string, base uint64, neg bool) (Int, error) {
	if len(s) == 0 {
		return Int{}, bignumerr.New(bignumerr.ParseInvalid, "no digits after base prefix")
	}
	abs := binary.Nat(nil)
	baseNat := binary.FromUint64(base)
	for i := 0; i < len(s); i++ {
		d, ok := digitValue(s[i])
		if !ok || uint64(d) >= base {
			return Int{}, bignumerr.New(bignumerr.ParseInvalid, "invalid digit %q for base %d", s[i], base)
		}
		abs = binary.Mul(abs, baseNat)
		abs = binary.Add(abs, binary.FromUint64(d))
	}
	return normSign(neg, abs), nil
}
