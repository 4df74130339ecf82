package binary

import "github.com/arbprec/bignum/bignumerr"

// Add returns x+y as a freshly normalized Nat.
func Add(x, y Nat) Nat {
	return Nat(nil).add(x, y)
}

// AddAssign sets z to z+x in place, reusing z's storage where possible, and
// returns the (possibly reallocated) result. This is the in-place form
// required by §3 for performance-sensitive accumulation loops.
func (z Nat) AddAssign(x Nat) Nat {
	return z.add(z, x)
}

// Sub returns x-y. It fails with an UnsignedUnderflow error if x < y, per the
// unsigned-subtraction invariant of §4.1.1; the caller is responsible for
// sign handling (this is exactly what the signed integer layer does).
func Sub(x, y Nat) (Nat, error) {
	if x.Cmp(y) < 0 {
		return nil, bignumerr.New(bignumerr.UnsignedUnderflow, "%v - %v", x, y)
	}
	return Nat(nil).sub(x, y), nil
}

// SubAssign is the in-place form of Sub.
func (z Nat) SubAssign(x Nat) (Nat, error) {
	if z.Cmp(x) < 0 {
		return nil, bignumerr.New(bignumerr.UnsignedUnderflow, "%v - %v", Nat(z), x)
	}
	return z.sub(z, x), nil
}

// Incr returns x+1, using the short-circuiting accumulator loop of §4.2.
func Incr(x Nat) Nat {
	return Nat(nil).set(x).incr()
}

// Cmp compares x and y as unsigned magnitudes.
func Cmp(x, y Nat) int { return x.Cmp(y) }

func FromUint64(x uint64) Nat { return Nat(nil).setUint64(x) }

func (x Nat) String() string {
	if x.IsZero() {
		return "0"
	}
	return x.decimalString()
}
