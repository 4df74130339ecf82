package binary

import "github.com/arbprec/bignum/bignumerr"

// §4.1.5 — base conversion, binary magnitude flavour.

// decDigitConvThreshold is the limb count above which decimalString
// switches from the simple repeated-divide-by-1e9 strategy to the
// divide-and-conquer strategy.
const decDigitConvThreshold = 128

// parseDigitConvThreshold is the decimal digit count above which
// ParseDecimalString switches from simple multiply-accumulate to the
// divide-and-conquer rebuild.
const parseDigitConvThreshold = 10000

const bigRadix = 1_000_000_000 // 10**9, one decimal "chunk" per limb-sized step

// decimalString converts x to its canonical decimal representation, with
// no leading zeros (x == 0 is handled by the caller).
func (x Nat) decimalString() string {
	if len(x) <= 2 {
		v, _ := x.Uint64()
		return uitoa(v)
	}
	if len(x) <= decDigitConvThreshold {
		return x.decimalStringSimple()
	}
	return x.decimalStringDC()
}

// decimalStringSimple repeatedly divides a mutable work copy by 10**9,
// emitting a 9-digit chunk each iteration into a byte buffer (no string
// concatenation).
func (x Nat) decimalStringSimple() string {
	work := Nat(nil).set(x)
	chunks := make([]uint32, 0, len(x)*10/9+1)
	for !work.IsZero() {
		var r Word
		work, r = Nat(nil).divW(work, bigRadix)
		chunks = append(chunks, uint32(r))
	}
	buf := make([]byte, 0, len(chunks)*9)
	// most significant chunk first, without zero-padding
	last := len(chunks) - 1
	buf = appendUint(buf, uint64(chunks[last]), false)
	for i := last - 1; i >= 0; i-- {
		buf = appendUint(buf, uint64(chunks[i]), true)
	}
	return string(buf)
}

// decimalStringDC implements the divide-and-conquer path: precompute a
// table P[k] = 10**(9*2**k) as binary magnitudes up to the largest k with
// P[k] <= x, split at P[k] with one DivMod, recurse
// into high and low halves, zero-padding the low half to exactly 2**k * 9
// decimal digits.
func (x Nat) decimalStringDC() string {
	k := 0
	for powerOfTenTable(k + 1).Cmp(x) <= 0 {
		k++
	}
	p := powerOfTenTable(k)
	hi, lo, err := DivMod(x, p)
	if err != nil {
		panic(err) // p is never zero
	}
	digits := uint64(1) << uint(k) * 9
	hiStr := hi.decimalString()
	loStr := lo.decimalString()
	pad := make([]byte, 0, digits)
	for i := uint64(len(loStr)); i < digits; i++ {
		pad = append(pad, '0')
	}
	return hiStr + string(pad) + loStr
}

var powTenCache = map[int]Nat{}

// powerOfTenTable returns 10**(9*2**k) as a binary magnitude, memoized.
func powerOfTenTable(k int) Nat {
	if v, ok := powTenCache[k]; ok {
		return v
	}
	var v Nat
	if k == 0 {
		v = Nat(nil).setUint64(bigRadix)
	} else {
		half := powerOfTenTable(k - 1)
		v = Mul(half, half)
	}
	powTenCache[k] = v
	return v
}

// ParseDecimalString parses a decimal digit string (no sign, no
// underscores; the decimal layer's parser handles those) into a Nat.
func ParseDecimalString(s string) (Nat, error) {
	if len(s) == 0 {
		return nil, bignumerr.New(bignumerr.ParseInvalid, "empty digit string")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, bignumerr.New(bignumerr.ParseInvalid, "invalid digit %q", s[i])
		}
	}
	if len(s) <= parseDigitConvThreshold {
		return parseDecimalSimple(s), nil
	}
	return parseDecimalDC(s), nil
}

// parseDecimalSimple processes 9 digits at a time into a limb accumulator
// via multiply-accumulate.
func parseDecimalSimple(s string) Nat {
	i := len(s) % 9
	var z Nat
	if i == 0 {
		i = 9
	}
	v, _ := parseUint(s[:i])
	z = Nat(nil).setUint64(v)
	for ; i < len(s); i += 9 {
		v, _ := parseUint(s[i : i+9])
		z = Nat(nil).mulAddWW(z, bigRadix, 0)
		z = Nat(nil).add(z, Nat(nil).setUint64(v))
	}
	return z.norm()
}

// parseDecimalDC precomputes the same power table used by the stringifier
// and rebuilds high*P[level]+low recursively, splitting at the largest
// 2**k <= n/2 so Karatsuba later sees near-balanced operands.
func parseDecimalDC(s string) Nat {
	n := len(s)
	k := 0
	for (1 << uint(k+1) * 9) <= n/2 {
		k++
	}
	split := n - (1 << uint(k) * 9)
	if split <= 0 || split >= n {
		return parseDecimalSimple(s)
	}
	hi := parseDecimalDC(s[:split])
	lo := parseDecimalDC(s[split:])
	p := powerOfTenTable(k)
	return Add(Mul(hi, p), lo)
}

func parseUint(s string) (uint64, bool) {
	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + uint64(c-'0')
	}
	return v, true
}

func uitoa(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// appendUint appends v's decimal digits to buf. If pad, v is zero-padded
// to 9 digits (used for all but the most significant chunk).
func appendUint(buf []byte, v uint64, pad bool) []byte {
	var tmp [9]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	if pad {
		for j := 0; j < i; j++ {
			tmp[j] = '0'
		}
		i = 0
	}
	return append(buf, tmp[i:]...)
}
