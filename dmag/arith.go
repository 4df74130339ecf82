package dmag

import "github.com/arbprec/bignum/bignumerr"

// §4.1.1, decadic flavour: the same carry/borrow structure as the binary
// kernel, just with radix 10**9 instead of 2**32.

func addVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z); i++ {
		s := uint64(x[i]) + uint64(y[i]) + uint64(c)
		if s >= _DB {
			z[i] = Word(s - _DB)
			c = 1
		} else {
			z[i] = Word(s)
			c = 0
		}
	}
	return c
}

func subVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z); i++ {
		xi, yi := int64(x[i]), int64(y[i])+int64(c)
		d := xi - yi
		if d < 0 {
			d += _DB
			c = 1
		} else {
			c = 0
		}
		z[i] = Word(d)
	}
	return c
}

func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		s := uint64(x[i]) + uint64(c)
		if s >= _DB {
			z[i] = Word(s - _DB)
			c = 1
		} else {
			z[i] = Word(s)
			if i+1 < len(z) && i+1 < len(x) {
				copy(z[i+1:], x[i+1:])
			}
			return 0
		}
	}
	return c
}

func subVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		xi := int64(x[i]) - int64(c)
		if xi >= 0 {
			z[i] = Word(xi)
			if i+1 < len(z) && i+1 < len(x) {
				copy(z[i+1:], x[i+1:])
			}
			return 0
		}
		z[i] = Word(xi + _DB)
		c = 1
	}
	return c
}

func (z Dec) add(x, y Dec) Dec {
	m, n := len(x), len(y)
	switch {
	case m < n:
		return z.add(y, x)
	case m == 0:
		return z.make(0)
	case n == 0:
		return z.set(x)
	}
	z = z.make(m + 1)
	c := addVV(z[:n], x[:n], y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.norm()
}

func (z Dec) sub(x, y Dec) Dec {
	m, n := len(x), len(y)
	switch {
	case m < n:
		panic("dmag: Dec.sub: underflow (|x| < |y| by length)")
	case m == 0:
		return z.make(0)
	case n == 0:
		return z.set(x)
	}
	z = z.make(m)
	c := subVV(z[:n], x[:n], y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("dmag: Dec.sub: underflow")
	}
	return z.norm()
}

func (z Dec) incr() Dec {
	for i := range z {
		if z[i]+1 < _DB {
			z[i]++
			return z
		}
		z[i] = 0
	}
	return append(z, 1)
}

// Add returns x+y.
func Add(x, y Dec) Dec { return Dec(nil).add(x, y) }

// Sub returns x-y, failing with unsigned-underflow if x < y.
func Sub(x, y Dec) (Dec, error) {
	if x.Cmp(y) < 0 {
		return nil, bignumerr.New(bignumerr.UnsignedUnderflow, "%v - %v", x, y)
	}
	return Dec(nil).sub(x, y), nil
}

// Incr returns x+1 via the short-circuiting accumulator loop.
func Incr(x Dec) Dec { return Dec(nil).set(x).incr() }

func Cmp(x, y Dec) int { return x.Cmp(y) }

func FromUint64(x uint64) Dec { return Dec(nil).setUint64(x) }

// String renders x in decadic base-10**9 limbs as plain decimal digits:
// each limb contributes exactly 9 digits except the most significant.
func (x Dec) String() string {
	if x.IsZero() {
		return "0"
	}
	buf := make([]byte, 0, len(x)*_DW)
	last := len(x) - 1
	buf = appendWordDigits(buf, uint32(x[last]), false)
	for i := last - 1; i >= 0; i-- {
		buf = appendWordDigits(buf, uint32(x[i]), true)
	}
	return string(buf)
}

func appendWordDigits(buf []byte, v uint32, pad bool) []byte {
	var tmp [_DW]byte
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
