// Package decmath implements the transcendental layer: sqrt, nth root,
// ln, exp, power, and the trigonometric functions, each taking an
// explicit significant-digit precision and rounding mode rather than
// consulting any global state (§5 of the arithmetic core this package
// sits on top of).
package decmath

import (
	"sync"

	"github.com/arbprec/bignum/decimal"
)

// precisionCache holds the highest-precision value computed so far for a
// content-addressed constant (π, ln 2, ln 10, e): a read-mostly cache
// guarded by a mutex so concurrent callers never race on the cached
// value, matching the ambient concurrency contract of this layer (pure,
// reentrant, with caches serialized by a lock rather than left to the
// caller to serialize).
type precisionCache struct {
	mu    sync.RWMutex
	value decimal.Decimal
	prec  int
	compute func(prec int) decimal.Decimal
}

func newCache(compute func(prec int) decimal.Decimal) *precisionCache {
	return &precisionCache{compute: compute}
}

// at returns the constant rounded to at least prec significant digits,
// computing (and caching) a higher-precision value only on a miss.
func (c *precisionCache) at(prec int) decimal.Decimal {
	c.mu.RLock()
	if c.prec >= prec {
		v := c.value
		c.mu.RUnlock()
		return roundToPrec(v, prec)
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.prec < prec {
		c.value = c.compute(prec)
		c.prec = prec
	}
	return roundToPrec(c.value, prec)
}

var (
	piCache   = newCache(computePiChudnovsky)
	ln2Cache  = newCache(func(prec int) decimal.Decimal { return computeLn(decimal.FromUint64(2), prec) })
	ln10Cache *precisionCache
	eCache    = newCache(computeE)
)

// ln10Cache is set in init rather than in its declaration: its compute
// function reaches Ln10, which reads ln10Cache, and Go rejects that
// reference as an initialization cycle.
func init() {
	ln10Cache = newCache(func(prec int) decimal.Decimal { return computeLn(decimal.FromUint64(10), prec) })
}

// Pi returns π rounded to at least prec significant digits.
func Pi(prec int) decimal.Decimal { return piCache.at(prec) }

// Ln2 returns ln(2) rounded to at least prec significant digits.
func Ln2(prec int) decimal.Decimal { return ln2Cache.at(prec) }

// Ln10 returns ln(10) rounded to at least prec significant digits.
func Ln10(prec int) decimal.Decimal { return ln10Cache.at(prec) }

// E returns Euler's number rounded to at least prec significant digits.
func E(prec int) decimal.Decimal { return eCache.at(prec) }

// guardDigits is the number of extra significant digits carried through
// an iterative computation before rounding down to the caller's
// requested precision, per §4.4's "intermediate guard digits ... stripped
// at the end".
func guardDigits(prec int) int {
	g := 1
	for p := prec; p >= 10; p /= 10 {
		g++
	}
	return g + 4
}

func workingPrecision(prec int) int { return prec + guardDigits(prec) }
