package decmath

import (
	"github.com/arbprec/bignum/bigint"
	"github.com/arbprec/bignum/decimal"
)

// chudnovskyTriple is one (P,Q,T) node of the binary-splitting recursion
// for the Chudnovsky series
//
//	1/π = 12 * Σ_k (-1)^k (6k)! (545140134k+13591409) / ((3k)! (k!)^3 640320^(3k+3/2))
//
// P and Q are the product terms accumulated across a range of k values and
// T is the accumulated numerator; only Q and T survive to the final
// division, but P is needed to combine T across the two halves of a split
// range.
type chudnovskyTriple struct {
	p, q, t bigint.Int
}

var (
	chudC3Over24 = bigint.Exp(bigint.FromUint64(640320), 3) // 640320^3, divided by 24 below
	chud545140134 = bigint.FromUint64(545140134)
	chud13591409  = bigint.FromUint64(13591409)
)

func init() {
	chudC3Over24, _, _ = bigint.DivModTrunc(chudC3Over24, bigint.FromUint64(24))
}

// bs computes the binary-split triple for k in [a,b), following the
// standard recursive splitting used to keep every intermediate
// multiplication balanced in size (the same shape as a Karatsuba/Toom
// divide-and-conquer, applied to the summation itself rather than to a
// single multiplication).
func bs(a, b uint64) chudnovskyTriple {
	if b-a == 1 {
		if a == 0 {
			t := chud13591409
			return chudnovskyTriple{p: bigint.One, q: bigint.One, t: t}
		}
		ai := bigint.FromUint64(a)
		p := bigint.Mul(bigint.Mul(
			bigint.Sub(bigint.Mul(bigint.FromUint64(6), ai), bigint.FromUint64(5)),
			bigint.Sub(bigint.Mul(bigint.FromUint64(2), ai), bigint.One)),
			bigint.Sub(bigint.Mul(bigint.FromUint64(6), ai), bigint.One))
		q := bigint.Mul(bigint.Mul(bigint.Mul(ai, ai), ai), chudC3Over24)
		t := bigint.Mul(p, bigint.Add(chud13591409, bigint.Mul(chud545140134, ai)))
		if a%2 == 1 {
			t = t.Neg()
		}
		return chudnovskyTriple{p: p, q: q, t: t}
	}
	m := a + (b-a)/2
	left := bs(a, m)
	right := bs(m, b)
	return chudnovskyTriple{
		p: bigint.Mul(left.p, right.p),
		q: bigint.Mul(left.q, right.q),
		t: bigint.Add(bigint.Mul(right.q, left.t), bigint.Mul(left.p, right.t)),
	}
}

// chudnovskyTermsFor returns enough terms to deliver prec significant
// decimal digits: each term contributes roughly 14.1816 digits.
func chudnovskyTermsFor(prec int) uint64 {
	n := uint64(prec)/14 + 2
	if n == 0 {
		n = 1
	}
	return n
}

func intToDecimal(x bigint.Int) decimal.Decimal {
	d, err := decimal.Parse(x.String())
	if err != nil {
		panic("decmath: intToDecimal: " + err.Error())
	}
	return d
}

// computePiChudnovsky evaluates π to at least prec significant digits via
// Chudnovsky binary splitting: π = (426880 * sqrt(10005) * Q) / T where
// (P,Q,T) is the binary-split triple over enough terms of the series.
func computePiChudnovsky(prec int) decimal.Decimal {
	wp := workingPrecision(prec)
	n := chudnovskyTermsFor(wp)
	triple := bs(0, n)

	sqrt10005 := sqrtPositive(decimal.FromUint64(10005), wp+2)
	numerator := decimal.Mul(decimal.FromUint64(426880), sqrt10005)
	numerator = decimal.Mul(numerator, intToDecimal(triple.q))
	denom := intToDecimal(triple.t)

	pi, err := decimal.Div(numerator, denom, wp, decimal.ToNearestEven)
	if err != nil {
		panic("decmath: computePiChudnovsky: " + err.Error())
	}
	return roundToPrec(pi, prec)
}
