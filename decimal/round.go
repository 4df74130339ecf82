package decimal

import "github.com/arbprec/bignum/dmag"

// roundDrop cuts the low `drop` decimal digits from coef and rounds the
// remainder according to mode and sign. Rounding to n fractional digits
// (Round) and rounding to n significant digits (Div) both reduce to this.
func roundDrop(coef dmag.Dec, drop int, neg bool, mode RoundingMode) dmag.Dec {
	if drop <= 0 {
		return coef
	}
	kept, dropped := dmag.ScaleDown(coef, drop)
	if dropped.IsZero() {
		return kept
	}
	if decideRoundUp(kept, dropped, drop, neg, mode) {
		return dmag.Incr(kept)
	}
	return kept
}

func decideRoundUp(kept, dropped dmag.Dec, drop int, neg bool, mode RoundingMode) bool {
	switch mode {
	case ToZero:
		return false
	case AwayFromZero:
		return true
	case ToPositiveInf:
		return !neg
	case ToNegativeInf:
		return neg
	default: // ToNearestEven, ToNearestAway
		half := dmag.ScaleUp(dmag.FromUint64(5), drop-1)
		switch dropped.Cmp(half) {
		case -1:
			return false
		case 1:
			return true
		default: // exact tie
			if mode == ToNearestAway {
				return true
			}
			return !isEvenCoef(kept)
		}
	}
}

// isEvenCoef reports whether x is even. The limb base 10**9 is itself
// even, so every higher limb contributes a multiple of 2 to the total;
// parity is fully determined by the lowest limb.
func isEvenCoef(x dmag.Dec) bool {
	if x.IsZero() {
		return true
	}
	return x[0]%2 == 0
}
