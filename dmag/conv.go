package dmag

import "github.com/arbprec/bignum/bignumerr"

// §4.1.5, decadic flavour: unlike the binary kernel's base conversion,
// going to and from a decimal string here is a direct limb-to-digit-chunk
// mapping, since each limb already holds exactly 9 decimal digits.

// The inverse direction, String, is defined in arith.go.

// ParseDecimalString parses a non-negative base-10 string into a Dec.
func ParseDecimalString(s string) (Dec, error) {
	if len(s) == 0 {
		return nil, bignumerr.New(bignumerr.ParseInvalid, "empty string")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, bignumerr.New(bignumerr.ParseInvalid, "invalid digit %q in %q", s[i], s)
		}
	}
	s = trimLeadingZeros(s)
	if len(s) == 0 {
		return Dec(nil), nil
	}

	nLimbs := (len(s) + _DW - 1) / _DW
	z := Dec(nil).make(nLimbs)
	first := len(s) % _DW
	if first == 0 {
		first = _DW
	}
	limbIdx := nLimbs - 1
	z[limbIdx] = Word(parseDigits(s[:first]))
	limbIdx--
	for i := first; i < len(s); i += _DW {
		z[limbIdx] = Word(parseDigits(s[i : i+_DW]))
		limbIdx--
	}
	return z.norm(), nil
}

func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	if s[i:] == "0" {
		return ""
	}
	return s[i:]
}

func parseDigits(s string) uint64 {
	var v uint64
	for i := 0; i < len(s); i++ {
		v = v*10 + uint64(s[i]-'0')
	}
	return v
}
