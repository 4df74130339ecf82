package decimal

import "testing"

func mustParse(t *testing.T, s string) Decimal {
	t.Helper()
	v, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return v
}

func TestParseString(t *testing.T) {
	cases := []string{"0", "123.456", "-0.001", "1.23E-5", "100.00", "-0"}
	for _, c := range cases {
		v := mustParse(t, c)
		_ = v.String()
	}
	if got := mustParse(t, "-0").String(); got != "0" {
		t.Fatalf("parse/print of -0: got %q want %q", got, "0")
	}
	if got := mustParse(t, "1.23E-5").String(); got != "0.0000123" {
		t.Fatalf("1.23E-5: got %q want 0.0000123", got)
	}
}

func TestAddScenarios(t *testing.T) {
	a := mustParse(t, "123456.789")
	b := mustParse(t, "78.9")
	sum := Add(a, b)
	if sum.String() != "123535.689" {
		t.Fatalf("Add: got %s want 123535.689", sum)
	}

	c := mustParse(t, "0.1")
	d := mustParse(t, "0.2")
	csum := Add(c, d)
	tup := csum.AsTuple()
	if string(addASCII(tup.Digits)) != "3" || tup.Exponent != -1 {
		t.Fatalf("0.1+0.2: got digits=%v exponent=%d, want 3 at exponent -1", tup.Digits, tup.Exponent)
	}
	if csum.String() != "0.3" {
		t.Fatalf("0.1+0.2: got %s want 0.3", csum)
	}
}

func addASCII(digits []byte) []byte {
	out := make([]byte, len(digits))
	for i, d := range digits {
		out[i] = '0' + d
	}
	return out
}

func TestMulScenario(t *testing.T) {
	a := mustParse(t, "123456789.123456789")
	b := mustParse(t, "1234.56789")
	got := Mul(a, b)
	if got.String() != "152415787654.32099750190521" {
		t.Fatalf("Mul: got %s want 152415787654.32099750190521", got)
	}
}

func TestDigitCountAndNormalize(t *testing.T) {
	a := mustParse(t, "100.00")
	if a.DigitCount() != 5 {
		t.Fatalf("DigitCount: got %d want 5", a.DigitCount())
	}
	n := a.Normalize()
	if n.DigitCount() != 1 {
		t.Fatalf("Normalize().DigitCount: got %d want 1", n.DigitCount())
	}
	if n.String() != "1E+2" {
		t.Fatalf("Normalize: got %s want 1E+2", n.String())
	}
}

func TestRoundHalfEven(t *testing.T) {
	if got := Round(mustParse(t, "2.5"), 0, ToNearestEven).String(); got != "2" {
		t.Fatalf("Round(2.5): got %s want 2", got)
	}
	if got := Round(mustParse(t, "3.5"), 0, ToNearestEven).String(); got != "4" {
		t.Fatalf("Round(3.5): got %s want 4", got)
	}
}

func TestDivPrecision(t *testing.T) {
	one := mustParse(t, "1")
	three := mustParse(t, "3")
	got, err := Div(one, three, 10, ToNearestEven)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "0.3333333333" {
		t.Fatalf("1/3 to 10 digits: got %s", got)
	}
	if _, err := Div(one, Zero, 10, ToNearestEven); err == nil {
		t.Fatalf("expected divide-by-zero error")
	}
}

func TestQuantize(t *testing.T) {
	a := mustParse(t, "2.345")
	tmpl := mustParse(t, "0.01")
	got := Quantize(a, tmpl, ToNearestEven)
	if got.String() != "2.34" {
		t.Fatalf("Quantize: got %s want 2.34", got)
	}
}

func TestDivModFloorFractional(t *testing.T) {
	a := mustParse(t, "-7")
	b := mustParse(t, "2")
	q, r, err := DivModFloor(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if q.String() != "-4" || r.String() != "1" {
		t.Fatalf("DivModFloor(-7,2): got q=%s r=%s want -4,1", q, r)
	}
}

func TestTupleRoundTrip(t *testing.T) {
	a := mustParse(t, "-123.45")
	tup := a.AsTuple()
	back, err := FromTuple(tup)
	if err != nil {
		t.Fatal(err)
	}
	if back.Cmp(a) != 0 {
		t.Fatalf("tuple round-trip: got %s want %s", back, a)
	}
}
