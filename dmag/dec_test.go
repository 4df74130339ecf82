package dmag

import "testing"

func mustDec(t *testing.T, s string) Dec {
	t.Helper()
	v, err := ParseDecimalString(s)
	if err != nil {
		t.Fatalf("ParseDecimalString(%q): %v", s, err)
	}
	return v
}

func TestParseAndString(t *testing.T) {
	cases := []string{"0", "1", "999999999", "1000000000", "123456789123456789123456789"}
	for _, c := range cases {
		v := mustDec(t, c)
		if got := v.String(); got != c {
			t.Fatalf("round-trip %q: got %q", c, got)
		}
	}
}

func TestAddSub(t *testing.T) {
	a := mustDec(t, "999999999999999999")
	b := mustDec(t, "1")
	sum := Add(a, b)
	if sum.String() != "1000000000000000000" {
		t.Fatalf("Add: got %s", sum)
	}
	back, err := Sub(sum, b)
	if err != nil {
		t.Fatal(err)
	}
	if back.Cmp(a) != 0 {
		t.Fatalf("Sub: got %s want %s", back, a)
	}
	if _, err := Sub(a, sum); err == nil {
		t.Fatalf("expected underflow error")
	}
}

func TestMulSchoolbook(t *testing.T) {
	a := mustDec(t, "123456789123456789")
	b := mustDec(t, "987654321987654321")
	got := Mul(a, b)
	want := mustDec(t, "121932631356500531347203169112635269")
	if got.Cmp(want) != 0 {
		t.Fatalf("Mul: got %s want %s", got, want)
	}
}

func TestMulKaratsuba(t *testing.T) {
	a := mustDec(t, repeatDigits("13", 300))
	b := mustDec(t, repeatDigits("97", 300))
	got := Mul(a, b)
	var want Dec
	want.clear()
	basicWant := Dec(nil).make(len(a) + len(b))
	basicMul(basicWant, a, b)
	want = basicWant.norm()
	if got.Cmp(want) != 0 {
		t.Fatalf("Karatsuba disagrees with schoolbook for 600-digit operands")
	}
}

// TestMulKaratsubaBalancedFixedPoint covers the specific operand size that
// used to make the balanced branch's split point equal the full operand
// length (karatsubaLen(64) == 64, since 64 = 32*2^1): with that split, a1
// was empty and the recursive z2 := mul(a1, b1) call re-entered mul with
// the original operand length unchanged, recursing forever. 64 limbs is
// 576 decimal digits at 9 digits/limb.
func TestMulKaratsubaBalancedFixedPoint(t *testing.T) {
	a := mustDec(t, repeatDigits("19", 288))
	b := mustDec(t, repeatDigits("83", 288))
	got := Mul(a, b)
	basicWant := Dec(nil).make(len(a) + len(b))
	basicMul(basicWant, a, b)
	want := basicWant.norm()
	if got.Cmp(want) != 0 {
		t.Fatalf("Karatsuba disagrees with schoolbook for a 64-limb balanced multiply")
	}
}

func TestMulToomCook3(t *testing.T) {
	a := mustDec(t, repeatDigits("314159", 3500))
	b := mustDec(t, repeatDigits("271828", 3500))
	got := Mul(a, b)
	want := Dec(nil).karatsuba(a, b)
	if got.Cmp(want) != 0 {
		t.Fatalf("Toom-Cook-3 disagrees with Karatsuba for large operands")
	}
}

func repeatDigits(digits string, n int) string {
	buf := make([]byte, 0, len(digits)*n)
	for i := 0; i < n; i++ {
		buf = append(buf, digits...)
	}
	s := string(buf)
	return trimLeadingZerosForTest(s)
}

func trimLeadingZerosForTest(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

func TestDivModKnuth(t *testing.T) {
	a := mustDec(t, "12345678901234567890123456789012345678901234567890")
	b := mustDec(t, "987654321098765432109876543210")
	q, r, err := DivMod(a, b)
	if err != nil {
		t.Fatal(err)
	}
	check := Add(Mul(q, b), r)
	if check.Cmp(a) != 0 {
		t.Fatalf("q*b+r != a: got %s want %s", check, a)
	}
	if r.Cmp(b) >= 0 {
		t.Fatalf("remainder %s >= divisor %s", r, b)
	}
}

func TestDivModSingleLimb(t *testing.T) {
	a := mustDec(t, "123456789123456789123456789")
	b := FromUint64(7)
	q, r, err := DivMod(a, b)
	if err != nil {
		t.Fatal(err)
	}
	check := Add(Mul(q, b), r)
	if check.Cmp(a) != 0 {
		t.Fatalf("single-limb div: q*b+r != a")
	}
}

func TestDivByZero(t *testing.T) {
	if _, _, err := DivMod(mustDec(t, "5"), Dec(nil)); err == nil {
		t.Fatalf("expected divide-by-zero error")
	}
}

func TestScaleUpDown(t *testing.T) {
	x := mustDec(t, "123456789")
	up := ScaleUp(x, 13)
	if up.String() != "1234567890000000000000" {
		t.Fatalf("ScaleUp: got %s", up)
	}
	q, r := ScaleDown(up, 13)
	if q.Cmp(x) != 0 {
		t.Fatalf("ScaleDown quotient: got %s want %s", q, x)
	}
	if !r.IsZero() {
		t.Fatalf("ScaleDown remainder: got %s want 0", r)
	}

	y := mustDec(t, "123456789123")
	qy, ry := ScaleDown(y, 5)
	if qy.String() != "1234567" {
		t.Fatalf("ScaleDown(123456789123,5) quotient: got %s want 1234567", qy)
	}
	if ry.String() != "89123" {
		t.Fatalf("ScaleDown(123456789123,5) remainder: got %s want 89123", ry)
	}
}

func TestTrimTrailingZeroDigits(t *testing.T) {
	x := mustDec(t, "123000000000")
	y, k := TrimTrailingZeroDigits(x)
	if k != 9 {
		t.Fatalf("TrimTrailingZeroDigits: got k=%d want 9", k)
	}
	if y.String() != "123" {
		t.Fatalf("TrimTrailingZeroDigits: got %s want 123", y)
	}
}

func TestDigits(t *testing.T) {
	if mustDec(t, "1000000000").Digits() != 10 {
		t.Fatalf("Digits: expected 10")
	}
	if Dec(nil).Digits() != 0 {
		t.Fatalf("Digits of zero: expected 0")
	}
}
