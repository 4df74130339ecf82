package bigint

import "testing"

func mustParse(t *testing.T, s string) Int {
	t.Helper()
	v, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return v
}

func TestAddSub(t *testing.T) {
	a := mustParse(t, "-123456789012345678901234567890")
	b := mustParse(t, "987654321098765432109876543210")
	sum := Add(a, b)
	want := mustParse(t, "864197532086419753208641975320")
	if sum.Cmp(want) != 0 {
		t.Fatalf("Add: got %s want %s", sum, want)
	}
	back := Sub(sum, b)
	if back.Cmp(a) != 0 {
		t.Fatalf("Sub: got %s want %s", back, a)
	}
}

func TestFloorVsTruncDiv(t *testing.T) {
	a := mustParse(t, "-7")
	b := mustParse(t, "2")
	qf, rf, err := DivModFloor(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if qf.String() != "-4" || rf.String() != "1" {
		t.Fatalf("DivModFloor(-7,2) = %s,%s want -4,1", qf, rf)
	}
	qt, rt, err := DivModTrunc(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if qt.String() != "-3" || rt.String() != "-1" {
		t.Fatalf("DivModTrunc(-7,2) = %s,%s want -3,-1", qt, rt)
	}
}

func TestDivModScenario(t *testing.T) {
	a := mustParse(t, "12345678901234567890")
	b := mustParse(t, "12345")
	q, r, err := DivModFloor(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if q.String() != "1000054994024671" || r.String() != "4395" {
		t.Fatalf("got q=%s r=%s", q, r)
	}
}

func TestExpBaseTwoFastPath(t *testing.T) {
	got := Exp(FromInt64(2), 32768)
	want := Shl(One, 32768)
	if got.Cmp(want) != 0 {
		t.Fatalf("Exp(2,32768) disagrees with Shl(1,32768)")
	}
	if len(got.String()) != 9865 {
		t.Fatalf("Exp(2,32768): got %d digits, want 9865", len(got.String()))
	}
}

func TestGcdLcm(t *testing.T) {
	a := FromInt64(270)
	b := FromInt64(192)
	g := Gcd(a, b)
	if g.String() != "6" {
		t.Fatalf("Gcd(270,192) = %s, want 6", g)
	}
	l := Lcm(a, b)
	prod := Mul(g, l)
	absProd := Mul(a.Abs(), b.Abs())
	if prod.Cmp(absProd) != 0 {
		t.Fatalf("gcd*lcm != |a*b|: %s vs %s", prod, absProd)
	}
}

func TestExtGcd(t *testing.T) {
	a := FromInt64(240)
	b := FromInt64(46)
	g, u, v := ExtGcd(a, b)
	if g.String() != "2" {
		t.Fatalf("ExtGcd: gcd = %s, want 2", g)
	}
	check := Add(Mul(u, a), Mul(v, b))
	if check.Cmp(g) != 0 {
		t.Fatalf("ExtGcd: u*a+v*b = %s != gcd %s", check, g)
	}
}

func TestModPowModInverse(t *testing.T) {
	base := FromInt64(4)
	exp := FromInt64(13)
	m := FromInt64(497)
	got, err := ModPow(base, exp, m)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "445" {
		t.Fatalf("ModPow(4,13,497) = %s, want 445", got)
	}

	a := FromInt64(17)
	mm := FromInt64(43)
	inv, err := ModInverse(a, mm)
	if err != nil {
		t.Fatal(err)
	}
	_, rem, err := DivModFloor(Mul(a, inv), mm)
	if err != nil {
		t.Fatal(err)
	}
	if rem.String() != "1" {
		t.Fatalf("a*modinverse(a,m) mod m = %s, want 1", rem)
	}

	if _, err := ModInverse(FromInt64(2), FromInt64(4)); err == nil {
		t.Fatalf("expected not-invertible error for gcd(2,4)=2")
	}
}

func TestBitwise(t *testing.T) {
	a := FromInt64(-5) // ...11111011
	b := FromInt64(3)  // ...00000011
	if And(a, b).String() != "3" {
		t.Fatalf("And(-5,3) = %s, want 3", And(a, b))
	}
	if Not(FromInt64(0)).String() != "-1" {
		t.Fatalf("Not(0) = %s, want -1", Not(FromInt64(0)))
	}
	if Not(FromInt64(-1)).String() != "0" {
		t.Fatalf("Not(-1) = %s, want 0", Not(FromInt64(-1)))
	}
}

func TestShr(t *testing.T) {
	if got := Shr(FromInt64(-7), 1); got.String() != "-4" {
		t.Fatalf("Shr(-7,1) = %s, want -4", got)
	}
	if got := Shr(FromInt64(7), 1); got.String() != "3" {
		t.Fatalf("Shr(7,1) = %s, want 3", got)
	}
}

func TestParseBases(t *testing.T) {
	if v := mustParse(t, "0x1A"); v.String() != "26" {
		t.Fatalf("0x1A = %s, want 26", v)
	}
	if v := mustParse(t, "0o17"); v.String() != "15" {
		t.Fatalf("0o17 = %s, want 15", v)
	}
	if v := mustParse(t, "0b1010"); v.String() != "10" {
		t.Fatalf("0b1010 = %s, want 10", v)
	}
	if v := mustParse(t, "1_000_000"); v.String() != "1000000" {
		t.Fatalf("1_000_000 = %s, want 1000000", v)
	}
}
