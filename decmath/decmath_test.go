package decmath

import (
	"testing"

	"github.com/arbprec/bignum/decimal"
)

func mustParse(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return v
}

func TestSqrtTwo(t *testing.T) {
	got, err := Sqrt(decimal.FromUint64(2), 28)
	if err != nil {
		t.Fatal(err)
	}
	want := "1.414213562373095048801688724"
	if got.String() != want {
		t.Fatalf("sqrt(2) to 28 digits: got %s want %s", got, want)
	}
}

func TestSqrtNegativeIsDomainError(t *testing.T) {
	if _, err := Sqrt(mustParse(t, "-4"), 10); err == nil {
		t.Fatalf("expected domain error for sqrt of a negative value")
	}
}

func TestSqrtPerfectSquare(t *testing.T) {
	got, err := Sqrt(decimal.FromUint64(144), 10)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "12" {
		t.Fatalf("sqrt(144): got %s want 12", got)
	}
}

func TestPiDigits(t *testing.T) {
	got := Pi(30)
	want := "3.14159265358979323846264338328"
	if got.String() != want {
		t.Fatalf("pi to 30 digits: got %s want %s", got, want)
	}
}

func TestEDigits(t *testing.T) {
	got := E(30)
	want := "2.71828182845904523536028747135"
	if got.String() != want {
		t.Fatalf("e to 30 digits: got %s want %s", got, want)
	}
}

func TestLnTwo(t *testing.T) {
	got, err := Ln(decimal.FromUint64(2), 30)
	if err != nil {
		t.Fatal(err)
	}
	want := "0.693147180559945309417232121458"
	if got.String() != want {
		t.Fatalf("ln(2) to 30 digits: got %s want %s", got, want)
	}
}

func TestLnTen(t *testing.T) {
	got, err := Ln(decimal.FromUint64(10), 30)
	if err != nil {
		t.Fatal(err)
	}
	want := "2.30258509299404568401799145468"
	if got.String() != want {
		t.Fatalf("ln(10) to 30 digits: got %s want %s", got, want)
	}
}

func TestLnNonPositiveIsDomainError(t *testing.T) {
	if _, err := Ln(decimal.Zero, 10); err == nil {
		t.Fatalf("expected domain error for ln(0)")
	}
	if _, err := Ln(mustParse(t, "-1"), 10); err == nil {
		t.Fatalf("expected domain error for ln of a negative value")
	}
}

// TestExpLnRoundTrip checks the universal property that exp(ln(x)) recovers
// x to within a couple of guard digits of the requested precision.
func TestExpLnRoundTrip(t *testing.T) {
	x := mustParse(t, "12345.6789")
	const prec = 25
	lnx, err := Ln(x, prec)
	if err != nil {
		t.Fatal(err)
	}
	back := Exp(lnx, prec)
	diff := decimal.Sub(back, x).Abs()
	rel, err := decimal.Div(diff, x, prec, decimal.ToNearestEven)
	if err != nil {
		t.Fatal(err)
	}
	threshold := decimal.New(1, prec-4)
	if rel.Cmp(threshold) > 0 {
		t.Fatalf("exp(ln(x)) relative error too large: x=%s back=%s rel=%s", x, back, rel)
	}
}

func TestExpZeroAndNegative(t *testing.T) {
	if got := Exp(decimal.Zero, 10); got.String() != "1" {
		t.Fatalf("exp(0): got %s want 1", got)
	}
	pos := Exp(decimal.FromUint64(3), 20)
	neg := Exp(decimal.New(-3, 0), 20)
	one, err := decimal.Div(decimal.One, pos, 20, decimal.ToNearestEven)
	if err != nil {
		t.Fatal(err)
	}
	diff := decimal.Sub(one, neg).Abs()
	if diff.Cmp(decimal.New(1, 15)) > 0 {
		t.Fatalf("exp(-3) should be 1/exp(3): got %s vs %s", neg, one)
	}
}

func TestRootCube(t *testing.T) {
	got, err := Root(decimal.FromUint64(27), 3, 10)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "3" {
		t.Fatalf("cube root of 27: got %s want 3", got)
	}
}

func TestRootOddNegative(t *testing.T) {
	got, err := Root(mustParse(t, "-8"), 3, 10)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "-2" {
		t.Fatalf("cube root of -8: got %s want -2", got)
	}
}

func TestRootEvenNegativeIsDomainError(t *testing.T) {
	if _, err := Root(mustParse(t, "-4"), 2, 10); err == nil {
		t.Fatalf("expected domain error for even root of a negative value")
	}
}

func TestRootZeroExponentIsDomainError(t *testing.T) {
	if _, err := Root(decimal.FromUint64(4), 0, 10); err == nil {
		t.Fatalf("expected domain error for a zeroth root")
	}
}

func TestPowerIntegerExponents(t *testing.T) {
	got, err := Power(decimal.FromUint64(2), decimal.FromUint64(10), 10)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "1024" {
		t.Fatalf("2^10: got %s want 1024", got)
	}

	got, err = Power(decimal.FromUint64(2), decimal.New(-3, 0), 10)
	if err != nil {
		t.Fatal(err)
	}
	if got.Normalize().String() != "0.125" {
		t.Fatalf("2^-3: got %s want 0.125", got)
	}
}

func TestPowerZeroToZeroIsDomainError(t *testing.T) {
	if _, err := Power(decimal.Zero, decimal.Zero, 10); err == nil {
		t.Fatalf("expected domain error for 0**0")
	}
}

func TestPowerNegativeBaseFractionalExponentIsDomainError(t *testing.T) {
	if _, err := Power(mustParse(t, "-2"), mustParse(t, "0.5"), 10); err == nil {
		t.Fatalf("expected domain error for negative base with a fractional exponent")
	}
}

func TestSinCosPythagorean(t *testing.T) {
	x := mustParse(t, "1.2345")
	s, c := sinCos(x, 25)
	sq := decimal.Add(decimal.Mul(s, s), decimal.Mul(c, c))
	diff := decimal.Sub(sq, decimal.One).Abs()
	if diff.Cmp(decimal.New(1, 20)) > 0 {
		t.Fatalf("sin^2+cos^2 != 1: got %s", sq)
	}
}

func TestSinZero(t *testing.T) {
	if got := Sin(decimal.Zero, 10); !got.IsZero() {
		t.Fatalf("sin(0): got %s want 0", got)
	}
	if got := Cos(decimal.Zero, 10); got.String() != "1" {
		t.Fatalf("cos(0): got %s want 1", got)
	}
}

func TestCotAndCscUndefinedAtZero(t *testing.T) {
	if _, err := Cot(decimal.Zero, 20); err == nil {
		t.Fatalf("expected cot to be undefined at 0")
	}
	if _, err := Csc(decimal.Zero, 20); err == nil {
		t.Fatalf("expected csc to be undefined at 0")
	}
}

func TestTanMatchesSinOverCos(t *testing.T) {
	x := mustParse(t, "0.7")
	const prec = 20
	tan, err := Tan(x, prec)
	if err != nil {
		t.Fatal(err)
	}
	s, c := sinCos(x, prec+5)
	ratio, err := decimal.Div(s, c, prec, decimal.ToNearestEven)
	if err != nil {
		t.Fatal(err)
	}
	diff := decimal.Sub(tan, ratio).Abs()
	if diff.Cmp(decimal.New(1, prec-3)) > 0 {
		t.Fatalf("tan(x) != sin(x)/cos(x): tan=%s ratio=%s", tan, ratio)
	}
}
