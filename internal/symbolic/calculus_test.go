package symbolic

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, in string) Expr {
	t.Helper()
	e, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse(%q): %v", in, err)
	}
	return e
}

func TestDiffPolynomial(t *testing.T) {
	e := mustParse(t, "x^3 + 2x^2 - 5x + 1")
	if got, want := Diff(e, "x").String(), "3*x^2 + 4*x - 5"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestDiffChainRule(t *testing.T) {
	e := mustParse(t, "sin(x^2)")
	if got, want := Diff(e, "x").String(), "2*x*cos(x^2)"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestDiffProductRule(t *testing.T) {
	e := mustParse(t, "x*sin(x)")
	if got, want := Diff(e, "x").String(), "sin(x) + x*cos(x)"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestDiffLog(t *testing.T) {
	e := mustParse(t, "ln(x)")
	if got, want := Diff(e, "x").String(), "x^(-1)"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestDiffN(t *testing.T) {
	e := mustParse(t, "x^3")
	if got, want := DiffN(e, "x", 2).String(), "6*x"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestIntegratePower(t *testing.T) {
	e := mustParse(t, "x^2")
	got, err := Integrate(e, "x")
	if err != nil {
		t.Fatalf("Integrate: %v", err)
	}
	if want := "1/3*x^3"; got.String() != want {
		t.Errorf("want %q, got %q", want, got.String())
	}
}

func TestIntegrateTrig(t *testing.T) {
	e := mustParse(t, "sin(x)")
	got, err := Integrate(e, "x")
	if err != nil {
		t.Fatalf("Integrate: %v", err)
	}
	if want := "-cos(x)"; got.String() != want {
		t.Errorf("want %q, got %q", want, got.String())
	}
}

func TestIntegrateReciprocal(t *testing.T) {
	e := mustParse(t, "1/x")
	got, err := Integrate(e, "x")
	if err != nil {
		t.Fatalf("Integrate: %v", err)
	}
	if want := "ln(x)"; got.String() != want {
		t.Errorf("want %q, got %q", want, got.String())
	}
}

func TestIntegrateLinearArgument(t *testing.T) {
	e := mustParse(t, "e^(2x)")
	got, err := Integrate(e, "x")
	if err != nil {
		t.Fatalf("Integrate: %v", err)
	}
	if want := "1/2*exp(2*x)"; got.String() != want {
		t.Errorf("want %q, got %q", want, got.String())
	}
}

func TestIntegrateUnsupported(t *testing.T) {
	e := mustParse(t, "x*sin(x)")
	if _, err := Integrate(e, "x"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("want ErrUnsupported, got %v", err)
	}
}

func TestLimitBySubstitution(t *testing.T) {
	e := mustParse(t, "x^2 + 1")
	got, err := Limit(e, "x", Int(2))
	if err != nil {
		t.Fatalf("Limit: %v", err)
	}
	if want := "5"; got.String() != want {
		t.Errorf("want %q, got %q", want, got.String())
	}
}

func TestLimitLHopital(t *testing.T) {
	e := mustParse(t, "sin(x)/x")
	got, err := Limit(e, "x", Int(0))
	if err != nil {
		t.Fatalf("Limit: %v", err)
	}
	if want := "1"; got.String() != want {
		t.Errorf("want %q, got %q", want, got.String())
	}
}

func TestLimitSubstitutionKeepsZeroOverZeroUndefined(t *testing.T) {
	// Substituting x=0 into sin(x)/x yields 0 * 0^(-1); folding that
	// product to 0 would short-circuit the L'Hopital branch.
	zeroTimesUndefined := Mul(Int(0), &Power{base: Int(0), exp: Int(-1)})
	if _, ok := zeroTimesUndefined.Eval(); ok {
		t.Fatal("0 * 0^(-1) must not evaluate")
	}
	if zeroTimesUndefined.String() == "0" {
		t.Fatal("0 * 0^(-1) must not simplify to 0")
	}

	e := mustParse(t, "x/x")
	got, err := Limit(e, "x", Int(0))
	if err != nil {
		t.Fatalf("Limit: %v", err)
	}
	if want := "1"; got.String() != want {
		t.Errorf("want %q, got %q", want, got.String())
	}
}

func TestDegree(t *testing.T) {
	if got := Degree(mustParse(t, "x^2 - 5x + 6"), "x"); got != 2 {
		t.Errorf("want degree 2, got %d", got)
	}
	if got := Degree(mustParse(t, "sin(x)"), "x"); got != -1 {
		t.Errorf("want degree -1, got %d", got)
	}
}
