package symbolic

import "testing"

func TestSolveQuadraticExactRoots(t *testing.T) {
	roots, err := SolveQuadratic(Int(1), Int(-5), Int(6))
	if err != nil {
		t.Fatalf("SolveQuadratic: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("want 2 roots, got %d", len(roots))
	}
	if got, want := roots[0].String(), "3"; got != want {
		t.Errorf("want first root %q, got %q", want, got)
	}
	if got, want := roots[1].String(), "2"; got != want {
		t.Errorf("want second root %q, got %q", want, got)
	}
}

func TestSolveQuadraticIrrationalRoots(t *testing.T) {
	roots, err := SolveQuadratic(Int(1), Int(-2), Int(-1))
	if err != nil {
		t.Fatalf("SolveQuadratic: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("want 2 roots, got %d", len(roots))
	}
	if got, want := roots[0].String(), "2.41421"; got != want {
		t.Errorf("want first root %q, got %q", want, got)
	}
	if got, want := roots[1].String(), "-0.414214"; got != want {
		t.Errorf("want second root %q, got %q", want, got)
	}
}

func TestSolveQuadraticNegativeDiscriminant(t *testing.T) {
	if _, err := SolveQuadratic(Int(1), Int(0), Int(1)); err == nil {
		t.Error("expected error for negative discriminant")
	}
}

func TestSolveLinear(t *testing.T) {
	root, err := SolveLinear(Int(2), Int(4))
	if err != nil {
		t.Fatalf("SolveLinear: %v", err)
	}
	if got, want := root.String(), "-2"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestSolvePolynomialFromExpression(t *testing.T) {
	e := mustParse(t, "x^2 - 5x + 6")
	roots, err := SolvePolynomial(e, "x")
	if err != nil {
		t.Fatalf("SolvePolynomial: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("want 2 roots, got %d", len(roots))
	}
	if got, want := roots[0].String(), "3"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
	if got, want := roots[1].String(), "2"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestSimplifyStepsPythagorean(t *testing.T) {
	e := mustParse(t, "sin(x)^2 + cos(x)^2")
	result, steps := SimplifySteps(e)
	if got, want := result.String(), "1"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
	if len(steps) == 0 {
		t.Error("expected at least one recorded rewrite")
	}
}
