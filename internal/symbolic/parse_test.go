package symbolic

import (
	"math"
	"testing"
)

func TestParsePolynomial(t *testing.T) {
	e, err := Parse("x^3 + 2x^2 - 5x + 1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := e.String(), "x^3 + 2*x^2 - 5*x + 1"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestParseImplicitMultiplication(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2x", "2*x"},
		{"3sin(x)", "3*sin(x)"},
		{"2pi", "2*pi"},
		{"(x + 1)(x - 1)", "(x + 1)*(x - 1)"},
		{"xy", "x*y"},
	}
	for _, tt := range tests {
		e, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if got := e.String(); got != tt.want {
			t.Errorf("Parse(%q): want %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestPiStaysSymbolicUntilEval(t *testing.T) {
	e, err := Parse("2pi")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := e.String(), "2*pi"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
	if _, ok := FreeVars(e)["pi"]; ok {
		t.Error("pi reported as a free variable")
	}
	n, ok := e.Eval()
	if !ok {
		t.Fatal("expected numeric result")
	}
	if got := n.Float64(); math.Abs(got-2*math.Pi) > 1e-12 {
		t.Errorf("want %v, got %v", 2*math.Pi, got)
	}
}

func TestParseFunctions(t *testing.T) {
	e, err := Parse("sin(x^2)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := e.String(), "sin(x^2)"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
	e, err = Parse("e^x")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := e.String(), "exp(x)"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestParseSqrtNormalizesToPower(t *testing.T) {
	e, err := Parse("sqrt(x)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := e.String(), "x^(1/2)"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "(", "x +", "2 **", "sin(x"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q): expected error, got nil", in)
		}
	}
}

func TestSubstituteAndEval(t *testing.T) {
	e, err := Parse("x^2 + 1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	n, ok := e.Sub("x", Int(3)).Simplify().Eval()
	if !ok {
		t.Fatal("expected numeric result")
	}
	if got, want := n.String(), "10"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}
