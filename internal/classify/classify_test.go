package classify

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"d/dx(x^3 + 2x^2 - 5x + 1)", Derivative},
		{"Differentiate sin(x)", Derivative},
		{"integral(x^2)", Integral},
		{"∫x dx", Integral},
		{"lim x->0 sin(x)/x", Limit},
		{"∂f/∂x of x^2*y", PartialDerivative},
		{"dy/dx for x^2 + y^2 = 25", ImplicitDifferentiation},
		{"x^2 - 5x + 6 = 0", Quadratic},
		{"solve the quadratic equation", Quadratic},
		{"sin(x) + cos(x)", Trigonometric},
		{"ln(x^2)", Logarithmic},
		{"2x + 4 = 0", Equation},
		{"x^3 + 2x^2", Expression},
		{"hello there", Expression},
	}
	for _, tt := range tests {
		if got := Classify(tt.input); got != tt.want {
			t.Errorf("Classify(%q): want %s, got %s", tt.input, tt.want, got)
		}
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	// Contains both a derivative marker and a trig function, the earlier
	// rule decides.
	if got := Classify("d/dx(sin(x^2))"); got != Derivative {
		t.Errorf("want Derivative, got %s", got)
	}
	// An equals sign alone is not enough to outrank an earlier rule.
	if got := Classify("integrate x^2 = area"); got != Integral {
		t.Errorf("want Integral, got %s", got)
	}
}

func TestCategoriesOrder(t *testing.T) {
	cats := Categories()
	if len(cats) != 10 {
		t.Fatalf("want 10 categories, got %d", len(cats))
	}
	if cats[0] != Derivative {
		t.Errorf("want Derivative first, got %s", cats[0])
	}
	if cats[len(cats)-1] != Expression {
		t.Errorf("want Expression last, got %s", cats[len(cats)-1])
	}
}
