package symbolic

// Rewrite is one pass of the stepwise simplifier: the expression after the
// pass and a description of what changed.
type Rewrite struct {
	Result      string `json:"result"`
	Description string `json:"description"`
}

// SimplifySteps simplifies e and records every pass that changed its
// rendering. The trail is what the tutoring UI shows for plain expressions.
func SimplifySteps(e Expr) (Expr, []Rewrite) {
	var steps []Rewrite
	prev := e.String()

	curr := e.Simplify()
	if s := curr.String(); s != prev {
		steps = append(steps, Rewrite{Result: s, Description: "combine like terms and fold constants"})
		prev = s
	}

	for i := 0; i < 6; i++ {
		next := applyTrigIdentities(curr).Simplify()
		s := next.String()
		if s == prev {
			break
		}
		steps = append(steps, Rewrite{Result: s, Description: "apply trigonometric and logarithmic identities"})
		curr = next
		prev = s
	}
	return curr, steps
}

// applyTrigIdentities rewrites sin(u)^2 + cos(u)^2 pairs with equal
// coefficients to that coefficient.
func applyTrigIdentities(e Expr) Expr {
	switch v := e.(type) {
	case *Sum:
		rewritten := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			rewritten[i] = applyTrigIdentities(t)
		}
		return foldPythagorean(Add(rewritten...))
	case *Product:
		rewritten := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			rewritten[i] = applyTrigIdentities(f)
		}
		return Mul(rewritten...)
	case *Power:
		return Pow(applyTrigIdentities(v.base), v.exp)
	case *Call:
		return NewCall(v.fn, applyTrigIdentities(v.arg))
	}
	return e
}

func foldPythagorean(e Expr) Expr {
	sum, ok := e.(*Sum)
	if !ok {
		return e
	}
	type squared struct {
		fn    string
		arg   string
		coeff *Num
		idx   int
	}
	var found []squared
	for idx, t := range sum.terms {
		coeff, body := splitCoeff(t)
		pw, ok := body.(*Power)
		if !ok {
			continue
		}
		call, ok := pw.base.(*Call)
		if !ok || (call.fn != "sin" && call.fn != "cos") {
			continue
		}
		if n, ok := pw.exp.(*Num); !ok || !n.Equal(Int(2)) {
			continue
		}
		found = append(found, squared{call.fn, call.arg.String(), coeff, idx})
	}
	for i := 0; i < len(found); i++ {
		for j := i + 1; j < len(found); j++ {
			a, b := found[i], found[j]
			if a.arg != b.arg || a.fn == b.fn || a.coeff.val.Cmp(b.coeff.val) != 0 {
				continue
			}
			rest := make([]Expr, 0, len(sum.terms)-1)
			for idx, t := range sum.terms {
				if idx != a.idx && idx != b.idx {
					rest = append(rest, t)
				}
			}
			rest = append(rest, a.coeff)
			return Add(rest...)
		}
	}
	return e
}
