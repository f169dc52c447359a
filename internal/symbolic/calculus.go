package symbolic

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnsupported is returned when the pattern-based integrator or the limit
// engine has no rule for the given expression.
var ErrUnsupported = errors.New("unsupported expression")

// Diff returns the derivative of e with respect to the named variable.
func Diff(e Expr, v string) Expr {
	return diff(e.Simplify(), v).Simplify()
}

// DiffN applies Diff n times.
func DiffN(e Expr, v string, n int) Expr {
	out := e
	for i := 0; i < n; i++ {
		out = Diff(out, v)
	}
	return out
}

func diff(e Expr, v string) Expr {
	switch t := e.(type) {
	case *Num:
		return Int(0)
	case *Var:
		if t.name == v {
			return Int(1)
		}
		return Int(0)
	case *Sum:
		out := make([]Expr, len(t.terms))
		for i, term := range t.terms {
			out[i] = diff(term, v)
		}
		return Add(out...)
	case *Product:
		// Product rule over n factors.
		terms := make([]Expr, len(t.factors))
		for i := range t.factors {
			parts := make([]Expr, 0, len(t.factors))
			parts = append(parts, diff(t.factors[i], v))
			for j, f := range t.factors {
				if j != i {
					parts = append(parts, f)
				}
			}
			terms[i] = Mul(parts...)
		}
		return Add(terms...)
	case *Power:
		return diffPower(t, v)
	case *Call:
		return diffCall(t, v)
	}
	return Int(0)
}

func diffPower(p *Power, v string) Expr {
	db := diff(p.base, v)
	de := diff(p.exp, v)
	if _, expIsNum := p.exp.(*Num); expIsNum {
		// d(u^n) = n*u^(n-1)*u'
		return Mul(p.exp, Pow(p.base, Add(p.exp, Int(-1))), db)
	}
	if _, baseIsNum := p.base.(*Num); baseIsNum {
		// d(a^u) = a^u * ln(a) * u'
		return Mul(Pow(p.base, p.exp), Ln(p.base), de)
	}
	// General case: d(u^w) = u^w * (w' ln u + w u'/u).
	return Mul(Pow(p.base, p.exp), Add(Mul(de, Ln(p.base)), Mul(p.exp, db, Pow(p.base, Int(-1)))))
}

func diffCall(c *Call, v string) Expr {
	du := diff(c.arg, v)
	var outer Expr
	switch c.fn {
	case "sin":
		outer = Cos(c.arg)
	case "cos":
		outer = Neg(Sin(c.arg))
	case "tan":
		outer = Add(Int(1), Pow(Tan(c.arg), Int(2)))
	case "exp":
		outer = ExpE(c.arg)
	case "ln":
		outer = Pow(c.arg, Int(-1))
	default:
		return Mul(&Call{fn: "D[" + c.fn + "]", arg: c.arg}, du)
	}
	return Mul(outer, du)
}

// Integrate returns an antiderivative of e with respect to the named
// variable. The integrator is pattern based: constants, powers (including
// 1/u), sums, constant multiples, and sin/cos/tan/exp with a linear inner
// expression. Anything else returns ErrUnsupported.
func Integrate(e Expr, v string) (Expr, error) {
	out, err := integrate(e.Simplify(), v)
	if err != nil {
		return nil, err
	}
	return out.Simplify(), nil
}

func integrate(e Expr, v string) (Expr, error) {
	switch t := e.(type) {
	case *Num:
		return Mul(t, V(v)), nil
	case *Var:
		if t.name == v {
			return Mul(Rat(1, 2), Pow(V(v), Int(2))), nil
		}
		return Mul(t, V(v)), nil
	case *Sum:
		out := make([]Expr, len(t.terms))
		for i, term := range t.terms {
			p, err := integrate(term, v)
			if err != nil {
				return nil, err
			}
			out[i] = p
		}
		return Add(out...), nil
	case *Product:
		coeff, body := splitCoeff(t)
		if body == nil {
			return Mul(coeff, V(v)), nil
		}
		if !coeff.IsOne() {
			inner, err := integrate(body, v)
			if err != nil {
				return nil, err
			}
			return Mul(coeff, inner), nil
		}
	case *Power:
		return integratePower(t, v)
	case *Call:
		return integrateCall(t, v)
	}
	return nil, fmt.Errorf("integrate %s: %w", e.String(), ErrUnsupported)
}

func integratePower(p *Power, v string) (Expr, error) {
	n, ok := p.exp.(*Num)
	if !ok {
		return nil, fmt.Errorf("integrate %s: %w", p.String(), ErrUnsupported)
	}
	slope, _, linear := linearIn(p.base, v)
	if !linear || slope.IsZero() {
		return nil, fmt.Errorf("integrate %s: %w", p.String(), ErrUnsupported)
	}
	if n.IsMinusOne() {
		// u^-1 integrates to ln(u)/a.
		return Mul(numRecip(slope), Ln(p.base)), nil
	}
	next := numAdd(n, Int(1))
	return Mul(numRecip(numMul(slope, next)), Pow(p.base, next)), nil
}

func integrateCall(c *Call, v string) (Expr, error) {
	slope, _, linear := linearIn(c.arg, v)
	if !linear || slope.IsZero() {
		return nil, fmt.Errorf("integrate %s: %w", c.String(), ErrUnsupported)
	}
	recip := numRecip(slope)
	switch c.fn {
	case "sin":
		return Mul(recip, Neg(Cos(c.arg))), nil
	case "cos":
		return Mul(recip, Sin(c.arg)), nil
	case "exp":
		return Mul(recip, ExpE(c.arg)), nil
	case "tan":
		return Mul(recip, Neg(Ln(Cos(c.arg)))), nil
	case "ln":
		if arg, ok := c.arg.(*Var); ok && arg.name == v {
			// ∫ln(x)dx = x ln(x) - x
			return Add(Mul(V(v), Ln(V(v))), Neg(V(v))), nil
		}
	}
	return nil, fmt.Errorf("integrate %s: %w", c.String(), ErrUnsupported)
}

// linearIn reports whether e is a polynomial a*v + b with numeric
// coefficients, returning slope and intercept.
func linearIn(e Expr, v string) (slope, intercept *Num, ok bool) {
	coeffs, ok := PolyCoeffs(e, v)
	if !ok {
		return nil, nil, false
	}
	slope, intercept = Int(0), Int(0)
	for deg, c := range coeffs {
		switch deg {
		case 0:
			intercept = c
		case 1:
			slope = c
		default:
			return nil, nil, false
		}
	}
	return slope, intercept, true
}

// PolyCoeffs extracts numeric polynomial coefficients of e in the named
// variable. The second return is false when e is not a polynomial in v with
// constant coefficients.
func PolyCoeffs(e Expr, v string) (map[int]*Num, bool) {
	out := map[int]*Num{}
	if !collectCoeffs(e.Simplify(), v, out) {
		return nil, false
	}
	return out, true
}

func collectCoeffs(e Expr, v string, out map[int]*Num) bool {
	addCoeff := func(deg int, c *Num) {
		if prev, ok := out[deg]; ok {
			out[deg] = numAdd(prev, c)
		} else {
			out[deg] = c
		}
	}
	switch t := e.(type) {
	case *Num:
		addCoeff(0, t)
		return true
	case *Var:
		if t.name != v {
			return false
		}
		addCoeff(1, Int(1))
		return true
	case *Sum:
		for _, term := range t.terms {
			if !collectCoeffs(term, v, out) {
				return false
			}
		}
		return true
	case *Product:
		coeff, body := splitCoeff(t)
		if body == nil {
			addCoeff(0, coeff)
			return true
		}
		deg, ok := monomialDegree(body, v)
		if !ok {
			return false
		}
		addCoeff(deg, coeff)
		return true
	case *Power:
		deg, ok := monomialDegree(t, v)
		if !ok {
			return false
		}
		addCoeff(deg, Int(1))
		return true
	}
	return false
}

func monomialDegree(e Expr, v string) (int, bool) {
	switch t := e.(type) {
	case *Var:
		if t.name == v {
			return 1, true
		}
	case *Power:
		base, ok := t.base.(*Var)
		if !ok || base.name != v {
			return 0, false
		}
		n, ok := t.exp.(*Num)
		if !ok || !n.IsInteger() || n.IsNegative() {
			return 0, false
		}
		return int(n.val.Num().Int64()), true
	case *Product:
		deg := 0
		for _, f := range t.factors {
			d, ok := monomialDegree(f, v)
			if !ok {
				return 0, false
			}
			deg += d
		}
		return deg, true
	}
	return 0, false
}

// Degree returns the polynomial degree of e in the named variable, or -1
// when e is not a polynomial in it.
func Degree(e Expr, v string) int {
	coeffs, ok := PolyCoeffs(e, v)
	if !ok {
		return -1
	}
	max := 0
	for d, c := range coeffs {
		if !c.IsZero() && d > max {
			max = d
		}
	}
	return max
}

// Limit computes lim of e as the named variable approaches point. Direct
// substitution is tried first, then L'Hôpital's rule for 0/0 quotients, up
// to five rounds.
func Limit(e Expr, v string, point Expr) (Expr, error) {
	return limit(e.Simplify(), v, point, 5)
}

func limit(e Expr, v string, point Expr, rounds int) (Expr, error) {
	subbed := e.Sub(v, point).Simplify()
	if n, ok := subbed.Eval(); ok {
		f := n.Float64()
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			return subbed, nil
		}
	}
	if _, stillFree := FreeVars(subbed)[v]; !stillFree {
		if _, isNum := subbed.(*Num); isNum {
			return subbed, nil
		}
	}
	if rounds > 0 {
		if num, denom, ok := asQuotient(e); ok {
			nv, nok := num.Sub(v, point).Simplify().Eval()
			dv, dok := denom.Sub(v, point).Simplify().Eval()
			if nok && dok && nv.IsZero() && dv.IsZero() {
				return limit(Div(Diff(num, v), Diff(denom, v)).Simplify(), v, point, rounds-1)
			}
		}
	}
	return nil, fmt.Errorf("limit of %s as %s -> %s: %w", e.String(), v, point.String(), ErrUnsupported)
}

// asQuotient splits a product with negative-power factors into numerator
// and denominator.
func asQuotient(e Expr) (num, denom Expr, ok bool) {
	p, isProduct := e.(*Product)
	if !isProduct {
		return nil, nil, false
	}
	var numFactors, denomFactors []Expr
	for _, f := range p.factors {
		if pw, isPow := f.(*Power); isPow {
			if n, isNum := pw.exp.(*Num); isNum && n.IsMinusOne() {
				denomFactors = append(denomFactors, pw.base)
				continue
			}
		}
		numFactors = append(numFactors, f)
	}
	if len(denomFactors) == 0 {
		return nil, nil, false
	}
	combine := func(fs []Expr) Expr {
		switch len(fs) {
		case 0:
			return Int(1)
		case 1:
			return fs[0]
		}
		return &Product{factors: fs}
	}
	return combine(numFactors), combine(denomFactors), true
}
