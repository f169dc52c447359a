// Package symbolic implements the expression engine behind the tutoring
// solvers: an immutable expression tree with exact rational arithmetic,
// deterministic simplification, differentiation, pattern-based integration,
// limits, and quadratic solving.
package symbolic

import (
	"math"
	"math/big"
	"sort"
	"strings"
)

// Expr is an immutable symbolic expression.
type Expr interface {
	// Simplify returns a canonical, flattened form of the expression.
	Simplify() Expr
	// String renders the expression in the tutoring notation (3*x^2 + 4*x - 5).
	String() string
	// Sub substitutes value for every occurrence of the named variable.
	Sub(name string, value Expr) Expr
	// Eval folds the expression to a number if it contains no free variables.
	Eval() (*Num, bool)
	// Equal reports structural equality.
	Equal(other Expr) bool
}

// ============================================================
// Num — exact rational constant
// ============================================================

type Num struct{ val *big.Rat }

func Int(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }

func Rat(p, q int64) *Num {
	if q == 0 {
		panic("symbolic: zero denominator")
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

func Float(f float64) *Num { return &Num{val: new(big.Rat).SetFloat64(f)} }

func (n *Num) Simplify() Expr          { return n }
func (n *Num) Sub(string, Expr) Expr   { return n }
func (n *Num) Eval() (*Num, bool)      { return n, true }
func (n *Num) IsZero() bool            { return n.val.Sign() == 0 }
func (n *Num) IsOne() bool             { return n.val.Cmp(ratOne) == 0 }
func (n *Num) IsMinusOne() bool        { return n.val.Cmp(ratMinusOne) == 0 }
func (n *Num) IsInteger() bool         { return n.val.IsInt() }
func (n *Num) IsNegative() bool        { return n.val.Sign() < 0 }
func (n *Num) Float64() float64        { f, _ := n.val.Float64(); return f }
func (n *Num) Rat() *big.Rat           { return new(big.Rat).Set(n.val) }

var (
	ratOne      = big.NewRat(1, 1)
	ratMinusOne = big.NewRat(-1, 1)
)

func (n *Num) Equal(other Expr) bool {
	o, ok := other.(*Num)
	return ok && n.val.Cmp(o.val) == 0
}

func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

func numAdd(a, b *Num) *Num { return &Num{val: new(big.Rat).Add(a.val, b.val)} }
func numMul(a, b *Num) *Num { return &Num{val: new(big.Rat).Mul(a.val, b.val)} }
func numNeg(a *Num) *Num    { return &Num{val: new(big.Rat).Neg(a.val)} }

func numRecip(a *Num) *Num {
	if a.IsZero() {
		panic("symbolic: division by zero")
	}
	return &Num{val: new(big.Rat).Inv(a.val)}
}

func numAbs(a *Num) *Num {
	r := new(big.Rat).Set(a.val)
	if r.Sign() < 0 {
		r.Neg(r)
	}
	return &Num{val: r}
}

// ============================================================
// Var — free variable
// ============================================================

type Var struct{ name string }

func V(name string) *Var { return &Var{name: name} }

func (v *Var) Simplify() Expr { return v }
func (v *Var) String() string { return v.name }
func (v *Var) Name() string   { return v.name }

// Eval resolves pi numerically; every other variable stays free.
func (v *Var) Eval() (*Num, bool) {
	if v.name == "pi" {
		return Float(math.Pi), true
	}
	return nil, false
}

func (v *Var) Sub(name string, value Expr) Expr {
	if v.name == name {
		return value
	}
	return v
}

func (v *Var) Equal(other Expr) bool {
	o, ok := other.(*Var)
	return ok && v.name == o.name
}

// ============================================================
// Sum — n-ary addition
// ============================================================

type Sum struct{ terms []Expr }

// Add builds a simplified sum of the given terms.
func Add(terms ...Expr) Expr { return (&Sum{terms: terms}).Simplify() }

func (s *Sum) Terms() []Expr { return s.terms }

func (s *Sum) Simplify() Expr {
	flat := make([]Expr, 0, len(s.terms))
	for _, t := range s.terms {
		switch v := t.Simplify().(type) {
		case *Sum:
			flat = append(flat, v.terms...)
		default:
			flat = append(flat, v)
		}
	}

	// Collect like terms by the string key of their non-numeric part, keeping
	// first-seen order so polynomial results read in the order they were built.
	constant := Int(0)
	var order []string
	coeffs := map[string]*Num{}
	bodies := map[string]Expr{}
	for _, t := range flat {
		coeff, body := splitCoeff(t)
		if body == nil {
			constant = numAdd(constant, coeff)
			continue
		}
		key := body.String()
		if _, seen := coeffs[key]; !seen {
			order = append(order, key)
			coeffs[key] = Int(0)
			bodies[key] = body
		}
		coeffs[key] = numAdd(coeffs[key], coeff)
	}

	result := make([]Expr, 0, len(order)+1)
	for _, key := range order {
		c := coeffs[key]
		if c.IsZero() {
			continue
		}
		if c.IsOne() {
			result = append(result, bodies[key])
		} else {
			result = append(result, Mul(c, bodies[key]))
		}
	}
	if !constant.IsZero() {
		result = append(result, constant)
	}

	switch len(result) {
	case 0:
		return Int(0)
	case 1:
		return result[0]
	}
	return &Sum{terms: result}
}

// splitCoeff separates a term into its numeric coefficient and the remaining
// body. A pure number yields a nil body.
func splitCoeff(e Expr) (*Num, Expr) {
	switch v := e.(type) {
	case *Num:
		return v, nil
	case *Product:
		coeff := Int(1)
		rest := make([]Expr, 0, len(v.factors))
		for _, f := range v.factors {
			if n, ok := f.(*Num); ok {
				coeff = numMul(coeff, n)
			} else {
				rest = append(rest, f)
			}
		}
		switch len(rest) {
		case 0:
			return coeff, nil
		case 1:
			return coeff, rest[0]
		}
		return coeff, &Product{factors: rest}
	}
	return Int(1), e
}

func (s *Sum) String() string {
	var b strings.Builder
	for i, t := range s.terms {
		neg, body := signSplit(t)
		switch {
		case i == 0 && neg:
			b.WriteString("-" + body)
		case i == 0:
			b.WriteString(body)
		case neg:
			b.WriteString(" - " + body)
		default:
			b.WriteString(" + " + body)
		}
	}
	if len(s.terms) == 0 {
		return "0"
	}
	return b.String()
}

// signSplit reports whether a term renders with a leading minus and returns
// the rendering of its magnitude.
func signSplit(e Expr) (bool, string) {
	coeff, body := splitCoeff(e)
	if !coeff.IsNegative() {
		return false, e.String()
	}
	abs := numAbs(coeff)
	if body == nil {
		return true, abs.String()
	}
	if abs.IsOne() {
		return true, body.String()
	}
	return true, (&Product{factors: append([]Expr{abs}, productFactors(body)...)}).String()
}

func productFactors(e Expr) []Expr {
	if p, ok := e.(*Product); ok {
		return p.factors
	}
	return []Expr{e}
}

func (s *Sum) Sub(name string, value Expr) Expr {
	out := make([]Expr, len(s.terms))
	for i, t := range s.terms {
		out[i] = t.Sub(name, value)
	}
	return Add(out...)
}

func (s *Sum) Eval() (*Num, bool) {
	acc := Int(0)
	for _, t := range s.terms {
		n, ok := t.Eval()
		if !ok {
			return nil, false
		}
		acc = numAdd(acc, n)
	}
	return acc, true
}

func (s *Sum) Equal(other Expr) bool {
	o, ok := other.(*Sum)
	if !ok || len(s.terms) != len(o.terms) {
		return false
	}
	for i := range s.terms {
		if !s.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

// ============================================================
// Product — n-ary multiplication
// ============================================================

type Product struct{ factors []Expr }

// Mul builds a simplified product of the given factors.
func Mul(factors ...Expr) Expr { return (&Product{factors: factors}).Simplify() }

func (p *Product) Factors() []Expr { return p.factors }

func (p *Product) Simplify() Expr {
	flat := make([]Expr, 0, len(p.factors))
	for _, f := range p.factors {
		switch v := f.Simplify().(type) {
		case *Product:
			flat = append(flat, v.factors...)
		default:
			flat = append(flat, v)
		}
	}

	coeff := Int(1)
	rest := make([]Expr, 0, len(flat))
	for _, f := range flat {
		if n, ok := f.(*Num); ok {
			coeff = numMul(coeff, n)
		} else {
			rest = append(rest, f)
		}
	}
	if coeff.IsZero() {
		// 0 times an undefined factor is not 0.
		for _, f := range rest {
			if isUndefinedPower(f) {
				return &Product{factors: append([]Expr{coeff}, rest...)}
			}
		}
		return Int(0)
	}
	if len(rest) == 0 {
		return coeff
	}

	sort.SliceStable(rest, func(i, j int) bool {
		return factorRank(rest[i]) < factorRank(rest[j])
	})

	if coeff.IsOne() {
		if len(rest) == 1 {
			return rest[0]
		}
		return &Product{factors: rest}
	}
	return &Product{factors: append([]Expr{coeff}, rest...)}
}

// isUndefinedPower reports a zero base raised to a negative exponent, the
// form Power.Simplify keeps unevaluated.
func isUndefinedPower(e Expr) bool {
	p, ok := e.(*Power)
	if !ok {
		return false
	}
	b, ok := p.base.(*Num)
	if !ok || !b.IsZero() {
		return false
	}
	n, ok := p.exp.(*Num)
	return ok && n.IsNegative()
}

// factorRank orders factors so that plain variables and powers come before
// function calls and parenthesised sums, which keeps renderings stable.
func factorRank(e Expr) string {
	switch e.(type) {
	case *Var, *Power:
		return "0" + e.String()
	case *Call:
		return "1" + e.String()
	}
	return "2" + e.String()
}

func (p *Product) String() string {
	factors := p.factors
	prefix := ""
	if len(factors) > 1 {
		if n, ok := factors[0].(*Num); ok && n.IsMinusOne() {
			prefix = "-"
			factors = factors[1:]
		}
	}
	parts := make([]string, len(factors))
	for i, f := range factors {
		if _, isSum := f.(*Sum); isSum {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}
	if len(parts) == 0 {
		return "1"
	}
	return prefix + strings.Join(parts, "*")
}

func (p *Product) Sub(name string, value Expr) Expr {
	out := make([]Expr, len(p.factors))
	for i, f := range p.factors {
		out[i] = f.Sub(name, value)
	}
	return Mul(out...)
}

func (p *Product) Eval() (*Num, bool) {
	acc := Int(1)
	for _, f := range p.factors {
		n, ok := f.Eval()
		if !ok {
			return nil, false
		}
		acc = numMul(acc, n)
	}
	return acc, true
}

func (p *Product) Equal(other Expr) bool {
	o, ok := other.(*Product)
	if !ok || len(p.factors) != len(o.factors) {
		return false
	}
	for i := range p.factors {
		if !p.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}

// ============================================================
// Power — base^exponent
// ============================================================

type Power struct{ base, exp Expr }

// Pow builds a simplified power expression.
func Pow(base, exp Expr) Expr { return (&Power{base: base, exp: exp}).Simplify() }

func (p *Power) Base() Expr     { return p.base }
func (p *Power) Exponent() Expr { return p.exp }

func (p *Power) Simplify() Expr {
	base := p.base.Simplify()
	exp := p.exp.Simplify()

	if en, ok := exp.(*Num); ok {
		if en.IsZero() {
			return Int(1)
		}
		if en.IsOne() {
			return base
		}
		if bn, ok2 := base.(*Num); ok2 {
			if bn.IsZero() {
				if en.IsNegative() {
					return &Power{base: base, exp: exp} // undefined, keep as-is
				}
				return Int(0)
			}
			if bn.IsOne() {
				return Int(1)
			}
			if en.IsInteger() {
				if e := en.val.Num().Int64(); e >= -16 && e <= 16 {
					acc := Int(1)
					steps := e
					if steps < 0 {
						steps = -steps
					}
					for i := int64(0); i < steps; i++ {
						acc = numMul(acc, bn)
					}
					if e < 0 {
						acc = numRecip(acc)
					}
					return acc
				}
			}
		}
	}
	if inner, ok := base.(*Power); ok {
		return Pow(inner.base, Mul(inner.exp, exp))
	}
	return &Power{base: base, exp: exp}
}

func (p *Power) String() string {
	baseStr := p.base.String()
	switch p.base.(type) {
	case *Sum, *Product:
		baseStr = "(" + baseStr + ")"
	}
	expStr := p.exp.String()
	switch e := p.exp.(type) {
	case *Sum, *Product, *Power:
		expStr = "(" + expStr + ")"
	case *Num:
		if e.IsNegative() || !e.IsInteger() {
			expStr = "(" + expStr + ")"
		}
	}
	return baseStr + "^" + expStr
}

func (p *Power) Sub(name string, value Expr) Expr {
	return Pow(p.base.Sub(name, value), p.exp.Sub(name, value))
}

func (p *Power) Eval() (*Num, bool) {
	b, ok1 := p.base.Eval()
	e, ok2 := p.exp.Eval()
	if !ok1 || !ok2 {
		return nil, false
	}
	f := math.Pow(b.Float64(), e.Float64())
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return Float(f), true
}

func (p *Power) Equal(other Expr) bool {
	o, ok := other.(*Power)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}

// ============================================================
// Call — named unary function application
// ============================================================

type Call struct {
	fn  string
	arg Expr
}

func NewCall(fn string, arg Expr) Expr { return (&Call{fn: fn, arg: arg}).Simplify() }

func Sin(arg Expr) Expr  { return NewCall("sin", arg) }
func Cos(arg Expr) Expr  { return NewCall("cos", arg) }
func Tan(arg Expr) Expr  { return NewCall("tan", arg) }
func ExpE(arg Expr) Expr { return NewCall("exp", arg) }
func Ln(arg Expr) Expr   { return NewCall("ln", arg) }
func Sqrt(arg Expr) Expr { return Pow(arg, Rat(1, 2)) }

func (c *Call) FuncName() string { return c.fn }
func (c *Call) Arg() Expr        { return c.arg }

func (c *Call) Simplify() Expr {
	arg := c.arg.Simplify()
	if n, ok := arg.(*Num); ok {
		switch c.fn {
		case "sin":
			if n.IsZero() {
				return Int(0)
			}
		case "cos":
			if n.IsZero() {
				return Int(1)
			}
		case "tan":
			if n.IsZero() {
				return Int(0)
			}
		case "ln":
			if n.IsOne() {
				return Int(0)
			}
		case "exp":
			if n.IsZero() {
				return Int(1)
			}
		}
	}
	// exp(ln(u)) == u and ln(exp(u)) == u.
	if inner, ok := arg.(*Call); ok {
		if c.fn == "exp" && inner.fn == "ln" {
			return inner.arg
		}
		if c.fn == "ln" && inner.fn == "exp" {
			return inner.arg
		}
	}
	return &Call{fn: c.fn, arg: arg}
}

func (c *Call) String() string { return c.fn + "(" + c.arg.String() + ")" }

func (c *Call) Sub(name string, value Expr) Expr {
	return NewCall(c.fn, c.arg.Sub(name, value))
}

func (c *Call) Eval() (*Num, bool) {
	n, ok := c.arg.Eval()
	if !ok {
		return nil, false
	}
	v := n.Float64()
	var f float64
	switch c.fn {
	case "sin":
		f = math.Sin(v)
	case "cos":
		f = math.Cos(v)
	case "tan":
		f = math.Tan(v)
	case "exp":
		f = math.Exp(v)
	case "ln":
		if v <= 0 {
			return nil, false
		}
		f = math.Log(v)
	default:
		return nil, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return Float(f), true
}

func (c *Call) Equal(other Expr) bool {
	o, ok := other.(*Call)
	return ok && c.fn == o.fn && c.arg.Equal(o.arg)
}

// ============================================================
// Helpers
// ============================================================

// Neg returns the additive inverse of e.
func Neg(e Expr) Expr { return Mul(Int(-1), e) }

// Div returns num/denom as num*denom^-1.
func Div(num, denom Expr) Expr { return Mul(num, Pow(denom, Int(-1))) }

// FreeVars returns the set of variable names appearing in e. Named
// constants such as pi are not free.
func FreeVars(e Expr) map[string]struct{} {
	out := map[string]struct{}{}
	collectVars(e, out)
	return out
}

func collectVars(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case *Var:
		// pi is a named constant, not a free variable.
		if v.name != "pi" {
			out[v.name] = struct{}{}
		}
	case *Sum:
		for _, t := range v.terms {
			collectVars(t, out)
		}
	case *Product:
		for _, f := range v.factors {
			collectVars(f, out)
		}
	case *Power:
		collectVars(v.base, out)
		collectVars(v.exp, out)
	case *Call:
		collectVars(v.arg, out)
	}
}
