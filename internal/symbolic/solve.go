package symbolic

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Approx is a decimal approximation, produced when a root is irrational.
type Approx struct{ f float64 }

func NewApprox(f float64) *Approx { return &Approx{f: f} }

func (a *Approx) Simplify() Expr        { return a }
func (a *Approx) String() string        { return strconv.FormatFloat(a.f, 'g', 6, 64) }
func (a *Approx) Sub(string, Expr) Expr { return a }
func (a *Approx) Eval() (*Num, bool)    { return Float(a.f), true }
func (a *Approx) Float64() float64      { return a.f }

func (a *Approx) Equal(other Expr) bool {
	o, ok := other.(*Approx)
	return ok && a.f == o.f
}

// SolveLinear solves a*x + b = 0 for x.
func SolveLinear(a, b *Num) (Expr, error) {
	if a.IsZero() {
		return nil, fmt.Errorf("solve linear: zero leading coefficient")
	}
	return numMul(numNeg(b), numRecip(a)), nil
}

// SolveQuadratic solves a*x^2 + b*x + c = 0. Roots are exact rationals when
// the discriminant is a perfect square, decimal approximations otherwise.
// A negative discriminant yields no real roots and an error.
func SolveQuadratic(a, b, c *Num) ([]Expr, error) {
	if a.IsZero() {
		root, err := SolveLinear(b, c)
		if err != nil {
			return nil, err
		}
		return []Expr{root}, nil
	}
	// disc = b^2 - 4ac
	disc := new(big.Rat).Mul(b.val, b.val)
	disc.Sub(disc, new(big.Rat).Mul(big.NewRat(4, 1), new(big.Rat).Mul(a.val, c.val)))

	if disc.Sign() < 0 {
		return nil, fmt.Errorf("solve quadratic: negative discriminant, no real roots")
	}

	twoA := new(big.Rat).Mul(big.NewRat(2, 1), a.val)
	if root, exact := ratSqrt(disc); exact {
		r1 := new(big.Rat).Add(new(big.Rat).Neg(b.val), root)
		r1.Quo(r1, twoA)
		r2 := new(big.Rat).Sub(new(big.Rat).Neg(b.val), root)
		r2.Quo(r2, twoA)
		if r1.Cmp(r2) == 0 {
			return []Expr{&Num{val: r1}}, nil
		}
		return []Expr{&Num{val: r1}, &Num{val: r2}}, nil
	}

	df, _ := disc.Float64()
	bf, _ := b.val.Float64()
	tf, _ := twoA.Float64()
	s := math.Sqrt(df)
	return []Expr{NewApprox((-bf + s) / tf), NewApprox((-bf - s) / tf)}, nil
}

// ratSqrt returns the exact rational square root of r when both numerator
// and denominator are perfect squares.
func ratSqrt(r *big.Rat) (*big.Rat, bool) {
	if r.Sign() < 0 {
		return nil, false
	}
	num := new(big.Int).Sqrt(r.Num())
	if new(big.Int).Mul(num, num).Cmp(r.Num()) != 0 {
		return nil, false
	}
	den := new(big.Int).Sqrt(r.Denom())
	if new(big.Int).Mul(den, den).Cmp(r.Denom()) != 0 {
		return nil, false
	}
	return new(big.Rat).SetFrac(num, den), true
}

// SolvePolynomial solves a degree <= 2 polynomial equation expr = 0 in the
// named variable.
func SolvePolynomial(e Expr, v string) ([]Expr, error) {
	coeffs, ok := PolyCoeffs(e, v)
	if !ok {
		return nil, fmt.Errorf("solve: %s is not a polynomial in %s", e.String(), v)
	}
	get := func(d int) *Num {
		if c, ok := coeffs[d]; ok {
			return c
		}
		return Int(0)
	}
	switch Degree(e, v) {
	case 0:
		return nil, fmt.Errorf("solve: no variable %s in %s", v, e.String())
	case 1:
		root, err := SolveLinear(get(1), get(0))
		if err != nil {
			return nil, err
		}
		return []Expr{root}, nil
	case 2:
		return SolveQuadratic(get(2), get(1), get(0))
	}
	return nil, fmt.Errorf("solve: degree %d is beyond the quadratic solver", Degree(e, v))
}
