// Package classify assigns a coarse problem category to raw input text.
//
// Classification is ordered first-match: the first rule whose keywords or
// pattern hit the input wins, and every input maps to exactly one category.
package classify

import (
	"regexp"
	"strings"
)

// Category labels a calculus problem. The set is closed.
type Category string

const (
	Derivative              Category = "Derivative"
	Integral                Category = "Integral"
	Limit                   Category = "Limit"
	PartialDerivative       Category = "Partial Derivative"
	ImplicitDifferentiation Category = "Implicit Differentiation"
	Quadratic               Category = "Quadratic"
	Trigonometric           Category = "Trigonometric"
	Logarithmic             Category = "Logarithmic"
	Equation                Category = "Equation"
	Expression              Category = "Expression"
)

// rule matches by any keyword substring or by an optional regexp.
type rule struct {
	category Category
	keywords []string
	pattern  *regexp.Regexp
}

// rules are checked in order. An input hitting several rules is assigned to
// the earliest one, so d/dx(sin(x)) is a Derivative, not Trigonometric.
var rules = []rule{
	{category: Derivative, keywords: []string{"d/dx", "derivative", "differentiate"}},
	{category: Integral, keywords: []string{"∫", "integral", "integrate", "antiderivative"}},
	{category: Limit, keywords: []string{"lim"}},
	{category: PartialDerivative, keywords: []string{"∂", "partial"}},
	{category: ImplicitDifferentiation, keywords: []string{"dy/dx", "implicit"}},
	{category: Quadratic, keywords: []string{"quadratic"}, pattern: regexp.MustCompile(`x\^2.*=|=.*x\^2`)},
	{category: Trigonometric, keywords: []string{"sin", "cos", "tan", "sec", "csc", "cot"}},
	{category: Logarithmic, keywords: []string{"ln", "log"}},
	{category: Equation, keywords: []string{"="}},
}

// Classify maps an input string to its category. Matching is
// case-insensitive and falls through to Expression.
func Classify(input string) Category {
	lower := strings.ToLower(input)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
		if r.pattern != nil && r.pattern.MatchString(lower) {
			return r.category
		}
	}
	return Expression
}

// Categories returns every label in precedence order, Expression last.
func Categories() []Category {
	out := make([]Category, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.category)
	}
	return append(out, Expression)
}
