// Package solver turns classified calculus problems into solution records.
//
// Each solver strips the wrapper syntax from the input, delegates the math to
// the symbolic engine and packages the rendered result together with a
// narrative step list. Engine failures surface as a single generic error per
// operation.
package solver

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DanOgh07/quantumin-solver/internal/classify"
	"github.com/DanOgh07/quantumin-solver/internal/symbolic"
)

// Step is one line of solution narrative.
type Step struct {
	Ordinal     int    `json:"ordinal"`
	Expression  string `json:"expression"`
	Explanation string `json:"explanation"`
	Method      string `json:"method,omitempty"`
}

// Solution is the immutable record of one solve action.
type Solution struct {
	ID        string            `json:"id"`
	Input     string            `json:"input"`
	Result    string            `json:"result"`
	Steps     []Step            `json:"steps"`
	Category  classify.Category `json:"category"`
	Method    string            `json:"method,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Solve classifies the input and routes it to the matching solver.
func Solve(input string) (*Solution, error) {
	category := classify.Classify(input)
	switch category {
	case classify.Derivative:
		return Derivative(input)
	case classify.Integral:
		return Integral(input)
	case classify.ImplicitDifferentiation:
		return ImplicitDiff(input)
	default:
		return General(input, category)
	}
}

func newSolution(input, result string, steps []Step, category classify.Category, method string) *Solution {
	return &Solution{
		ID:        uuid.NewString(),
		Input:     input,
		Result:    result,
		Steps:     steps,
		Category:  category,
		Method:    method,
		CreatedAt: time.Now().UTC(),
	}
}

var (
	ddxParen      = regexp.MustCompile(`^d/d([a-z])\s*\((.*)\)$`)
	ddxBare       = regexp.MustCompile(`^d/d([a-z])\s+`)
	derivativeOf  = regexp.MustCompile(`(?i)^(?:find\s+)?(?:the\s+)?derivative\s+of\s+`)
	differentiate = regexp.MustCompile(`(?i)^differentiate\s+`)
)

// Derivative computes d/dv of the expression wrapped in the input.
func Derivative(input string) (*Solution, error) {
	v := "x"
	body := strings.TrimSpace(input)
	if m := ddxParen.FindStringSubmatch(body); m != nil {
		v, body = m[1], m[2]
	} else if m := ddxBare.FindStringSubmatch(body); m != nil {
		v = m[1]
		body = strings.TrimSpace(body[len(m[0]):])
	} else {
		body = derivativeOf.ReplaceAllString(body, "")
		body = differentiate.ReplaceAllString(body, "")
	}
	body = strings.TrimSpace(body)

	expr, err := symbolic.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to compute derivative")
	}
	result := symbolic.Diff(expr, v).String()
	method := methodFor(body)
	steps := narrate(
		fmt.Sprintf("Find the derivative of %s with respect to %s", body, v),
		body, method,
		fmt.Sprintf("The derivative is %s", result),
		result,
	)
	return newSolution(input, result, steps, classify.Derivative, method), nil
}

var (
	integralParen = regexp.MustCompile(`(?i)^integral\s*\((.*)\)$`)
	integralSign  = regexp.MustCompile(`^∫\s*(.*?)\s*d([a-z])$`)
	integrateWord = regexp.MustCompile(`(?i)^(?:find\s+)?(?:the\s+)?(?:integral\s+of|integrate|antiderivative\s+of)\s+`)
	trailingDx    = regexp.MustCompile(`\s+d([a-z])$`)
)

// Integral computes the antiderivative of the expression wrapped in the
// input. The rendered result always carries the constant of integration.
func Integral(input string) (*Solution, error) {
	v := "x"
	body := strings.TrimSpace(input)
	if m := integralParen.FindStringSubmatch(body); m != nil {
		body = m[1]
	} else if m := integralSign.FindStringSubmatch(body); m != nil {
		body, v = m[1], m[2]
	} else {
		body = integrateWord.ReplaceAllString(body, "")
	}
	if m := trailingDx.FindStringSubmatch(body); m != nil {
		v = m[1]
		body = strings.TrimSpace(body[:len(body)-len(m[0])])
	}
	body = strings.TrimSpace(body)

	expr, err := symbolic.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to compute integral")
	}
	anti, err := symbolic.Integrate(expr, v)
	if err != nil {
		return nil, fmt.Errorf("failed to compute integral")
	}
	result := anti.String() + " + C"
	method := methodFor(body)
	steps := narrate(
		fmt.Sprintf("Find the integral of %s with respect to %s", body, v),
		body, method,
		fmt.Sprintf("The integral is %s", result),
		result,
	)
	return newSolution(input, result, steps, classify.Integral, method), nil
}

var implicitPrefix = regexp.MustCompile(`(?i)^(?:find\s+)?(?:dy/dx\s+(?:for|of)|implicit(?:ly)?\s+differentiat\w*\s*(?:of)?)\s+`)

// ImplicitDiff differentiates an equation in x and y implicitly and returns
// dy/dx as a quotient of partial derivatives.
func ImplicitDiff(input string) (*Solution, error) {
	body := implicitPrefix.ReplaceAllString(strings.TrimSpace(input), "")
	lhs, rhs, ok := strings.Cut(body, "=")
	if !ok {
		return nil, fmt.Errorf("failed to compute implicit derivative")
	}
	left, err := symbolic.Parse(lhs)
	if err != nil {
		return nil, fmt.Errorf("failed to compute implicit derivative")
	}
	right, err := symbolic.Parse(rhs)
	if err != nil {
		return nil, fmt.Errorf("failed to compute implicit derivative")
	}
	f := symbolic.Add(left, symbolic.Neg(right)).Simplify()
	fx := symbolic.Diff(f, "x")
	fy := symbolic.Diff(f, "y")
	if n, ok := fy.Eval(); ok && n.IsZero() {
		return nil, fmt.Errorf("failed to compute implicit derivative")
	}
	result := fmt.Sprintf("dy/dx = -(%s)/(%s)", fx.String(), fy.String())
	steps := []Step{
		{Ordinal: 1, Expression: body, Explanation: "Differentiate both sides with respect to x, treating y as a function of x"},
		{Ordinal: 2, Expression: fx.String(), Explanation: "Partial derivative with respect to x", Method: "implicit differentiation"},
		{Ordinal: 3, Expression: fy.String(), Explanation: "Partial derivative with respect to y", Method: "implicit differentiation"},
		{Ordinal: 4, Expression: result, Explanation: fmt.Sprintf("Solve for dy/dx: %s", result)},
	}
	return newSolution(input, result, steps, classify.ImplicitDifferentiation, "implicit differentiation"), nil
}
