package solver

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/DanOgh07/quantumin-solver/internal/classify"
	"github.com/DanOgh07/quantumin-solver/internal/symbolic"
)

// General handles the categories without a dedicated solver: equations,
// limits, partial derivatives and plain simplification.
func General(input string, category classify.Category) (*Solution, error) {
	switch category {
	case classify.Quadratic, classify.Equation:
		return solveEquation(input, category)
	case classify.Limit:
		return solveLimit(input)
	case classify.PartialDerivative:
		return solvePartial(input)
	default:
		return simplify(input, category)
	}
}

var solvePrefix = regexp.MustCompile(`(?i)^(?:solve|find the roots of)\s+`)

func solveEquation(input string, category classify.Category) (*Solution, error) {
	body := solvePrefix.ReplaceAllString(strings.TrimSpace(input), "")
	lhs, rhs, ok := strings.Cut(body, "=")
	if !ok {
		rhs = "0"
		lhs = body
	}
	left, err := symbolic.Parse(lhs)
	if err != nil {
		return nil, fmt.Errorf("failed to solve equation")
	}
	right, err := symbolic.Parse(rhs)
	if err != nil {
		return nil, fmt.Errorf("failed to solve equation")
	}
	poly := symbolic.Add(left, symbolic.Neg(right)).Simplify()

	v := solveVariable(poly)
	roots, err := symbolic.SolvePolynomial(poly, v)
	if err != nil {
		return nil, fmt.Errorf("failed to solve equation")
	}
	parts := make([]string, len(roots))
	for i, r := range roots {
		parts[i] = fmt.Sprintf("%s = %s", v, r.String())
	}
	result := strings.Join(parts, ", ")

	method := "linear equation"
	if symbolic.Degree(poly, v) == 2 {
		method = "quadratic formula"
	}
	steps := []Step{
		{Ordinal: 1, Expression: body, Explanation: fmt.Sprintf("Rearrange to %s = 0 and solve for %s", poly.String(), v)},
		{Ordinal: 2, Expression: poly.String(), Explanation: fmt.Sprintf("Apply the %s", method), Method: method},
		{Ordinal: 3, Expression: result, Explanation: fmt.Sprintf("The solutions are %s", result)},
	}
	return newSolution(input, result, steps, category, method), nil
}

// solveVariable picks the unknown: x when present, otherwise the
// alphabetically first free variable in the expression.
func solveVariable(e symbolic.Expr) string {
	vars := symbolic.FreeVars(e)
	if _, ok := vars["x"]; ok || len(vars) == 0 {
		return "x"
	}
	names := make([]string, 0, len(vars))
	for v := range vars {
		names = append(names, v)
	}
	sort.Strings(names)
	return names[0]
}

var limitPattern = regexp.MustCompile(`(?i)^lim(?:it)?\s*(?:\(|\[)?\s*([a-z])\s*(?:->|→)\s*([^\s,)\]]+)\s*(?:\)|\])?\s*(?:of\s+)?(.+)$`)

func solveLimit(input string) (*Solution, error) {
	m := limitPattern.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return nil, fmt.Errorf("failed to compute limit")
	}
	v, at, body := m[1], m[2], strings.TrimSpace(m[3])
	point, err := symbolic.Parse(at)
	if err != nil {
		return nil, fmt.Errorf("failed to compute limit")
	}
	expr, err := symbolic.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to compute limit")
	}
	value, err := symbolic.Limit(expr, v, point)
	if err != nil {
		return nil, fmt.Errorf("failed to compute limit")
	}
	result := value.String()
	steps := []Step{
		{Ordinal: 1, Expression: body, Explanation: fmt.Sprintf("Evaluate the limit of %s as %s approaches %s", body, v, at)},
		{Ordinal: 2, Expression: result, Explanation: fmt.Sprintf("The limit is %s", result)},
	}
	return newSolution(input, result, steps, classify.Limit, "limit evaluation"), nil
}

var partialPrefix = regexp.MustCompile(`(?i)^(?:∂[a-z]?/∂([a-z])\s*|(?:find\s+)?(?:the\s+)?partial\s+derivative\s+of\s+)`)
var withRespectTo = regexp.MustCompile(`(?i)\s+with\s+respect\s+to\s+([a-z])\s*$`)
var partialOf = regexp.MustCompile(`(?i)^of\s+`)

func solvePartial(input string) (*Solution, error) {
	v := "x"
	body := strings.TrimSpace(input)
	if m := partialPrefix.FindStringSubmatch(body); m != nil {
		if m[1] != "" {
			v = m[1]
		}
		body = strings.TrimSpace(body[len(m[0]):])
	}
	if m := withRespectTo.FindStringSubmatch(body); m != nil {
		v = m[1]
		body = strings.TrimSpace(body[:len(body)-len(m[0])])
	}
	body = partialOf.ReplaceAllString(body, "")
	body = strings.TrimSpace(body)

	expr, err := symbolic.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to compute partial derivative")
	}
	result := symbolic.Diff(expr, v).String()
	method := methodFor(body)
	steps := narrate(
		fmt.Sprintf("Find the partial derivative of %s with respect to %s, holding the other variables constant", body, v),
		body, method,
		fmt.Sprintf("The partial derivative is %s", result),
		result,
	)
	return newSolution(input, result, steps, classify.PartialDerivative, method), nil
}

func simplify(input string, category classify.Category) (*Solution, error) {
	body := strings.TrimSpace(input)
	expr, err := symbolic.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to simplify expression")
	}
	simplified, rewrites := symbolic.SimplifySteps(expr)
	result := simplified.String()

	steps := []Step{{Ordinal: 1, Expression: body, Explanation: fmt.Sprintf("Simplify %s", body)}}
	for _, rw := range rewrites {
		steps = append(steps, Step{
			Ordinal:     len(steps) + 1,
			Expression:  rw.Result,
			Explanation: rw.Description,
		})
	}
	steps = append(steps, Step{
		Ordinal:     len(steps) + 1,
		Expression:  result,
		Explanation: fmt.Sprintf("The simplified form is %s", result),
	})
	return newSolution(input, result, steps, category, "simplification"), nil
}
