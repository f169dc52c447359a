package solver

import "strings"

// methodFor picks the narrative method label for an expression body. The
// checks mirror the classifier: presence of a trig function outranks the
// power rule, a bare caret falls through to it.
func methodFor(body string) string {
	lower := strings.ToLower(body)
	switch {
	case strings.Contains(lower, "sin") || strings.Contains(lower, "cos") || strings.Contains(lower, "tan"):
		return "chain rule"
	case strings.Contains(lower, "e^") || strings.Contains(lower, "exp"):
		return "exponential rule"
	case strings.Contains(lower, "ln") || strings.Contains(lower, "log"):
		return "logarithmic rule"
	case strings.Contains(lower, "^"):
		return "power rule"
	default:
		return ""
	}
}

// methodExplanation is the one narrative line shown for each method label.
var methodExplanation = map[string]string{
	"chain rule":       "Apply the chain rule to the trigonometric terms",
	"exponential rule": "Apply the exponential rule, the derivative of e^u is e^u times u'",
	"logarithmic rule": "Apply the logarithmic rule, the derivative of ln(u) is u'/u",
	"power rule":       "Apply the power rule, bring down the exponent and reduce it by one",
}

// narrate builds the fixed opening step, zero or one method step and the
// closing step carrying the final result. It is presentation text chosen by
// substring heuristics, not a trace of the actual computation.
func narrate(opening, body, method, closing, result string) []Step {
	steps := []Step{{Ordinal: 1, Expression: body, Explanation: opening}}
	if method != "" {
		steps = append(steps, Step{
			Ordinal:     len(steps) + 1,
			Expression:  body,
			Explanation: methodExplanation[method],
			Method:      method,
		})
	}
	return append(steps, Step{
		Ordinal:     len(steps) + 1,
		Expression:  result,
		Explanation: closing,
	})
}
