package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Bridge wraps a Client with the calculus-tutoring prompts. A nil Bridge is
// valid and reports itself unavailable, callers fall back to the raw input.
type Bridge struct {
	client Client
	cache  *ResponseCache
}

func NewBridge(client Client) *Bridge {
	if client == nil {
		return nil
	}
	return &Bridge{
		client: client,
		cache:  NewResponseCache(100, 15*time.Minute),
	}
}

// Available reports whether a remote endpoint is configured.
func (b *Bridge) Available() bool {
	return b != nil && b.client != nil
}

const translateSystem = `You are a math notation converter. Convert the user's natural-language calculus question into plain expression syntax.
Rules:
1. Use ^ for powers, * for products, / for quotients
2. Use d/dx(...) for derivatives, integral(...) for integrals, lim x->a ... for limits
3. Keep function names: sin, cos, tan, ln, log, sqrt, e^
4. Output the expression only, no explanation, no markdown`

// Translate rewrites free text into the expression syntax the classifier
// expects. The result is cached per input.
func (b *Bridge) Translate(ctx context.Context, text string) (string, error) {
	if !b.Available() {
		return "", fmt.Errorf("no language model connected")
	}
	key := "translate:" + text
	if cached, ok := b.cache.Get(key); ok {
		return cached, nil
	}

	out, err := b.client.Complete(ctx, []Message{
		{Role: RoleSystem, Content: translateSystem},
		{Role: RoleUser, Content: text},
	})
	if err != nil {
		return "", err
	}
	out = stripMarkdownFences(out)
	b.cache.Put(key, out)
	return out, nil
}

// ExplainSteps produces a prose walkthrough for a solved problem.
func (b *Bridge) ExplainSteps(ctx context.Context, input, result string, stepLines []string) (string, error) {
	if !b.Available() {
		return "", fmt.Errorf("no language model connected")
	}
	key := "explain:" + input + "|" + result
	if cached, ok := b.cache.Get(key); ok {
		return cached, nil
	}

	prompt := fmt.Sprintf(`Explain this calculus solution to a student in plain language.

Problem: %s
Answer: %s
Steps:
%s

Walk through why each step follows from the previous one. Keep it under 200 words.`,
		input, result, strings.Join(stepLines, "\n"))

	out, err := b.client.Complete(ctx, []Message{
		{Role: RoleSystem, Content: "You are a patient calculus tutor."},
		{Role: RoleUser, Content: prompt},
	})
	if err != nil {
		return "", err
	}
	b.cache.Put(key, out)
	return out, nil
}

// Tutor answers one turn of a tutoring conversation. The caller supplies
// the whole transcript each time, nothing is retained here.
func (b *Bridge) Tutor(ctx context.Context, conversation []Message) (string, error) {
	if !b.Available() {
		return "", fmt.Errorf("no language model connected")
	}
	messages := append([]Message{
		{Role: RoleSystem, Content: "You are a patient calculus tutor. Answer questions about derivatives, integrals, limits and algebra. Prefer worked examples over theory."},
	}, conversation...)
	return b.client.Complete(ctx, messages)
}

// GenerateProblems asks for n practice problems on a topic and parses the
// JSON document out of the reply.
func (b *Bridge) GenerateProblems(ctx context.Context, topic, difficulty string, n int) (*ProblemSet, error) {
	if !b.Available() {
		return nil, fmt.Errorf("no language model connected")
	}
	if n <= 0 {
		n = 5
	}
	prompt := fmt.Sprintf(`Generate %d %s practice problems about %s.

OUTPUT JSON ONLY (No markdown, no code fences):
{
  "topic": "%s",
  "problems": [
    {"question": "d/dx(x^2)", "answer": "2*x", "hint": "power rule", "difficulty": "%s"}
  ]
}`, n, difficulty, topic, topic, difficulty)

	out, err := b.client.Complete(ctx, []Message{
		{Role: RoleSystem, Content: "You are a calculus problem generator. Always respond with valid JSON only, no markdown formatting."},
		{Role: RoleUser, Content: prompt},
	})
	if err != nil {
		return nil, err
	}

	var set ProblemSet
	if err := json.Unmarshal([]byte(stripMarkdownFences(out)), &set); err != nil {
		return nil, fmt.Errorf("parse problems: %w", err)
	}
	return &set, nil
}

// AnalyzeProblem returns a structured read on a problem statement.
func (b *Bridge) AnalyzeProblem(ctx context.Context, input string) (*Analysis, error) {
	if !b.Available() {
		return nil, fmt.Errorf("no language model connected")
	}
	prompt := fmt.Sprintf(`Analyze this calculus problem.

OUTPUT JSON ONLY (No markdown):
{
  "category": "Derivative | Integral | Limit | Equation | ...",
  "approach": "one sentence on how to attack it",
  "concepts": "comma-separated list of concepts involved",
  "difficulty": "easy | medium | hard"
}

PROBLEM:
%s`, input)

	out, err := b.client.Complete(ctx, []Message{
		{Role: RoleSystem, Content: "You are a calculus tutor. Always respond with valid JSON only, no markdown formatting."},
		{Role: RoleUser, Content: prompt},
	})
	if err != nil {
		return nil, err
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(stripMarkdownFences(out)), &analysis); err != nil {
		return nil, fmt.Errorf("parse analysis: %w", err)
	}
	return &analysis, nil
}

func stripMarkdownFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
