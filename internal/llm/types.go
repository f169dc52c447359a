// Package llm is the natural-language bridge: single-shot request/response
// clients for remote text-generation endpoints plus the prompt builders used
// by the tutoring features. No retries, no streaming, no conversation state
// beyond what the caller re-supplies each turn.
package llm

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is one remote text-generation endpoint.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Problem is one generated practice problem.
type Problem struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Hint       string `json:"hint,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// ProblemSet is the JSON document the generation prompt asks for.
type ProblemSet struct {
	Topic    string    `json:"topic"`
	Problems []Problem `json:"problems"`
}

// Analysis is the structured read on a problem statement.
type Analysis struct {
	Category   string `json:"category"`
	Approach   string `json:"approach"`
	Concepts   string `json:"concepts"`
	Difficulty string `json:"difficulty"`
}
