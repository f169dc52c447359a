// Package history keeps the bounded list of recent solutions shown in the
// shell. Newest first, oldest evicted past the cap.
package history

import "github.com/DanOgh07/quantumin-solver/internal/solver"

// DefaultLimit is how many solutions the shell keeps in view.
const DefaultLimit = 10

// History is a fixed-capacity, newest-first list of solutions. The zero
// value is not usable, construct with New.
type History struct {
	limit int
	items []*solver.Solution
}

func New(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{limit: limit}
}

// Add prepends a solution and evicts the oldest entry past the cap.
func (h *History) Add(s *solver.Solution) {
	h.items = append([]*solver.Solution{s}, h.items...)
	if len(h.items) > h.limit {
		h.items = h.items[:h.limit]
	}
}

// Recent returns the retained solutions, newest first. The returned slice
// is a copy, callers may not mutate the retained list through it.
func (h *History) Recent() []*solver.Solution {
	out := make([]*solver.Solution, len(h.items))
	copy(out, h.items)
	return out
}

func (h *History) Len() int { return len(h.items) }

// Clear drops every retained solution.
func (h *History) Clear() { h.items = nil }
