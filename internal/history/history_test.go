package history

import (
	"fmt"
	"testing"

	"github.com/DanOgh07/quantumin-solver/internal/solver"
)

func TestAddNewestFirst(t *testing.T) {
	h := New(10)
	h.Add(&solver.Solution{Input: "first"})
	h.Add(&solver.Solution{Input: "second"})
	recent := h.Recent()
	if len(recent) != 2 {
		t.Fatalf("want 2 entries, got %d", len(recent))
	}
	if recent[0].Input != "second" || recent[1].Input != "first" {
		t.Errorf("want newest first, got [%s, %s]", recent[0].Input, recent[1].Input)
	}
}

func TestEvictionBeyondCap(t *testing.T) {
	h := New(10)
	for i := 0; i < 15; i++ {
		h.Add(&solver.Solution{Input: fmt.Sprintf("solve %d", i)})
	}
	if h.Len() != 10 {
		t.Fatalf("want 10 retained, got %d", h.Len())
	}
	recent := h.Recent()
	if recent[0].Input != "solve 14" {
		t.Errorf("want newest entry first, got %s", recent[0].Input)
	}
	if recent[9].Input != "solve 5" {
		t.Errorf("want oldest retained entry to be solve 5, got %s", recent[9].Input)
	}
}

func TestRecentReturnsCopy(t *testing.T) {
	h := New(10)
	h.Add(&solver.Solution{Input: "keep"})
	recent := h.Recent()
	recent[0] = &solver.Solution{Input: "clobbered"}
	if h.Recent()[0].Input != "keep" {
		t.Error("mutating the returned slice changed the retained list")
	}
}

func TestClear(t *testing.T) {
	h := New(3)
	h.Add(&solver.Solution{Input: "a"})
	h.Clear()
	if h.Len() != 0 {
		t.Errorf("want empty history, got %d", h.Len())
	}
}
