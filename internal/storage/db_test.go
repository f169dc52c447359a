package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/DanOgh07/quantumin-solver/internal/classify"
	"github.com/DanOgh07/quantumin-solver/internal/solver"
)

func TestSolutionRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "solver.db")
	db, err := OpenDB(dbPath)
	if err != nil {
		t.Fatalf("OpenDB failed: %v", err)
	}
	defer db.Close()

	sol := &solver.Solution{
		ID:       "a1b2c3",
		Input:    "d/dx(x^2)",
		Result:   "2*x",
		Category: classify.Derivative,
		Method:   "power rule",
		Steps: []solver.Step{
			{Ordinal: 1, Expression: "x^2", Explanation: "Find the derivative of x^2 with respect to x"},
			{Ordinal: 2, Expression: "2*x", Explanation: "The derivative is 2*x"},
		},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := SaveSolution(db, sol); err != nil {
		t.Fatalf("SaveSolution failed: %v", err)
	}

	items, err := RecentSolutions(db, 10)
	if err != nil {
		t.Fatalf("RecentSolutions failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	got := items[0]
	if got.Input != sol.Input || got.Result != sol.Result || got.Category != sol.Category {
		t.Errorf("Round trip mismatch: %+v", got)
	}
	if len(got.Steps) != 2 || got.Steps[1].Expression != "2*x" {
		t.Errorf("Steps did not survive the round trip: %+v", got.Steps)
	}
}

func TestRecentSolutionsOrderAndLimit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "solver.db")
	db, err := OpenDB(dbPath)
	if err != nil {
		t.Fatalf("OpenDB failed: %v", err)
	}
	defer db.Close()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		sol := &solver.Solution{
			ID:        string(rune('a' + i)),
			Input:     "integral(x^2)",
			Result:    "1/3*x^3 + C",
			Category:  classify.Integral,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := SaveSolution(db, sol); err != nil {
			t.Fatalf("SaveSolution failed: %v", err)
		}
	}

	items, err := RecentSolutions(db, 3)
	if err != nil {
		t.Fatalf("RecentSolutions failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(items))
	}
	if items[0].ID != "e" {
		t.Errorf("Expected newest solution first, got %s", items[0].ID)
	}
}

func TestSearchSolutions(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "solver.db")
	db, err := OpenDB(dbPath)
	if err != nil {
		t.Fatalf("OpenDB failed: %v", err)
	}
	defer db.Close()

	a := &solver.Solution{ID: "1", Input: "d/dx(sin(x))", Result: "cos(x)", Category: classify.Derivative, CreatedAt: time.Now()}
	b := &solver.Solution{ID: "2", Input: "x^2 - 5x + 6 = 0", Result: "x = 3, x = 2", Category: classify.Quadratic, CreatedAt: time.Now()}
	for _, sol := range []*solver.Solution{a, b} {
		if err := SaveSolution(db, sol); err != nil {
			t.Fatalf("SaveSolution failed: %v", err)
		}
	}

	results, err := SearchSolutions(db, "sin")
	if err != nil {
		t.Fatalf("SearchSolutions failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != "1" {
		t.Errorf("Expected the derivative entry, got %+v", results)
	}
}

func TestSettings(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "solver.db")
	db, err := OpenDB(dbPath)
	if err != nil {
		t.Fatalf("OpenDB failed: %v", err)
	}
	defer db.Close()

	if err := SetSetting(db, "llm.model", "gpt-4o-mini"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := SetSetting(db, "llm.model", "mistralai/Mistral-7B-Instruct-v0.2"); err != nil {
		t.Fatalf("SetSetting upsert failed: %v", err)
	}

	got, err := GetSetting(db, "llm.model")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if got != "mistralai/Mistral-7B-Instruct-v0.2" {
		t.Errorf("Expected upserted value, got %q", got)
	}

	if err := DeleteSetting(db, "llm.model"); err != nil {
		t.Fatalf("DeleteSetting failed: %v", err)
	}
	got, err = GetSetting(db, "llm.model")
	if err != nil {
		t.Fatalf("GetSetting after delete failed: %v", err)
	}
	if got != "" {
		t.Errorf("Expected empty value after delete, got %q", got)
	}

	// Absent keys read as empty without error.
	got, err = GetSetting(db, "llm.api_key")
	if err != nil || got != "" {
		t.Errorf("Expected empty read for absent key, got %q, %v", got, err)
	}
}
