package tutor

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DanOgh07/quantumin-solver/internal/config"
	"github.com/DanOgh07/quantumin-solver/internal/logger"
	"github.com/DanOgh07/quantumin-solver/internal/storage"
)

func testSession(t *testing.T) *Session {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("QUANTUMIN_DATA_DIR", dir)

	db, err := storage.OpenDB(filepath.Join(dir, "solver.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		Provider:     config.ProviderOpenAI,
		Model:        config.DefaultModel,
		BaseURL:      config.DefaultOpenAIBaseURL,
		DataDir:      dir,
		HistoryLimit: 10,
	}
	return NewSession(cfg, db)
}

func TestSolveRecordsHistory(t *testing.T) {
	s := testSession(t)

	sol, err := s.Solve(context.Background(), "d/dx(x^3 + 2x^2 - 5x + 1)")
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if sol.Result != "3*x^2 + 4*x - 5" {
		t.Errorf("unexpected result %q", sol.Result)
	}

	recent := s.Recent()
	if len(recent) != 1 || recent[0].ID != sol.ID {
		t.Errorf("expected the solution in history, got %+v", recent)
	}
}

func TestSolveSurvivesFailedSave(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUANTUMIN_DATA_DIR", dir)

	db, err := storage.OpenDB(filepath.Join(dir, "solver.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	cfg := &config.Config{Provider: config.ProviderOpenAI, Model: config.DefaultModel, BaseURL: config.DefaultOpenAIBaseURL, HistoryLimit: 10}
	s := NewSession(cfg, db)

	// Closing the handle makes every save fail from here on.
	db.Close()

	sol, err := s.Solve(context.Background(), "d/dx(x^2)")
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if sol.Result != "2*x" {
		t.Errorf("unexpected result %q", sol.Result)
	}

	data, err := os.ReadFile(filepath.Join(dir, "sessions.jsonl"))
	if err != nil {
		t.Fatalf("read session log: %v", err)
	}
	found := false
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var e logger.LogEntry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			t.Fatalf("unmarshal line: %v", err)
		}
		if e.Event == "save solution" && e.Error != "" {
			found = true
		}
	}
	if !found {
		t.Error("expected the failed save in the session log")
	}
}

func TestSolveWithoutBridgePassesInputUnchanged(t *testing.T) {
	s := testSession(t)
	if s.Connected() {
		t.Fatal("expected no bridge without an api key")
	}

	// Prose with no math markers reaches the classifier unchanged and
	// falls through to the default category.
	sol, err := s.Solve(context.Background(), "are you there")
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if string(sol.Category) != "Expression" {
		t.Errorf("expected default Expression category, got %s", sol.Category)
	}
}

func TestSolveEmptyInput(t *testing.T) {
	s := testSession(t)
	if _, err := s.Solve(context.Background(), "   "); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestHistoryCapAcrossSolves(t *testing.T) {
	s := testSession(t)
	inputs := []string{
		"d/dx(x^2)", "d/dx(x^3)", "d/dx(x^4)", "d/dx(x^5)", "d/dx(x^6)",
		"d/dx(x^7)", "d/dx(x^8)", "d/dx(x^9)", "integral(x)", "integral(x^2)",
		"integral(x^3)", "integral(x^4)",
	}
	for _, in := range inputs {
		if _, err := s.Solve(context.Background(), in); err != nil {
			t.Fatalf("Solve(%q): %v", in, err)
		}
	}
	recent := s.Recent()
	if len(recent) != 10 {
		t.Fatalf("expected history capped at 10, got %d", len(recent))
	}
	if recent[0].Input != "integral(x^4)" {
		t.Errorf("expected newest solve first, got %q", recent[0].Input)
	}
}

func TestConnectPersistsAndDisconnectClears(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUANTUMIN_DATA_DIR", dir)

	db, err := storage.OpenDB(filepath.Join(dir, "solver.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	defer db.Close()

	cfg := &config.Config{Provider: config.ProviderOpenAI, Model: config.DefaultModel, BaseURL: config.DefaultOpenAIBaseURL, HistoryLimit: 10}
	s := NewSession(cfg, db)

	if err := s.Connect(config.ProviderHuggingFace, "hf-key", "mistralai/Mistral-7B-Instruct-v0.2", ""); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if !s.Connected() {
		t.Fatal("expected session connected")
	}

	// A fresh session picks the persisted settings up from the database.
	s2 := NewSession(&config.Config{Provider: config.ProviderOpenAI, Model: config.DefaultModel, BaseURL: config.DefaultOpenAIBaseURL, HistoryLimit: 10}, db)
	if !s2.Connected() {
		t.Fatal("expected persisted connection to survive a restart")
	}
	provider, model := s2.Provider()
	if provider != config.ProviderHuggingFace || model != "mistralai/Mistral-7B-Instruct-v0.2" {
		t.Errorf("unexpected persisted provider/model: %s %s", provider, model)
	}

	// Connecting again is a plain value replacement.
	if err := s2.Connect(config.ProviderOpenAI, "sk-other", "gpt-4o-mini", ""); err != nil {
		t.Fatalf("reconnect: %v", err)
	}
	key, err := storage.GetSetting(db, SettingAPIKey)
	if err != nil || key != "sk-other" {
		t.Errorf("expected replaced key, got %q, %v", key, err)
	}

	if err := s2.Disconnect(); err != nil {
		t.Fatalf("Disconnect: %v", err)
	}
	if s2.Connected() {
		t.Error("expected session disconnected")
	}
	key, err = storage.GetSetting(db, SettingAPIKey)
	if err != nil || key != "" {
		t.Errorf("expected cleared key, got %q, %v", key, err)
	}
}

func TestConnectRequiresKey(t *testing.T) {
	s := testSession(t)
	if err := s.Connect(config.ProviderOpenAI, "", "gpt-4o-mini", ""); err == nil {
		t.Error("expected error connecting without a key")
	}
}

func TestHistoryReloadedFromStorage(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUANTUMIN_DATA_DIR", dir)

	db, err := storage.OpenDB(filepath.Join(dir, "solver.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	defer db.Close()

	cfg := &config.Config{Provider: config.ProviderOpenAI, Model: config.DefaultModel, BaseURL: config.DefaultOpenAIBaseURL, HistoryLimit: 10}
	s := NewSession(cfg, db)
	if _, err := s.Solve(context.Background(), "d/dx(x^2)"); err != nil {
		t.Fatalf("Solve: %v", err)
	}

	s2 := NewSession(&config.Config{Provider: config.ProviderOpenAI, Model: config.DefaultModel, BaseURL: config.DefaultOpenAIBaseURL, HistoryLimit: 10}, db)
	recent := s2.Recent()
	if len(recent) != 1 || recent[0].Input != "d/dx(x^2)" {
		t.Errorf("expected persisted solve in a fresh session, got %+v", recent)
	}
}
