// Package tutor orchestrates one interactive session: it resolves the
// persisted connection settings, routes input through the optional
// natural-language bridge, solves, and records the outcome.
package tutor

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/DanOgh07/quantumin-solver/internal/config"
	"github.com/DanOgh07/quantumin-solver/internal/history"
	"github.com/DanOgh07/quantumin-solver/internal/llm"
	"github.com/DanOgh07/quantumin-solver/internal/logger"
	"github.com/DanOgh07/quantumin-solver/internal/solver"
	"github.com/DanOgh07/quantumin-solver/internal/storage"
)

// Settings keys persisted in the settings table.
const (
	SettingProvider = "llm.provider"
	SettingAPIKey   = "llm.api_key"
	SettingModel    = "llm.model"
	SettingBaseURL  = "llm.base_url"
)

// Session holds the state of one tutoring session. The database handle and
// the bridge may both be nil, everything degrades to local-only solving.
type Session struct {
	cfg     *config.Config
	db      *sql.DB
	bridge  *llm.Bridge
	history *history.History
	log     *logger.Logger
}

// NewSession builds a session from resolved config, overlaying any
// connection settings persisted in the database and preloading recent
// history.
func NewSession(cfg *config.Config, db *sql.DB) *Session {
	s := &Session{
		cfg:     cfg,
		db:      db,
		history: history.New(cfg.HistoryLimit),
	}
	s.log, _ = logger.New()

	if db != nil {
		overlaySettings(cfg, db)
		if items, err := storage.RecentSolutions(db, cfg.HistoryLimit); err == nil {
			for i := len(items) - 1; i >= 0; i-- {
				s.history.Add(items[i])
			}
		}
	}
	s.bridge = llm.NewBridge(buildClient(cfg))
	return s
}

func overlaySettings(cfg *config.Config, db *sql.DB) {
	if v, err := storage.GetSetting(db, SettingProvider); err == nil && v != "" {
		cfg.Provider = v
	}
	if v, err := storage.GetSetting(db, SettingAPIKey); err == nil && v != "" {
		cfg.APIKey = v
	}
	if v, err := storage.GetSetting(db, SettingModel); err == nil && v != "" {
		cfg.Model = v
	}
	if v, err := storage.GetSetting(db, SettingBaseURL); err == nil && v != "" {
		cfg.BaseURL = v
	}
}

func buildClient(cfg *config.Config) llm.Client {
	if cfg.APIKey == "" {
		return nil
	}
	if cfg.Provider == config.ProviderHuggingFace {
		if c := llm.NewHuggingFaceClient(cfg.APIKey, cfg.Model, cfg.BaseURL); c != nil {
			return c
		}
		return nil
	}
	if c := llm.NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL); c != nil {
		return c
	}
	return nil
}

// Solve runs one problem end to end. Free text is first rewritten into
// expression syntax when a language model is connected; without one it goes
// to the classifier unchanged.
func (s *Session) Solve(ctx context.Context, input string) (*solver.Solution, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return nil, fmt.Errorf("empty input")
	}

	start := time.Now()

	if s.bridge.Available() && !looksLikeMath(text) {
		if translated, err := s.bridge.Translate(ctx, text); err == nil && translated != "" {
			text = translated
		}
	}

	sol, err := solver.Solve(text)
	if s.log != nil {
		elapsed := time.Since(start)
		if err != nil {
			s.log.LogSolve(input, "", "", "", elapsed, err)
		} else {
			s.log.LogSolve(input, sol.Result, string(sol.Category), sol.Method, elapsed, nil)
		}
	}
	if err != nil {
		return nil, err
	}
	sol.Input = input

	s.history.Add(sol)
	if s.db != nil {
		// A failed save must not fail the solve, but it goes on record.
		if err := storage.SaveSolution(s.db, sol); err != nil && s.log != nil {
			s.log.LogEvent("save solution", err)
		}
	}
	return sol, nil
}

// looksLikeMath reports whether the input already reads as expression
// syntax, in which case the bridge is skipped.
func looksLikeMath(text string) bool {
	if strings.ContainsAny(text, "^*/+-=()∫∂0123456789") {
		return true
	}
	lower := strings.ToLower(text)
	for _, kw := range []string{"d/dx", "sin", "cos", "tan", "ln", "log", "sqrt", "lim"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Recent returns the capped in-memory history, newest first.
func (s *Session) Recent() []*solver.Solution {
	return s.history.Recent()
}

// Search matches persisted solutions against a term.
func (s *Session) Search(term string) ([]*solver.Solution, error) {
	if s.db == nil {
		return nil, fmt.Errorf("no database available")
	}
	return storage.SearchSolutions(s.db, term)
}

// Connected reports whether a language model endpoint is configured.
func (s *Session) Connected() bool {
	return s.bridge.Available()
}

// Provider returns the active provider name and model.
func (s *Session) Provider() (string, string) {
	return s.cfg.Provider, s.cfg.Model
}

// Connect replaces the stored connection settings and rebuilds the bridge.
// Connecting twice simply overwrites the previous values.
func (s *Session) Connect(provider, apiKey, model, baseURL string) error {
	if apiKey == "" {
		return fmt.Errorf("api key is required")
	}
	if provider == "" {
		provider = config.ProviderOpenAI
	}
	if model == "" {
		model = s.cfg.Model
	}
	if baseURL == "" {
		switch provider {
		case config.ProviderHuggingFace:
			baseURL = config.DefaultHuggingFaceBaseURL
		default:
			baseURL = config.DefaultOpenAIBaseURL
		}
	}

	s.cfg.Provider = provider
	s.cfg.APIKey = apiKey
	s.cfg.Model = model
	s.cfg.BaseURL = baseURL

	if s.db != nil {
		for key, value := range map[string]string{
			SettingProvider: provider,
			SettingAPIKey:   apiKey,
			SettingModel:    model,
			SettingBaseURL:  baseURL,
		} {
			if err := storage.SetSetting(s.db, key, value); err != nil {
				return fmt.Errorf("persist settings: %w", err)
			}
		}
	}

	s.bridge = llm.NewBridge(buildClient(s.cfg))
	if !s.bridge.Available() {
		return fmt.Errorf("failed to build client for provider %s", provider)
	}
	return nil
}

// Disconnect clears the stored connection settings and drops the bridge.
func (s *Session) Disconnect() error {
	s.cfg.APIKey = ""
	s.bridge = nil

	if s.db != nil {
		for _, key := range []string{SettingProvider, SettingAPIKey, SettingModel, SettingBaseURL} {
			if err := storage.DeleteSetting(s.db, key); err != nil {
				return fmt.Errorf("clear settings: %w", err)
			}
		}
	}
	return nil
}

// Explain asks the bridge for a prose walkthrough of a solution.
func (s *Session) Explain(ctx context.Context, sol *solver.Solution) (string, error) {
	lines := make([]string, len(sol.Steps))
	for i, st := range sol.Steps {
		lines[i] = fmt.Sprintf("%d. %s", st.Ordinal, st.Explanation)
	}
	return s.bridge.ExplainSteps(ctx, sol.Input, sol.Result, lines)
}

// Tutor answers one turn of free-form conversation.
func (s *Session) Tutor(ctx context.Context, conversation []llm.Message) (string, error) {
	return s.bridge.Tutor(ctx, conversation)
}

// GenerateProblems produces practice problems on a topic.
func (s *Session) GenerateProblems(ctx context.Context, topic, difficulty string, n int) (*llm.ProblemSet, error) {
	return s.bridge.GenerateProblems(ctx, topic, difficulty, n)
}

// Analyze returns the bridge's structured read on a problem statement.
func (s *Session) Analyze(ctx context.Context, input string) (*llm.Analysis, error) {
	return s.bridge.AnalyzeProblem(ctx, input)
}
