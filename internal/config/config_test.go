package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("QUANTUMIN_DATA_DIR", t.TempDir())
	t.Setenv("QUANTUMIN_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg := Load()
	if cfg.Provider != ProviderOpenAI {
		t.Errorf("want default provider openai, got %s", cfg.Provider)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("want default model, got %s", cfg.Model)
	}
	if cfg.BaseURL != DefaultOpenAIBaseURL {
		t.Errorf("want default base url, got %s", cfg.BaseURL)
	}
	if cfg.HistoryLimit != 10 {
		t.Errorf("want history limit 10, got %d", cfg.HistoryLimit)
	}
	if cfg.IsConnected() {
		t.Error("want disconnected without an api key")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	file := `provider: huggingface
model: mistralai/Mistral-7B-Instruct-v0.2
api_key: from-file
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(file), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("QUANTUMIN_DATA_DIR", dir)
	t.Setenv("QUANTUMIN_API_KEY", "from-env")

	cfg := Load()
	if cfg.Provider != ProviderHuggingFace {
		t.Errorf("want provider from file, got %s", cfg.Provider)
	}
	if cfg.Model != "mistralai/Mistral-7B-Instruct-v0.2" {
		t.Errorf("want model from file, got %s", cfg.Model)
	}
	if cfg.APIKey != "from-env" {
		t.Errorf("want env to override file, got %s", cfg.APIKey)
	}
	if cfg.BaseURL != DefaultHuggingFaceBaseURL {
		t.Errorf("want huggingface base url, got %s", cfg.BaseURL)
	}
}

func TestHistoryLimitEnv(t *testing.T) {
	t.Setenv("QUANTUMIN_DATA_DIR", t.TempDir())
	t.Setenv("QUANTUMIN_HISTORY_LIMIT", "25")

	if cfg := Load(); cfg.HistoryLimit != 25 {
		t.Errorf("want history limit 25, got %d", cfg.HistoryLimit)
	}

	t.Setenv("QUANTUMIN_HISTORY_LIMIT", "not-a-number")
	if cfg := Load(); cfg.HistoryLimit != 10 {
		t.Errorf("want fallback history limit 10, got %d", cfg.HistoryLimit)
	}
}
