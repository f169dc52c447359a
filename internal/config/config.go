// Package config resolves runtime settings from defaults, an optional YAML
// file in the data directory and QUANTUMIN_* environment variables, in that
// order. Persisted connection settings from the database are overlaid last
// by the caller that owns the database handle.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Provider names for the two supported chat endpoints.
const (
	ProviderOpenAI      = "openai"
	ProviderHuggingFace = "huggingface"
)

const (
	DefaultOpenAIBaseURL      = "https://api.openai.com/v1"
	DefaultHuggingFaceBaseURL = "https://api-inference.huggingface.co/models"
	DefaultModel              = "gpt-4o-mini"
)

type Config struct {
	Provider     string `yaml:"provider"`
	APIKey       string `yaml:"api_key"`
	Model        string `yaml:"model"`
	BaseURL      string `yaml:"base_url"`
	DataDir      string `yaml:"data_dir"`
	HistoryLimit int    `yaml:"history_limit"`
}

func Load() *Config {
	cfg := &Config{
		Provider:     ProviderOpenAI,
		Model:        DefaultModel,
		BaseURL:      DefaultOpenAIBaseURL,
		HistoryLimit: 10,
	}

	home, _ := os.UserHomeDir()
	cfg.DataDir = filepath.Join(home, ".quantumin")
	if val := os.Getenv("QUANTUMIN_DATA_DIR"); val != "" {
		cfg.DataDir = val
	}

	loadFile(cfg, filepath.Join(cfg.DataDir, "config.yaml"))

	if val := os.Getenv("QUANTUMIN_PROVIDER"); val != "" {
		cfg.Provider = val
	}
	if val := os.Getenv("QUANTUMIN_API_KEY"); val != "" {
		cfg.APIKey = val
	} else if val := os.Getenv("OPENAI_API_KEY"); val != "" && cfg.APIKey == "" {
		cfg.APIKey = val
	}
	if val := os.Getenv("QUANTUMIN_MODEL"); val != "" {
		cfg.Model = val
	}
	if val := os.Getenv("QUANTUMIN_BASE_URL"); val != "" {
		cfg.BaseURL = val
	}
	if val := os.Getenv("QUANTUMIN_HISTORY_LIMIT"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			cfg.HistoryLimit = n
		}
	}

	if cfg.Provider == ProviderHuggingFace && cfg.BaseURL == DefaultOpenAIBaseURL {
		cfg.BaseURL = DefaultHuggingFaceBaseURL
	}

	return cfg
}

// loadFile overlays values from a YAML config file. A missing or malformed
// file leaves the defaults untouched.
func loadFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return
	}
	if fileCfg.Provider != "" {
		cfg.Provider = fileCfg.Provider
	}
	if fileCfg.APIKey != "" {
		cfg.APIKey = fileCfg.APIKey
	}
	if fileCfg.Model != "" {
		cfg.Model = fileCfg.Model
	}
	if fileCfg.BaseURL != "" {
		cfg.BaseURL = fileCfg.BaseURL
	}
	if fileCfg.HistoryLimit > 0 {
		cfg.HistoryLimit = fileCfg.HistoryLimit
	}
}

// IsConnected reports whether an API key is available, which is what gates
// the natural-language bridge.
func (c *Config) IsConnected() bool {
	return c.APIKey != ""
}
