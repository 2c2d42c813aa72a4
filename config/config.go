package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultListen = ":3000"
	defaultModel  = "gpt-4o"
)

// Config holds the external configuration of the API server: which model to
// serve by default, where to listen, and an optional base-URL override for
// the resolved provider. API keys stay in the environment and are consumed
// by the providers directly.
type Config struct {
	Model   string `yaml:"model"`    // Default model identifier for incoming requests
	BaseURL string `yaml:"base_url"` // Optional provider base URL override
	Listen  string `yaml:"listen"`   // TCP listen address, e.g. ":3000"
}

// Load reads configuration in three layers, later layers winning: built-in
// defaults, the YAML file at path (skipped when path is empty; missing files
// are an error), then AIPIM_* environment variables. A .env file in the
// working directory is loaded first so both the YAML layer and provider API
// keys can come from it.
func Load(path string) (*Config, error) {
	// Missing .env is fine; explicit environment always wins over it.
	_ = godotenv.Load()

	cfg := &Config{
		Model:  defaultModel,
		Listen: defaultListen,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if model := os.Getenv("AIPIM_MODEL"); model != "" {
		cfg.Model = model
	}
	if baseURL := os.Getenv("AIPIM_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if listen := os.Getenv("AIPIM_LISTEN"); listen != "" {
		cfg.Listen = listen
	}

	if cfg.Model == "" {
		return nil, fmt.Errorf("config: model must not be empty")
	}
	if cfg.Listen == "" {
		return nil, fmt.Errorf("config: listen address must not be empty")
	}

	return cfg, nil
}
