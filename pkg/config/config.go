package config

// ABOUTME: Environment-driven configuration for the client library
// ABOUTME: Loaded once at startup via caarlos0/env struct tags

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config carries every tunable the library reads from the environment.
type Config struct {
	// APIKey authenticates catalog fetches and completion requests.
	APIKey string `env:"OPENROUTER_API_KEY"`

	// BaseURL overrides the API endpoint, mainly for tests and proxies.
	BaseURL string `env:"OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`

	// AutoHealResponses enables heal rounds for malformed structured output.
	AutoHealResponses bool `env:"OPENROUTER_AUTO_HEAL_RESPONSES" envDefault:"true"`

	// HealerModel is the model used for repair rounds. It should be cheap
	// and reliable at JSON tasks rather than powerful.
	HealerModel string `env:"OPENROUTER_HEALER_MODEL" envDefault:"openai/gpt-4o-mini"`

	// MaxHealAttempts caps heal rounds per session.
	MaxHealAttempts int `env:"OPENROUTER_MAX_HEAL_ATTEMPTS" envDefault:"2"`

	// StructuredOutputMode is "strict" or "gentle".
	StructuredOutputMode string `env:"OPENROUTER_STRUCTURED_OUTPUT_MODE" envDefault:"strict"`

	// StrictCapabilities makes capability enforcement fail requests that
	// target models lacking a required capability.
	StrictCapabilities bool `env:"OPENROUTER_STRICT_CAPABILITIES" envDefault:"false"`

	// AutoForceOnUnsupported skips capability enforcement entirely,
	// letting requests through even when enforcement is strict.
	AutoForceOnUnsupported bool `env:"OPENROUTER_AUTO_FORCE_ON_UNSUPPORTED" envDefault:"false"`

	// CatalogTTL is how long a fetched model snapshot stays fresh.
	CatalogTTL time.Duration `env:"OPENROUTER_CATALOG_TTL" envDefault:"1h"`

	LogLevel  string `env:"OPENROUTER_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"OPENROUTER_LOG_FORMAT" envDefault:"console"`
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration with every default applied and no
// environment consulted. Useful in tests.
func Default() Config {
	return Config{
		BaseURL:              "https://openrouter.ai/api/v1",
		AutoHealResponses:    true,
		HealerModel:          "openai/gpt-4o-mini",
		MaxHealAttempts:      2,
		StructuredOutputMode: "strict",
		CatalogTTL:           time.Hour,
		LogLevel:             "info",
		LogFormat:            "console",
	}
}

func (c Config) validate() error {
	if c.MaxHealAttempts < 0 {
		return fmt.Errorf("max heal attempts must be non-negative, got %d", c.MaxHealAttempts)
	}
	switch c.StructuredOutputMode {
	case "strict", "gentle":
	default:
		return fmt.Errorf("unsupported structured output mode %q", c.StructuredOutputMode)
	}
	return nil
}
