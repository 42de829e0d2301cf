package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	Environment   string `env:"ENVIRONMENT" envDefault:"dev"`
	SupabaseURL   string `env:"SUPABASE_URL"`
	SupabaseDBURL string `env:"SUPABASE_DB_URL"`
	// Service role key; only cmd/seed uses it, to create demo auth users
	SupabaseServiceKey string `env:"SUPABASE_KEY"`
	// Constructed from SupabaseURL + /auth/v1/.well-known/jwks.json unless set explicitly
	SupabaseJWKSURL string `env:"SUPABASE_JWKS_URL"`
	CORSOrigins     string `env:"CORS_ORIGINS" envDefault:"http://localhost:3000"`
	TablePrefix     string `env:"TABLE_PREFIX"`

	// Logging
	LogDir      string `env:"LOG_DIR"`
	LogMaxFiles int    `env:"LOG_MAX_FILES" envDefault:"10"`

	// Matching
	MatchingWeightsFile string  `env:"MATCHING_WEIGHTS_FILE"`
	MatchRatePerSecond  float64 `env:"MATCH_RATE_PER_SECOND" envDefault:"2"`
	MatchRateBurst      int     `env:"MATCH_RATE_BURST" envDefault:"10"`
	ScoringWorkers      int     `env:"SCORING_WORKERS" envDefault:"4"`
}

// Load reads .env (if present) and the process environment
func Load() (*Config, error) {
	// Silently ignore a missing .env - production injects real env vars
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.TablePrefix == "" {
		cfg.TablePrefix = tablePrefixFor(cfg.Environment)
	}
	if cfg.SupabaseJWKSURL == "" && cfg.SupabaseURL != "" {
		cfg.SupabaseJWKSURL = strings.TrimRight(cfg.SupabaseURL, "/") + "/auth/v1/.well-known/jwks.json"
	}

	return cfg, nil
}

// IsDev reports whether debug-level logging and dev-only behaviour apply
func (c *Config) IsDev() bool {
	return c.Environment == "dev"
}

// tablePrefixFor returns the table prefix for an environment
func tablePrefixFor(env string) string {
	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}
