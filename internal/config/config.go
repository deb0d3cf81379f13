package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port           string `env:"PORT" envDefault:"8000"`
	DBDSN          string `env:"DB_DSN" envDefault:"hooksaurus.db"`
	LogFile        string `env:"LOG_FILE"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"LOG_FORMAT" envDefault:"json"`
	SeedDemo       bool   `env:"SEED_DEMO" envDefault:"true"`
	RateLimit      int    `env:"RATE_LIMIT_PER_MIN" envDefault:"120"`
	BodyLimit      int    `env:"BODY_LIMIT_BYTES" envDefault:"1048576"`
	CORSOrigin     string `env:"CORS_ORIGIN" envDefault:"http://localhost:8000"`
	TemplateReload bool   `env:"TEMPLATE_RELOAD" envDefault:"false"`
}

// Load reads the process environment, applying defaults for anything unset.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 120
	}
	if cfg.BodyLimit <= 0 {
		cfg.BodyLimit = 1 << 20
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string { return ":" + c.Port }
