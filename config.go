package main

// config.go loads the dashboard settings from the environment

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8081"`

	// DatabaseURL selects the hosted Postgres store. Empty means the local sqlite file.
	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"../database/portfolio.db"`

	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"0s"`
	SecureCookies bool          `env:"SECURE_COOKIES" envDefault:"false"`

	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	FrontendURL  string `env:"FRONTEND_URL"`
	FrontendURL2 string `env:"FRONTEND_URL2"`

	RevalidationURL    string `env:"NEXT_REVALIDATION_URL"`
	RevalidationSecret string `env:"REVALIDATION_SECRET"`

	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

func loadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET is required")
	}
	return cfg, nil
}

// AllowedOrigins lists the frontend origins that may read the public feed.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range []string{c.FrontendURL, c.FrontendURL2} {
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
