package main

import (
	"github.com/dmitrymomot/majority/pkg/config"
	"github.com/dmitrymomot/majority/pkg/httpserver"
	"github.com/dmitrymomot/majority/pkg/ratelimiter"
)

const envPrefix = "MAJORITY_"

// Config is read from MAJORITY_* environment variables (and ./.env).
// Command-line flags take precedence.
type Config struct {
	Validate    bool   `env:"VALIDATE" envDefault:"true"`
	InputFormat string `env:"INPUT_FORMAT"`
	FoldCase    bool   `env:"FOLD_CASE"`
	Normalize   bool   `env:"NORMALIZE"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`

	HTTP         httpserver.Config  `envPrefix:"HTTP_"`
	MaxBodyBytes int64              `env:"HTTP_MAX_BODY_BYTES" envDefault:"1048576"`
	TrustProxy   bool               `env:"HTTP_TRUST_PROXY"`
	RateLimit    ratelimiter.Config `envPrefix:"HTTP_RATE_LIMIT_"`
}

// loadConfig parses env, or the process environment when env is nil.
func loadConfig(env map[string]string) (Config, error) {
	opts := []config.Option{config.WithPrefix(envPrefix)}
	if env != nil {
		opts = append(opts, config.WithEnvironment(env))
	}
	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
