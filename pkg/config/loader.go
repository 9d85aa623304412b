package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures a Load call.
type Option func(*options)

type options struct {
	prefix      string
	files       []string
	environment map[string]string
}

// WithPrefix prepends prefix to every env key of the struct, including
// nested structs. Load("MAJORITY_") reads `env:"VALIDATE"` from MAJORITY_VALIDATE.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles loads the given .env files before parsing. Unlike the default
// ./.env, which is optional, every listed file must exist. Variables already
// set in the environment take precedence over file values.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) { o.files = append(o.files, paths...) }
}

// WithEnvironment parses from env instead of the process environment.
// Values from env files only fill keys missing from env.
func WithEnvironment(env map[string]string) Option {
	return func(o *options) { o.environment = env }
}

// Load parses environment variables into v based on its `env` struct tags.
//
// Example:
//
//	type Config struct {
//		Validate bool   `env:"VALIDATE" envDefault:"true"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("MAJORITY_")); err != nil {
//		// handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	environment, err := o.resolveEnvironment()
	if err != nil {
		return err
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: environment,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// resolveEnvironment returns the map env.Parse should read from, or nil for
// the process environment.
func (o *options) resolveEnvironment() (map[string]string, error) {
	if o.environment == nil {
		if len(o.files) == 0 {
			// The default .env file is optional
			_ = godotenv.Load()
			return nil, nil
		}
		if err := godotenv.Load(o.files...); err != nil {
			return nil, errors.Join(ErrLoadingEnvFile, err)
		}
		return nil, nil
	}

	merged := make(map[string]string, len(o.environment))
	for k, v := range o.environment {
		merged[k] = v
	}
	if len(o.files) > 0 {
		fromFiles, err := godotenv.Read(o.files...)
		if err != nil {
			return nil, errors.Join(ErrLoadingEnvFile, err)
		}
		for k, v := range fromFiles {
			if _, ok := merged[k]; !ok {
				merged[k] = v
			}
		}
	}
	return merged, nil
}

// Environ returns the process environment as a map, the shape WithEnvironment expects.
func Environ() map[string]string {
	out := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			out[k] = v
		}
	}
	return out
}
