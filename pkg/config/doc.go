// Package config loads environment variables into Go structs.
//
// It wraps `github.com/caarlos0/env/v11` for struct tag parsing and
// `github.com/joho/godotenv` for `.env` files:
//
//   - Load parses env vars into any struct annotated with `env` tags.
//   - WithPrefix namespaces keys, so one struct can serve several binaries.
//   - WithEnvFiles loads explicit `.env` files; without it the `.env` in the
//     working directory is loaded when present.
//   - WithEnvironment parses from a map instead of the process environment,
//     which keeps tests independent of each other.
//
// # Usage
//
//	type Config struct {
//		Validate bool   `env:"VALIDATE" envDefault:"true"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		HTTP     struct {
//			Addr string `env:"ADDR" envDefault:":8080"`
//		} `envPrefix:"HTTP_"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("MAJORITY_")); err != nil {
//		log.Fatalf("loading config: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – env vars could not be parsed into the struct.
//   - `ErrLoadingEnvFile` – an explicitly listed `.env` file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
//
// The underlying library error is joined to the sentinel, so its message is
// preserved.
package config
