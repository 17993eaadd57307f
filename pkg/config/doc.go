// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv, which reads optional .env files into
// the process environment, with github.com/caarlos0/env/v11, which parses the
// environment into a struct using `env` and `envDefault` tags. Parsed values
// are cached per type, so calling Load from several packages is cheap.
//
// # Usage
//
//	type Config struct {
//		Env           string `env:"APP_ENV" envDefault:"development"`
//		DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// # Error Handling
//
//   - ErrParsingConfig: the environment does not fit the struct.
//   - ErrLoadingEnvFile: an explicitly requested file could not be read.
//   - ErrNilPointer: nil passed to Load.
//
// Use ResetCache between tests that change the environment.
package config
