// Package config manages environment-driven configuration.
//
// It reads variables from the process environment (optionally seeded from a
// `.env` file), maps them into structured Go types, applies defaults for
// anything omitted, and validates the result so the app fails fast on bad
// config.
//
// Env vars use the ECOMMERCE_ prefix and dot-delimited nesting, e.g.
//
//	ECOMMERCE_SERVER.PORT       -> Config.Server.Port
//	ECOMMERCE_DATABASE.PATH     -> Config.Database.Path
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file (if present) into the process
	// environment before any env vars are read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from; the
// `validate:"..."` tags are enforced by go-playground/validator after
// defaults are applied.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Logging  LoggingConfig  `koanf:"logging" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=local production"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are stored as whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// DatabaseConfig contains the SQLite store location.
//
// Path is the single database file; it is created on first start if absent.
type DatabaseConfig struct {
	Path string `koanf:"path" validate:"required"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	Level string `koanf:"level" validate:"required"`
}

// defaults returns the configuration used when no env vars are set.
//
// The service is a local data-collection API, so it must start with zero
// configuration: SQLite file next to the binary, the React dev server as the
// only allowed origin.
func defaults() *Config {
	return &Config{
		Primary: Primary{Env: "local"},
		Server: ServerConfig{
			Port:               "8000",
			ReadTimeout:        15,
			WriteTimeout:       15,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: DatabaseConfig{Path: "ecommerce.db"},
		Logging:  LoggingConfig{Level: "info"},
	}
}

// Load reads configuration from the environment on top of the defaults,
// validates it, and returns the resulting config.
func Load() (*Config, error) {
	// The "." is the key-path delimiter koanf uses to represent nesting,
	// e.g. "server.port" means Config.Server.Port.
	k := koanf.New(".")

	err := k.Load(env.Provider("ECOMMERCE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ECOMMERCE_"))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "loading env variables")
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshalling config")
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}

	return cfg, nil
}
