// Package config loads service configuration from defaults overridden by
// APP_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "APP_"

type Config struct {
	// Addr is the HTTP listen address.
	Addr string `koanf:"addr"`

	PostgresDSN string `koanf:"postgres_dsn"`

	// AuthSecret verifies HS256 bearer tokens issued by the surrounding
	// application. Session lifecycle is not this service's concern.
	AuthSecret string `koanf:"auth_secret"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

func defaults() Config {
	return Config{
		Addr:            ":8080",
		PostgresDSN:     "",
		AuthSecret:      "",
		LogLevel:        "info",
		LogFormat:       "json",
		ShutdownTimeout: 5 * time.Second,
	}
}

// Load merges defaults with APP_* environment variables (APP_POSTGRES_DSN,
// APP_ADDR, ...).
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.PostgresDSN == "" {
		return Config{}, fmt.Errorf("POSTGRES_DSN is required (set %sPOSTGRES_DSN)", envPrefix)
	}
	if cfg.AuthSecret == "" {
		return Config{}, fmt.Errorf("auth secret is required (set %sAUTH_SECRET)", envPrefix)
	}

	return cfg, nil
}
