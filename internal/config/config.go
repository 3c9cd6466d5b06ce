// Package config loads process configuration from an optional TOML file
// with environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/sakif/quiztracker/internal/auth"
)

type Server struct {
	Port   int    `toml:"port"`
	DBPath string `toml:"db_path"`
}

type Auth struct {
	// JWTSecret signs identity tokens. Required: Load fails when it is
	// empty, so the process can never start signing with a zero key.
	JWTSecret string `toml:"jwt_secret"`
	// Expiration is a Go duration string, e.g. "24h".
	Expiration string `toml:"expiration"`
}

type Config struct {
	Server Server `toml:"server"`
	Auth   Auth   `toml:"auth"`

	tokenTTL time.Duration
}

// TokenTTL returns the parsed token lifetime.
func (c Config) TokenTTL() time.Duration {
	return c.tokenTTL
}

// Load reads the TOML file at path (missing file is fine — defaults
// apply), then applies the PORT, DB_PATH, JWT_SECRET, and TOKEN_TTL
// environment overrides. The JWT secret is validated here: absence is a
// startup-fatal condition, surfaced as an error to main.
func Load(path string) (Config, error) {
	cfg := Config{
		Server: Server{
			Port:   8080,
			DBPath: "data/quiztracker.db",
		},
		Auth: Auth{
			Expiration: "24h",
		},
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid PORT %q: %w", portStr, err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.Server.DBPath = dbPath
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		cfg.Auth.Expiration = ttl
	}

	if cfg.Auth.JWTSecret == "" {
		return Config{}, errors.New("config: JWT secret is required (set JWT_SECRET or auth.jwt_secret)")
	}

	ttl, err := time.ParseDuration(cfg.Auth.Expiration)
	if err != nil {
		return Config{}, fmt.Errorf("config: invalid token expiration %q: %w", cfg.Auth.Expiration, err)
	}
	if ttl <= 0 {
		ttl = auth.DefaultTokenTTL
	}
	cfg.tokenTTL = ttl

	return cfg, nil
}
