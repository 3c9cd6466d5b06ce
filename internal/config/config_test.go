package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_FailsWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(""); err == nil {
		t.Fatal("Load() must fail when no JWT secret is configured")
	}
}

func TestLoad_SecretFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret-at-least-16-chars!")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Auth.JWTSecret != "env-secret-at-least-16-chars!" {
		t.Errorf("JWTSecret = %q, want env value", cfg.Auth.JWTSecret)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.TokenTTL() != 24*time.Hour {
		t.Errorf("default TokenTTL = %v, want 24h", cfg.TokenTTL())
	}
}

func TestLoad_FromFileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.toml")
	content := `
[server]
port = 9000
db_path = "custom.db"

[auth]
jwt_secret = "file-secret-at-least-16-chars"
expiration = "1h"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PORT", "9100")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("port = %d, want env override 9100", cfg.Server.Port)
	}
	if cfg.Server.DBPath != "custom.db" {
		t.Errorf("db_path = %q, want custom.db", cfg.Server.DBPath)
	}
	if cfg.TokenTTL() != time.Hour {
		t.Errorf("TokenTTL = %v, want 1h", cfg.TokenTTL())
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret-at-least-16-chars!")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() should tolerate a missing config file, got %v", err)
	}
	if cfg.Server.DBPath != "data/quiztracker.db" {
		t.Errorf("db_path = %q, want default", cfg.Server.DBPath)
	}
}

func TestLoad_InvalidExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret-at-least-16-chars!")
	t.Setenv("TOKEN_TTL", "soon")

	if _, err := Load(""); err == nil {
		t.Fatal("Load() must reject an unparsable token lifetime")
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret-at-least-16-chars!")
	t.Setenv("PORT", "eighty")

	if _, err := Load(""); err == nil {
		t.Fatal("Load() must reject a non-numeric PORT")
	}
}
