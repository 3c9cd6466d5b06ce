// Package main is the entry point for the quiz tracker API server.
//
// main stays minimal: read configuration, build the logger, create the
// server, run it. All logic lives in the internal packages.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sakif/quiztracker/internal/config"
	"github.com/sakif/quiztracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "configs/server.toml"
	}

	// Load fails fast when the signing secret is missing — the process
	// must never come up able to sign tokens with an empty key.
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if dbDir := filepath.Dir(cfg.Server.DBPath); dbDir != "." {
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			logger.Error("failed to create database directory",
				slog.String("dir", dbDir),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	srv, err := server.New(server.Config{
		Port:      cfg.Server.Port,
		DBPath:    cfg.Server.DBPath,
		JWTSecret: cfg.Auth.JWTSecret,
		TokenTTL:  cfg.TokenTTL(),
	}, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
