package main

import (
	"flag"

	"language_connect/internal/config"
	"language_connect/internal/logger"
	"language_connect/internal/migrations"
)

func main() {
	apply := flag.Bool("apply", false, "apply pending migrations")
	down := flag.Int("down", 0, "roll back this many migrations")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL not set")
	}

	switch {
	case *down > 0:
		if err := migrations.Down(cfg.DatabaseURL, *down); err != nil {
			logger.Fatal("rollback failed", "error", err)
		}
	case *apply:
		if err := migrations.Up(cfg.DatabaseURL); err != nil {
			logger.Fatal("migration failed", "error", err)
		}
	}

	version, dirty, ok, err := migrations.Version(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("read schema version", "error", err)
	}
	if !ok {
		logger.Info("database has no migrations applied")
		return
	}
	logger.Info("schema version", "version", version, "dirty", dirty)
}
