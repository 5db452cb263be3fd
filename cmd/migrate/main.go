// Package main applies or rolls back the kaapav-bot schema.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/config"
	"github.com/kaapav/kaapav-bot/internal/infrastructure/migrate"
	"github.com/kaapav/kaapav-bot/internal/logger"
)

const defaultMigrateSteps = 1

func main() {
	var (
		configPath     string
		migrationsPath string
		steps          int
	)

	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&migrationsPath, "path", "", "Path to migrations directory (overrides config)")
	flag.IntVar(&steps, "steps", defaultMigrateSteps, "Number of migrations to roll back with down")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: migrate [flags] up|down|version")
		os.Exit(2)
	}
	command := args[0]

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		databaseURL = cfg.Database.GetURL()
	}
	if migrationsPath == "" {
		migrationsPath = cfg.Database.MigrationsPath
	}

	runner := migrate.NewRunner(migrate.Config{DatabaseURL: databaseURL, MigrationsPath: migrationsPath}, log)

	switch command {
	case "up":
		if err := runner.Up(); err != nil {
			log.Fatal("Failed to run migrations up", zap.Error(err))
		}
	case "down":
		if err := runner.Steps(-steps); err != nil {
			log.Fatal("Failed to roll back migrations", zap.Int("steps", steps), zap.Error(err))
		}
	case "version":
		version, dirty, err := runner.Version()
		if err != nil {
			log.Fatal("Failed to get version", zap.Error(err))
		}
		log.Info("Current schema version", zap.Uint("version", version), zap.Bool("dirty", dirty))
	default:
		log.Fatal("Unknown command, use up, down or version", zap.String("command", command))
	}
}
