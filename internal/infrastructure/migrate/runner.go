// Package migrate applies the SQL schema migrations.
package migrate

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file" // file source for migrations
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type Config struct {
	DatabaseURL    string
	MigrationsPath string
}

type Runner struct {
	config Config
	logger *zap.Logger
}

func NewRunner(config Config, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		config: config,
		logger: logger,
	}
}

// Up applies every pending migration.
func (r *Runner) Up() error {
	return r.with(func(m *migrate.Migrate) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		return r.checkClean(m)
	})
}

// Steps applies n migrations forward, or rolls back -n when negative.
func (r *Runner) Steps(n int) error {
	return r.with(func(m *migrate.Migrate) error {
		if err := m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to migrate %d steps: %w", n, err)
		}
		return r.checkClean(m)
	})
}

// Version returns the current schema version; 0 means nothing is applied.
func (r *Runner) Version() (version uint, dirty bool, err error) {
	err = r.with(func(m *migrate.Migrate) error {
		version, dirty, err = currentVersion(m)
		return err
	})
	return version, dirty, err
}

func (r *Runner) checkClean(m *migrate.Migrate) error {
	version, dirty, err := currentVersion(m)
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("database is in dirty state at version %d", version)
	}
	r.logger.Info("Schema at version", zap.Uint("version", version))
	return nil
}

func currentVersion(m *migrate.Migrate) (uint, bool, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get version: %w", err)
	}
	return version, dirty, nil
}

// with opens the database and migration source for the duration of fn.
func (r *Runner) with(fn func(m *migrate.Migrate) error) error {
	db, err := sql.Open("postgres", r.config.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			r.logger.Warn("Failed to close migration connection", zap.Error(closeErr))
		}
	}()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", r.config.MigrationsPath),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	m.Log = migrateLogger{r.logger.Sugar()}

	return fn(m)
}

// migrateLogger adapts zap to migrate.Logger.
type migrateLogger struct {
	sugar *zap.SugaredLogger
}

func (l migrateLogger) Printf(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

func (l migrateLogger) Verbose() bool {
	return false
}
