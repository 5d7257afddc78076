// Package db opens the relational store and runs migrations.
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"trading_backend/internal/config"
	catalogentity "trading_backend/internal/feature/catalog/domain/entity"
	sessionadapters "trading_backend/internal/feature/session/adapters"
)

// ConnectTimeout bounds how long Open keeps retrying the first connection.
const ConnectTimeout = 60 * time.Second

// retryInterval is the wait between connection attempts.
var retryInterval = 3 * time.Second

// Opener opens a GORM connection for a dialector. Replaced in tests.
type Opener func(d gorm.Dialector) (*gorm.DB, error)

// DefaultOpener opens the connection with warn-level SQL logging.
func DefaultOpener(d gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(d, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
}

// Dialector selects the GORM driver for cfg.
func Dialector(cfg config.DBConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres":
		if cfg.DSN == "" {
			return nil, errors.New("postgres requires a DSN")
		}
		return postgres.Open(cfg.DSN), nil
	case "sqlite", "":
		path := cfg.SQLitePath
		if cfg.DSN != "" {
			path = cfg.DSN
		}
		return sqlite.Open(path), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// Open connects to the configured database, retrying until ConnectTimeout.
func Open(ctx context.Context, cfg config.DBConfig) (*gorm.DB, error) {
	d, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	return ConnectWithRetry(ctx, d, ConnectTimeout, DefaultOpener)
}

// ConnectWithRetry calls open at a fixed interval until it succeeds or the
// timeout elapses.
func ConnectWithRetry(ctx context.Context, d gorm.Dialector, timeout time.Duration, open Opener) (*gorm.DB, error) {
	b := backoff.NewConstantBackOff(retryInterval)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var db *gorm.DB
	op := func() error {
		var err error
		db, err = open(d)
		return err
	}
	notify := func(err error, wait time.Duration) {
		slog.Warn("DB connect failed, retrying", "driver", d.Name(), "wait", wait, "error", err)
	}

	if err := backoff.RetryNotify(op, backoff.WithContext(b, ctx), notify); err != nil {
		return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
	}
	slog.Info("DB connection successful", "driver", d.Name())
	return db, nil
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&catalogentity.Strategy{},
		&catalogentity.AIModel{},
		&sessionadapters.SessionModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Ping checks that the underlying connection pool is reachable.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
