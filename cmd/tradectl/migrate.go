package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"trading_backend/internal/app/di"
	"trading_backend/internal/config"
	catalogadapters "trading_backend/internal/feature/catalog/adapters"
	"trading_backend/internal/platform/db"
	platformredis "trading_backend/internal/platform/redis"
)

func newMigrateCmd() *cobra.Command {
	var (
		seedFile string
		noSeed   bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create tables and seed the strategy/AI-model catalog",
		Long: `Runs schema migrations against the configured database, then upserts the
catalog from the embedded document (or --seed-file) and drops cached catalog
entries from Redis when Redis is configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}

			gdb, err := db.Open(ctx, cfg.DB)
			if err != nil {
				return err
			}
			if sqlDB, err := gdb.DB(); err == nil {
				defer sqlDB.Close()
			}

			if err := db.Migrate(gdb); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")

			if noSeed {
				return nil
			}

			doc, err := loadSeed(seedFile)
			if err != nil {
				return err
			}
			if err := catalogadapters.NewCatalogRepository(gdb).Seed(ctx, doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "catalog seeded: %d strategies, %d models\n", len(doc.Strategies), len(doc.Models))

			rdb, err := platformredis.NewRedisClient(ctx, platformredis.OptionsFromConfig(cfg))
			if errors.Is(err, platformredis.ErrDisabled) {
				return nil
			}
			if err != nil {
				slog.Warn("Redis unavailable, cached catalog entries expire on their own", "error", err)
				return nil
			}
			defer rdb.Close()
			if err := di.NewCatalogRepository(rdb, gdb, cfg.Catalog.CacheTTL).Invalidate(ctx); err != nil {
				return fmt.Errorf("failed to invalidate catalog cache: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "catalog cache invalidated")
			return nil
		},
	}

	cmd.Flags().StringVar(&seedFile, "seed-file", "", "catalog YAML to load instead of the embedded document")
	cmd.Flags().BoolVar(&noSeed, "no-seed", false, "only run schema migrations")
	return cmd
}

func loadSeed(path string) (*catalogadapters.Document, error) {
	if path == "" {
		return catalogadapters.LoadSeed()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return catalogadapters.ParseSeed(b)
}
