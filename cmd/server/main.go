package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"trading_backend/internal/app/di"
	"trading_backend/internal/app/router"
	"trading_backend/internal/config"
	analysishandler "trading_backend/internal/feature/analysis/transport/handler"
	analysisusecase "trading_backend/internal/feature/analysis/usecase"
	cataloghandler "trading_backend/internal/feature/catalog/transport/handler"
	catalogusecase "trading_backend/internal/feature/catalog/usecase"
	sessionhandler "trading_backend/internal/feature/session/transport/handler"
	sessionusecase "trading_backend/internal/feature/session/usecase"
	symbolshandler "trading_backend/internal/feature/symbols/transport/handler"
	symbolsusecase "trading_backend/internal/feature/symbols/usecase"
	"trading_backend/internal/platform/db"
	"trading_backend/internal/platform/http/handler"
	"trading_backend/internal/platform/logger"
	platformredis "trading_backend/internal/platform/redis"
	"trading_backend/internal/platform/scheduler"
	"trading_backend/internal/shared/ratelimiter"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	logger.Setup(cfg.Log, os.Stdout)
	if logger.ParseLevel(cfg.Log.Level) > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	// db
	gdb, err := db.Open(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer closeDB(gdb)
	if err := db.Migrate(gdb); err != nil {
		return err
	}

	// Redis（未設定・接続失敗時はキャッシュなし、セッションはDBに保存）
	var rdb *redisv9.Client
	switch tmp, err := platformredis.NewRedisClient(ctx, platformredis.OptionsFromConfig(cfg)); {
	case errors.Is(err, platformredis.ErrDisabled):
		slog.Info("Redis not configured. Running without cache.")
	case err != nil:
		slog.Warn("Redis unavailable. Running without cache.")
	default:
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	catalogRepo := di.NewCatalogRepository(rdb, gdb, cfg.Catalog.CacheTTL)
	sessionRepo := di.NewSessionRepository(rdb, gdb)

	// Usecase
	analysisUC := analysisusecase.NewAnalysisUsecase(di.NewAnalysisClient(cfg.Analysis))
	symbolsUC := symbolsusecase.NewSymbolsUsecase()
	catalogUC := catalogusecase.NewCatalogUsecase(catalogRepo)
	sessionUC := sessionusecase.NewSessionUsecase(sessionRepo, cfg.Session.TTL)

	// 期限切れセッションの定期削除
	sched := scheduler.New()
	if err := sched.Add("purge-sessions", cfg.Session.CleanupCron, func(ctx context.Context) error {
		_, err := sessionUC.PurgeExpired(ctx)
		return err
	}); err != nil {
		return err
	}
	sched.Start()

	// Handler
	ready := []handler.Check{{Name: "db", Ping: func(ctx context.Context) error { return db.Ping(ctx, gdb) }}}
	if rdb != nil {
		ready = append(ready, handler.Check{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }})
	}
	var limiter *ratelimiter.KeyedLimiter
	if cfg.RateLimit.RPS > 0 {
		limiter = ratelimiter.NewKeyedLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, ratelimiter.DefaultIdleTTL)
	}

	// ルータ生成
	r := router.NewRouter(router.Deps{
		CORSOrigins: cfg.Server.CORSOrigins,
		Limiter:     limiter,
		Ready:       ready,
		Analysis:    analysishandler.NewAnalysisHandler(analysisUC),
		Symbols:     symbolshandler.NewSymbolsHandler(symbolsUC),
		Catalog:     cataloghandler.NewCatalogHandler(catalogUC),
		Session:     sessionhandler.NewSessionHandler(sessionUC),
		Sessions:    sessionUC,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	sched.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func closeDB(gdb *gorm.DB) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		slog.Error("failed to close database", "error", err)
	}
}
