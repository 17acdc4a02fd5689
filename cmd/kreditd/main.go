package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloud-ru/kredit-schedule-go/internal/api"
	"github.com/cloud-ru/kredit-schedule-go/internal/config"
	"github.com/cloud-ru/kredit-schedule-go/internal/logging"
	"github.com/cloud-ru/kredit-schedule-go/internal/service"
	"github.com/cloud-ru/kredit-schedule-go/internal/session"
	"github.com/cloud-ru/kredit-schedule-go/internal/tracing"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "kreditd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger := logging.Init(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.Init(ctx, cfg.OTELServiceName, cfg.OTELEndpoint, logger)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Error("tracer shutdown failed", "error", err)
		}
	}()

	store, closeStore, err := newStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	sessions := session.NewManager(store, cfg.Limits())
	svc := service.New(cfg, sessions, tracing.Tracer(cfg.OTELServiceName), logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           api.NewServer(svc, logger).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr,
			"annual_rate_percent", cfg.AnnualRatePercent, "session_ttl", cfg.SessionTTL)
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

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newStore выбирает Redis, если задан REDIS_ADDR, иначе хранилище в памяти
func newStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (session.Store, func(), error) {
	if cfg.RedisAddr != "" {
		store := session.NewRedisStore(cfg.RedisAddr, cfg.SessionTTL)
		if err := store.Ping(ctx); err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("redis %s: %w", cfg.RedisAddr, err)
		}
		logger.Info("sessions stored in redis", "addr", cfg.RedisAddr)
		return store, func() { store.Close() }, nil
	}

	store := session.NewMemoryStore(cfg.SessionTTL)
	go store.RunCleanup(ctx, max(cfg.SessionTTL/2, time.Second))
	logger.Info("sessions stored in memory")
	return store, func() {}, nil
}
