package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"mobipos/backend/internal/config"
	"mobipos/backend/internal/httpapi"
	"mobipos/backend/internal/ledger"
	"mobipos/backend/internal/mirror"
	"mobipos/backend/internal/service"
	"mobipos/backend/internal/store"
	filestore "mobipos/backend/internal/store/file"
	pgstore "mobipos/backend/internal/store/postgres"
)

func main() {
	cfg := config.Load()
	logger := newLogger(cfg.LogLevel)

	if err := validateSecurityConfig(cfg); err != nil {
		logger.WithError(err).Fatal("invalid security configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var snapshots store.SnapshotStore
	closers := make([]func() error, 0, 2)

	if cfg.DatabaseURL != "" {
		pg, err := pgstore.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.WithError(err).Fatal("postgres unavailable and DATABASE_URL is set; refusing to start with file fallback")
		}
		snapshots = pg
		closers = append(closers, pg.Close)
		logger.Info("snapshot store: postgres")
	} else {
		fs, err := filestore.New(cfg.DataDir)
		if err != nil {
			logger.WithError(err).Fatal("data directory unavailable")
		}
		snapshots = fs
		logger.WithField("dir", cfg.DataDir).Info("snapshot store: file")
	}

	remote := mirror.Mirror(mirror.Noop{})
	if cfg.RedisAddr != "" {
		redisMirror := mirror.NewRedisMirror(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := redisMirror.Ping(ctx); err != nil {
			logger.WithError(err).Warn("redis unavailable, mirroring disabled")
		} else {
			remote = redisMirror
			closers = append(closers, redisMirror.Close)
			logger.Info("mirror: redis")
		}
	} else {
		logger.Info("mirror: noop")
	}

	debouncer := mirror.NewDebouncer(remote, time.Duration(cfg.MirrorDebounceSeconds)*time.Second, logger)
	policy := ledger.Policy{RevertSoldOnRemove: cfg.RevertSoldOnRemove}
	svc := service.New(snapshots, debouncer, policy, logger)
	auth := httpapi.NewAuthManager(
		cfg.AuthSecret,
		time.Duration(cfg.AccessTokenTTLMinutes)*time.Minute,
		time.Duration(cfg.IdleTimeoutMinutes)*time.Minute,
		snapshots,
	)
	api := httpapi.New(svc, auth, cfg.AllowedOrigin, logger)

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           api.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.WithField("addr", cfg.Address()).Info("shop backend listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("server error")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("shutdown error")
	}

	// Push any pending mirror writes before the connections close.
	debouncer.Flush()

	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			logger.WithError(err).Warn("close error")
		}
	}

	logger.Info("server stopped")
}

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
	return logger
}

func validateSecurityConfig(cfg config.Config) error {
	if len(cfg.AuthSecret) < 32 {
		return fmt.Errorf("AUTH_SECRET must be set and at least 32 characters")
	}
	return nil
}
