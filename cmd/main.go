package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"digigrow-web/internal/adapter/api"
	"digigrow-web/internal/adapter/http"
	"digigrow-web/internal/adapter/memory"
	"digigrow-web/internal/adapter/postgres"
	"digigrow-web/internal/config"
	"digigrow-web/internal/config/configs"
	"digigrow-web/internal/core/port"
	"digigrow-web/internal/db"
	"digigrow-web/internal/session"
	"digigrow-web/internal/telemetry"
)

const (
	sweepInterval = time.Minute
	purgeInterval = time.Hour
)

// main is the entry point of the digigrow web front end. It loads
// configuration, selects the session store (running migrations when asked),
// wires the backend client and session manager into the HTTP handler, then
// serves until a termination signal arrives and shuts down gracefully.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		logger.Error("telemetry setup error", slog.Any("error", err))
		return
	}
	defer func() {
		sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer scancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	g, gctx := errgroup.WithContext(ctx)

	var store port.SessionStorage
	switch cfg.Session.Store {
	case configs.StorePostgres:
		// Optionally run migrations if configured. We use the Psql sub-config.
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()

		repo := postgres.NewSessionRepository(pool)
		g.Go(func() error {
			purgeSessions(gctx, repo, cfg.Session.Retention, logger)
			return nil
		})
		store = repo
	default:
		store = memory.NewSessionStorage()
	}
	logger.Info("session store ready", slog.String("store", cfg.Session.Store))

	backend := api.New(cfg.API.BaseURL, cfg.API.Timeout, api.WithLogger(logger))
	sessions := session.NewManager(store, backend, logger, session.WithIdleTTL(cfg.Session.IdleTTL))
	g.Go(func() error {
		sessions.Run(gctx, sweepInterval)
		return nil
	})

	csrfKey := []byte(cfg.Session.CSRFKey)
	if len(csrfKey) == 0 {
		csrfKey = make([]byte, 32)
		if _, err = rand.Read(csrfKey); err != nil {
			logger.Error("csrf key error", slog.Any("error", err))
			return
		}
		logger.Warn("SESSION_CSRF_KEY not set, forms will not survive a restart")
	}

	handler, err := httpadapter.NewHandler(backend, sessions, logger, httpadapter.Options{
		CookieName:   cfg.Session.CookieName,
		SecureCookie: cfg.Session.SecureCookie,
		RestoreWait:  cfg.Session.RestoreWait,
		CSRFKey:      csrfKey,
	})
	if err != nil {
		logger.Error("handler setup error", slog.Any("error", err))
		return
	}
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("api", cfg.API.BaseURL.String()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, scancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer scancel()
		if err := srv.Shutdown(sctx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})

	if err = g.Wait(); err != nil {
		logger.Error("server error", slog.Any("error", err))
		return
	}
	exitCode = 0
}

// purgeSessions deletes persisted session keys untouched for longer than
// retention, once an hour until ctx is done.
func purgeSessions(ctx context.Context, repo *postgres.SessionRepository, retention time.Duration, logger *slog.Logger) {
	t := time.NewTicker(purgeInterval)
	defer t.Stop()
	for {
		n, err := repo.PurgeIdle(ctx, retention)
		switch {
		case err != nil && ctx.Err() == nil:
			logger.Error("purge sessions", slog.Any("error", err))
		case n > 0:
			logger.Info("purged idle sessions", slog.Int64("rows", n))
		}
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}
