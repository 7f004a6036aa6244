package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pet-care-tracker/internal/adapters/notify/wshub"
	"pet-care-tracker/internal/adapters/storage/memory"
	pg "pet-care-tracker/internal/adapters/storage/postgres"
	"pet-care-tracker/internal/adapters/storage/sqlite"
	"pet-care-tracker/internal/config"
	"pet-care-tracker/internal/platform/logger"
	"pet-care-tracker/internal/ports/storage"
	"pet-care-tracker/internal/router"
	"pet-care-tracker/internal/store"

	"golang.org/x/sync/errgroup"
)

// @title Pet Care Tracker API
// @version 1.0
// @description Mascotas, recordatorios y registros de cuidado de un único usuario.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: logger.ParseFormat(cfg.Logging.Format),
		App:    cfg.Logging.App,
	})

	loc, err := cfg.Calendar.Location()
	if err != nil {
		return err
	}

	medium, closeMedium, err := openMedium(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeMedium(); err != nil {
			log.Warn("close storage", map[string]any{"err": err})
		}
	}()

	hub := wshub.NewHub(log, nil)

	// Un snapshot corrupto corta el arranque: se corrige a mano o borrando el storage.
	st, err := store.New(ctx, medium,
		store.WithLocation(loc),
		store.WithNotifier(hub),
		store.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("load store: %w", err)
	}

	srv := &http.Server{
		Addr: cfg.Server.ListenAddr,
		Handler: router.NewRouter(router.Options{
			Store:          st,
			Notifications:  hub,
			Logger:         log,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		}),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{
			"addr":      srv.Addr,
			"storage":   cfg.Storage.Driver,
			"time_zone": loc.String(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeoutDuration())
		defer cancel()

		// Shutdown no espera conexiones hijacked: los websockets se cierran aparte.
		hub.Close()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openMedium(ctx context.Context, cfg config.StorageConfig) (storage.Medium, func() error, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.NewMedium(), func() error { return nil }, nil

	case config.DriverSQLite:
		m, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return m, m.Close, nil

	case config.DriverPostgres:
		db, err := pg.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		m := pg.NewMedium(db)
		if err := m.EnsureSchema(ctx); err != nil {
			_ = m.Close()
			return nil, nil, err
		}
		return m, m.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
