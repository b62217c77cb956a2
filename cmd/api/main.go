// Package main is the entry point for the market holidays API server.
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

	"github.com/zapponejosh/market-holidays/internal/api"
	"github.com/zapponejosh/market-holidays/internal/calendar"
	"github.com/zapponejosh/market-holidays/internal/config"
	"github.com/zapponejosh/market-holidays/internal/database"
	"github.com/zapponejosh/market-holidays/internal/holidays"
	"github.com/zapponejosh/market-holidays/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.Setup(cfg, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	log.Info("starting market holidays API",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.Port),
		slog.String("log_level", cfg.LogLevel),
	)

	cat := holidays.Default()
	if cfg.CatalogPath != "" {
		var err error
		if cat, err = holidays.LoadCatalogFile(cfg.CatalogPath); err != nil {
			return err
		}
	}
	gen := holidays.NewGenerator(cat)
	log.Info("catalog loaded", slog.String("catalog", cat.Name()), slog.Int("holidays", cat.Len()))

	var db *database.DB
	if cfg.HasDatabase() {
		var err error
		db, err = database.Open(database.DefaultConfig(cfg.DatabasePath), log)
		if err != nil {
			return err
		}
		defer db.Close()

		if _, err := db.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	if cfg.ExportOnStart {
		year := calendar.Today(time.Local).Year()
		if err := exportYears(ctx, db, gen, year-1, year+1); err != nil {
			return fmt.Errorf("export on start: %w", err)
		}
		log.Info("holidays exported",
			slog.String("path", cfg.DatabasePath),
			slog.Int("from", year-1),
			slog.Int("to", year+1),
		)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           api.NewRouter(api.NewHandlers(gen, db, cfg), log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("market holidays API ready", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// exportYears generates from..to and saves each year to db under the
// catalog's name.
func exportYears(ctx context.Context, db *database.DB, gen *holidays.Generator, from, to int) error {
	if db == nil {
		return errors.New("no database configured")
	}

	sets, err := gen.GenerateRange(from, to)
	if err != nil {
		return err
	}
	for _, set := range sets {
		if err := db.SaveYearSet(ctx, gen.Catalog().Name(), set); err != nil {
			return err
		}
	}
	return nil
}
