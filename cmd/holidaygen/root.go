package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/market-holidays/internal/config"
	"github.com/zapponejosh/market-holidays/internal/database"
	"github.com/zapponejosh/market-holidays/internal/holidays"
	"github.com/zapponejosh/market-holidays/internal/logger"
)

// app carries what every subcommand needs once the root has loaded
// configuration.
type app struct {
	cfg *config.Config
	log *slog.Logger
	gen *holidays.Generator

	// flag values
	catalogPath string
	dbPath      string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	c := &cobra.Command{
		Use:   "holidaygen",
		Short: "Generate market holiday calendars",
		Long: "holidaygen computes the dates a market is closed for holidays,\n" +
			"shifting fixed-date holidays off weekends the way the market observes them.",
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	c.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "YAML holiday catalog (default: built-in NYSE calendar, or CATALOG_PATH)")
	c.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (default: LOG_LEVEL)")

	c.AddCommand(
		newGenerateCmd(a),
		newCheckCmd(a),
		newCatalogCmd(a),
		newStoredCmd(a),
	)

	return c
}

// setup loads configuration, applies flag overrides, configures logging on
// stderr and builds the generator.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.catalogPath != "" {
		cfg.CatalogPath = a.catalogPath
	}
	if a.dbPath != "" {
		cfg.DatabasePath = a.dbPath
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
	}
	a.cfg = cfg
	a.log = logger.Setup(cfg, cmd.ErrOrStderr())

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	a.gen = holidays.NewGenerator(cat)

	a.log.Debug("catalog loaded",
		slog.String("catalog", cat.Name()),
		slog.Int("holidays", cat.Len()),
	)
	return nil
}

func loadCatalog(path string) (*holidays.Catalog, error) {
	if path == "" {
		return holidays.Default(), nil
	}
	return holidays.LoadCatalogFile(path)
}

// openDB opens and migrates the export database named by the config.
func (a *app) openDB(cmd *cobra.Command) (*database.DB, error) {
	if !a.cfg.HasDatabase() {
		return nil, fmt.Errorf("no database: set --db or DATABASE_PATH")
	}

	db, err := database.Open(database.DefaultConfig(a.cfg.DatabasePath), a.log)
	if err != nil {
		return nil, err
	}
	if _, err := db.Migrate(cmd.Context()); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
