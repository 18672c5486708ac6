package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/saltyorg/musicdb/internal/config"
	"github.com/saltyorg/musicdb/internal/console"
	"github.com/saltyorg/musicdb/internal/database"
	"github.com/saltyorg/musicdb/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// CLI flags
var (
	dbPath     string
	configPath string
	logFile    string
	verbosity  int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "musicdb",
		Short:        "musicdb - Music catalog console",
		Long:         `musicdb is an interactive console for browsing and editing a catalog of artists, albums and songs stored in SQLite.`,
		RunE:         runConsole,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "SQLite database path (default music.db, or set MUSICDB_DB_PATH)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Optional TOML config file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (default: musicdb.log next to the database)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v debug, -vv trace)")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "init",
			Short: "Create tables and insert sample data, then exit",
			RunE:  runInit,
		},
		&cobra.Command{
			Use:   "optimize",
			Short: "Refresh SQLite query planner statistics",
			RunE: func(cmd *cobra.Command, args []string) error {
				db, _, err := setup()
				if err != nil {
					return err
				}
				return db.Optimize()
			},
		},
		&cobra.Command{
			Use:   "vacuum",
			Short: "Rebuild the database file to reclaim unused space",
			RunE: func(cmd *cobra.Command, args []string) error {
				db, _, err := setup()
				if err != nil {
					return err
				}
				return db.Vacuum()
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "musicdb %s (commit: %s, built: %s)\n", version, commit, date)
			},
		},
	)

	return rootCmd
}

// setup resolves configuration, configures logging and opens the catalog
func setup() (*database.Manager, *config.Config, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	loader := config.NewLoader(settings)
	cfg := config.Resolve(loader)

	// Flags win over file and environment
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	if cfg.LogFile == "" {
		cfg.LogFile = logging.FilePathForDB(cfg.DBPath)
	}

	logging.Apply(logging.LevelForVerbosity(verbosity, cfg.LogLevel), loader, cfg.LogFile)

	log.Debug().
		Str("version", version).
		Str("database", cfg.DBPath).
		Str("log_file", cfg.LogFile).
		Strs("config_keys", settings.Keys()).
		Msg("Configuration resolved")

	db, err := database.New(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return db, cfg, nil
}

// prepare creates the schema and, when enabled, the sample data
func prepare(db *database.Manager, seed bool) error {
	if err := db.CreateTables(); err != nil {
		return err
	}
	if !seed {
		return nil
	}
	return db.PopulateData()
}

func runInit(cmd *cobra.Command, args []string) error {
	db, _, err := setup()
	if err != nil {
		return err
	}
	if err := prepare(db, true); err != nil {
		return err
	}

	log.Info().Str("database", db.Path()).Msg("Catalog initialized")
	return nil
}

func runConsole(cmd *cobra.Command, args []string) error {
	db, cfg, err := setup()
	if err != nil {
		return err
	}

	// A failed schema or seed step is reported but the menu still starts
	if err := prepare(db, cfg.Seed); err != nil {
		log.Error().Err(err).Msg("Failed to prepare catalog")
	} else {
		log.Info().Str("database", db.Path()).Bool("seeded", cfg.Seed).Msg("Catalog ready")
	}

	return console.New(db, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
}
