package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thcsdongtra/examgen/internal/config"
	"github.com/thcsdongtra/examgen/internal/logger"
	"github.com/thcsdongtra/examgen/internal/store"
)

var (
	appConfig *config.Config
	appLog    *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "examgen",
	Short: "Generate exam dossiers with a generative model",
	Long: "examgen builds a Vietnamese exam dossier (matrix, specification table, " +
		"exam paper and answer key) for a subject, grade and scope with one call " +
		"to a hosted generative model.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (YAML, JSON or TOML)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EXAMGEN_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads .env and configuration, then builds the logger shared by all
// subcommands.
func setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}

	appConfig = cfg
	appLog = logger.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(appLog)
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then store.path from config, then EXAMGEN_DB and the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if appConfig != nil && appConfig.Store.Path != "" {
		return appConfig.Store.Path, store.EnsureDir(appConfig.Store.Path)
	}
	return store.DefaultDBPath()
}

// openStore opens the audit database.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
