package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickcode/internal/config"
	"github.com/abhisek/quickcode/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quickcode",
	Short: "Bite-sized Python code quizzes",
	Long:  "QuickCode: a terminal app that teaches Python through eight-challenge quiz sessions with an AI sidekick.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUICKCODE_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides QUICKCODE_CONFIG env var)")
	rootCmd.Flags().Bool("skip-welcome", false, "Start the quiz without the splash screen")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads configuration and applies the --db flag on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	return *cfg, nil
}

// resolveDBPath returns the configured database path, then the default
// XDG path. The parent directory is created.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore loads configuration and opens the SQLite store.
func openStore(cmd *cobra.Command) (*store.Store, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, cfg, err
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, cfg, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, cfg, fmt.Errorf("open database: %w", err)
	}
	cfg.DBPath = dbPath
	return s, cfg, nil
}
