package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickcode/internal/app"
	"github.com/abhisek/quickcode/internal/logger"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	st, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	// The TUI owns the terminal, so logs always go to a file.
	logPath := cfg.Log.File
	if logPath == "" {
		logPath = filepath.Join(filepath.Dir(cfg.DBPath), "quickcode.log")
	}
	log, err := logger.New(logger.Options{Level: cfg.Log.Level, Path: logPath, JSON: cfg.Log.JSON})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	d, err := buildDeps(ctx, cfg, st, log)
	if err != nil {
		return err
	}
	defer d.Close()

	skipWelcome, _ := cmd.Flags().GetBool("skip-welcome")
	return app.Run(app.Options{
		Controller:  d.Controller,
		Lessons:     d.Lessons,
		SkipWelcome: skipWelcome,
	})
}
