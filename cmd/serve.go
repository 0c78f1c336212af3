package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickcode/internal/httpapi"
	"github.com/abhisek/quickcode/internal/lessons"
	"github.com/abhisek/quickcode/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the quiz session over a JSON HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Serve.Addr = addr
		}

		log, err := logger.New(logger.Options{Level: cfg.Log.Level, Path: cfg.Log.File, JSON: cfg.Log.JSON})
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer log.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		d, err := buildDeps(ctx, cfg, st, log)
		if err != nil {
			return err
		}
		defer d.Close()

		var cards httpapi.Cards
		if d.Lessons != nil {
			cards = d.Lessons
		}
		h := httpapi.NewHandler(d.Controller, cards, log.With("component", "http"))

		srv := &http.Server{
			Addr:              cfg.Serve.Addr,
			Handler:           h.Router(),
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       120 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("server listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	},
}

var _ httpapi.Cards = (*lessons.Service)(nil)

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides QUICKCODE_SERVE_ADDR)")
}
