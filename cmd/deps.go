package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/quickcode/internal/challengegen"
	"github.com/abhisek/quickcode/internal/config"
	"github.com/abhisek/quickcode/internal/explain"
	"github.com/abhisek/quickcode/internal/lessons"
	"github.com/abhisek/quickcode/internal/llm"
	"github.com/abhisek/quickcode/internal/logger"
	"github.com/abhisek/quickcode/internal/progress"
	"github.com/abhisek/quickcode/internal/session"
	"github.com/abhisek/quickcode/internal/store"
)

// deps is everything a front end needs to run sessions.
type deps struct {
	Controller *session.Controller
	Lessons    *lessons.Service
	closers    []func() error
}

func (d *deps) Close() {
	for _, c := range d.closers {
		_ = c()
	}
}

// buildDeps wires the progress backend, the LLM services and the session
// controller. A missing or broken LLM setup leaves the AI features off.
func buildDeps(ctx context.Context, cfg config.Config, st *store.Store, log *logger.Logger) (*deps, error) {
	d := &deps{}

	progressStore, closer, err := openProgressStore(ctx, cfg, st)
	if err != nil {
		log.Warn("progress backend unavailable, progress will not be saved",
			"backend", cfg.Progress.Backend, "error", err)
		fmt.Fprintln(os.Stderr, "Progress backend unavailable:", err)
		progressStore = progress.NewMemoryStore(nil)
	}
	if closer != nil {
		d.closers = append(d.closers, closer)
	}

	eventRepo := st.EventRepo()
	opts := session.Options{
		Store:  progressStore,
		Events: eventRepo,
		Logger: log.With("component", "session"),
	}

	if cfg.LLMEnabled() {
		provider, err := llm.NewProvider(ctx, cfg.LLM, eventRepo, log.With("component", "llm"))
		if err != nil {
			log.Warn("LLM provider not configured", "error", err)
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
		} else {
			opts.Generator = challengegen.New(provider, challengegen.DefaultConfig())
			opts.Explainer = explain.New(provider, explain.DefaultConfig())
			d.Lessons = lessons.NewService(provider, lessons.DefaultConfig())
			log.Info("LLM provider ready", "provider", cfg.LLM.Provider, "model", provider.ModelID())
		}
	}

	ctrl, err := session.New(ctx, opts)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("create session: %w", err)
	}
	d.Controller = ctrl
	return d, nil
}

// openProgressStore returns the configured progress backend and an optional
// closer for it.
func openProgressStore(ctx context.Context, cfg config.Config, st *store.Store) (progress.Store, func() error, error) {
	switch cfg.Progress.Backend {
	case config.BackendRedis:
		rs, err := progress.NewRedisStore(ctx, cfg.Progress.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		return rs, rs.Close, nil
	case config.BackendMemory:
		return progress.NewMemoryStore(nil), nil, nil
	default:
		return st.ProgressRepo(), nil, nil
	}
}
