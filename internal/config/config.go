// Package config resolves application configuration from a .env file, an
// optional YAML file and QUICKCODE_* environment variables, in increasing
// order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/quickcode/internal/llm"
)

// Progress backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds all application configuration.
type Config struct {
	// DBPath is the SQLite database file. Empty means the default XDG path.
	DBPath string `yaml:"db_path"`

	Progress ProgressConfig `yaml:"progress"`
	Log      LogConfig      `yaml:"log"`
	Serve    ServeConfig    `yaml:"serve"`
	LLM      llm.Config     `yaml:"llm"`

	// Offline disables every LLM call even when a provider is configured.
	Offline bool `yaml:"offline"`
}

// ProgressConfig selects where the learner's progress record lives.
type ProgressConfig struct {
	Backend   string `yaml:"backend"`
	RedisAddr string `yaml:"redis_addr"`
}

// LogConfig configures the application logger.
type LogConfig struct {
	Level string `yaml:"level"`
	// File is where the TUI writes logs. Empty means next to the database.
	File string `yaml:"file"`
	JSON bool   `yaml:"json"`
}

// ServeConfig configures the HTTP API.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Progress: ProgressConfig{Backend: BackendSQLite},
		Log:      LogConfig{Level: "info"},
		Serve:    ServeConfig{Addr: "127.0.0.1:8080"},
		LLM:      llm.DefaultConfig(),
	}
}

// Load resolves the configuration. path names a YAML file; when empty,
// QUICKCODE_CONFIG is consulted. A missing .env file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv("QUICKCODE_CONFIG")
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config file: %w", err)
		}
		defer f.Close()
		if err := decodeYAML(f, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	if !cfg.Offline {
		llm.Discover(&cfg.LLM)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// decodeYAML overlays r onto cfg. Unknown keys are rejected so that typos
// do not silently fall back to defaults.
func decodeYAML(r io.Reader, cfg *Config) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(cfg)
}

func applyEnv(cfg *Config) {
	cfg.DBPath = getEnv("QUICKCODE_DB", cfg.DBPath)
	cfg.Progress.Backend = getEnv("QUICKCODE_PROGRESS_BACKEND", cfg.Progress.Backend)
	cfg.Progress.RedisAddr = getEnv("QUICKCODE_REDIS_ADDR", cfg.Progress.RedisAddr)
	cfg.Log.Level = getEnv("QUICKCODE_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.File = getEnv("QUICKCODE_LOG_FILE", cfg.Log.File)
	cfg.Log.JSON = getEnvBool("QUICKCODE_LOG_JSON", cfg.Log.JSON)
	cfg.Serve.Addr = getEnv("QUICKCODE_SERVE_ADDR", cfg.Serve.Addr)
	cfg.Offline = getEnvBool("QUICKCODE_OFFLINE", cfg.Offline)
	llm.ApplyEnv(&cfg.LLM)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Progress.Backend {
	case BackendSQLite, BackendMemory:
	case BackendRedis:
		if c.Progress.RedisAddr == "" {
			return fmt.Errorf("QUICKCODE_REDIS_ADDR is required for the redis progress backend")
		}
	default:
		return fmt.Errorf("unknown progress backend: %q", c.Progress.Backend)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.Serve.Addr == "" {
		return fmt.Errorf("QUICKCODE_SERVE_ADDR cannot be empty")
	}
	if c.LLMEnabled() {
		if err := c.LLM.Validate(); err != nil {
			return fmt.Errorf("llm: %w", err)
		}
	}
	return nil
}

// LLMEnabled reports whether challenges and explanations come from an LLM.
// Without a provider the app runs on its built-in challenges only.
func (c *Config) LLMEnabled() bool {
	return !c.Offline && c.LLM.Provider != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return b
}
