// Package config loads simulator settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/solitaire/engine"
)

// Config holds simulator settings.
type Config struct {
	Variant   engine.Variant
	Games     int
	Seed      uint64
	Workers   int
	MaxMoves  int
	LogLevel  logrus.Level
	LogFormat string // "text" or "json"
	RedisURL  string // empty keeps stats in memory
}

// Load reads .env files (missing files are ignored) and then the process
// environment. Variables already set in the environment take precedence.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var (
		cfg Config
		err error
	)
	if cfg.Variant, err = engine.VariantByName(envOr("SOLITAIRE_VARIANT", "klondike")); err != nil {
		return Config{}, err
	}
	if cfg.Games, err = envInt("SOLITAIRE_GAMES", 100); err != nil {
		return Config{}, err
	}
	if cfg.Games < 1 {
		return Config{}, fmt.Errorf("SOLITAIRE_GAMES must be positive, got %d", cfg.Games)
	}
	seed := envOr("SOLITAIRE_SEED", "1")
	if cfg.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
		return Config{}, fmt.Errorf("SOLITAIRE_SEED: %w", err)
	}
	if cfg.Workers, err = envInt("SOLITAIRE_WORKERS", runtime.NumCPU()); err != nil {
		return Config{}, err
	}
	if cfg.Workers < 1 {
		return Config{}, fmt.Errorf("SOLITAIRE_WORKERS must be positive, got %d", cfg.Workers)
	}
	if cfg.MaxMoves, err = envInt("SOLITAIRE_MAX_MOVES", 2000); err != nil {
		return Config{}, err
	}
	if cfg.LogLevel, err = logrus.ParseLevel(envOr("LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg.LogFormat = strings.ToLower(envOr("LOG_FORMAT", "text"))
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}
	cfg.RedisURL = os.Getenv("REDIS_URL")
	return cfg, nil
}

// NewLogger builds a logger with the configured level and format.
func (c Config) NewLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
