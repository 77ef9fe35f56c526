// Package config reads process configuration from the environment and an
// optional .env file, and sets up the global zerolog logger.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvSettings = "TETRIS_SETTINGS"
	EnvRankings = "TETRIS_RANKINGS_DB"
	EnvPlayer   = "TETRIS_PLAYER"
	EnvLogLevel = "LOG_LEVEL"
	EnvLogFile  = "TETRIS_LOG_FILE"
)

type Config struct {
	SettingsPath string
	RankingsDB   string
	Player       string
	LogLevel     zerolog.Level
	LogFile      string
}

// Load reads the given .env files (".env" when none are named) and then the
// environment. Missing files are ignored and variables already set in the
// environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	level, err := zerolog.ParseLevel(getEnv(EnvLogLevel, "info"))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}

	return Config{
		SettingsPath: getEnv(EnvSettings, "settings.yaml"),
		RankingsDB:   getEnv(EnvRankings, filepath.Join("data", "rankings.db")),
		Player:       getEnv(EnvPlayer, "PLAYER"),
		LogLevel:     level,
		LogFile:      os.Getenv(EnvLogFile),
	}, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// SetupLogging points the global logger at LogFile, or at a console writer on
// fallback when no file is configured. The returned closer releases the file.
func (c Config) SetupLogging(fallback io.Writer) (io.Closer, error) {
	zerolog.SetGlobalLevel(c.LogLevel)

	if c.LogFile == "" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: fallback}).With().Timestamp().Logger()
		return io.NopCloser(nil), nil
	}

	if dir := filepath.Dir(c.LogFile); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}
