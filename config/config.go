// Package config loads the settings of the solitaire command from the
// environment, after reading an optional .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
)

// Config of the solitaire command. Flags override these values.
type Config struct {
	Addr      string
	Seed      string
	LogLevel  string
	PublicURL string
}

const (
	EnvAddr      = "SOLITAIRE_ADDR"
	EnvSeed      = "SOLITAIRE_SEED"
	EnvLogLevel  = "SOLITAIRE_LOG_LEVEL"
	EnvPublicURL = "SOLITAIRE_PUBLIC_URL"
)

// Load reads files (".env" when none is given) into the environment and
// builds a Config from it. Missing files are ignored.
func Load(files ...string) Config {
	_ = godotenv.Load(files...)
	return Config{
		Addr:      getenv(EnvAddr, ":8080"),
		Seed:      os.Getenv(EnvSeed),
		LogLevel:  getenv(EnvLogLevel, "info"),
		PublicURL: os.Getenv(EnvPublicURL),
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// SeedBytes returns the configured seed, or nil for a random game.
func (c Config) SeedBytes() []byte {
	if c.Seed == "" {
		return nil
	}
	return []byte(c.Seed)
}

// PtermLevel maps the configured level name to a pterm log level.
func (c Config) PtermLevel() (pterm.LogLevel, error) {
	switch strings.ToLower(c.LogLevel) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info", "":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	}
	return pterm.LogLevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
}

// Logger returns a slog logger writing through pterm.
func (c Config) Logger() (*slog.Logger, error) {
	level, err := c.PtermLevel()
	if err != nil {
		return nil, err
	}
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level))
	return slog.New(handler), nil
}
