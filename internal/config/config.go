// Package config reads the runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvFile     = "CARET_ENV_FILE"
	EnvBackend  = "CARET_BACKEND"
	EnvTTY      = "CARET_TTY"
	EnvLogFile  = "CARET_LOG_FILE"
	EnvLogLevel = "CARET_LOG_LEVEL"

	DefaultBackend  = "ansi"
	DefaultTTY      = "/dev/tty"
	DefaultLogLevel = "info"
)

var (
	backends  = []string{"ansi", "tcell", "curses"}
	logLevels = []string{"debug", "info", "warn", "error"}
)

type Config struct {
	Backend  string
	TTY      string
	LogFile  string // empty disables logging
	LogLevel string
}

// Load builds a Config from the environment. If CARET_ENV_FILE names a dotenv file, its values
// are loaded first; variables already set in the environment win.
func Load() (Config, error) {
	if path := os.Getenv(EnvFile); path != "" {
		if err := godotenv.Load(path); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvFile, err)
		}
	}

	cfg := Config{
		Backend:  strings.ToLower(getenv(EnvBackend, DefaultBackend)),
		TTY:      getenv(EnvTTY, DefaultTTY),
		LogFile:  os.Getenv(EnvLogFile),
		LogLevel: strings.ToLower(getenv(EnvLogLevel, DefaultLogLevel)),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !oneOf(c.Backend, backends) {
		return fmt.Errorf("%s: unknown backend %q (want one of %s)", EnvBackend, c.Backend, strings.Join(backends, ", "))
	}
	if !oneOf(c.LogLevel, logLevels) {
		return fmt.Errorf("%s: unknown level %q (want one of %s)", EnvLogLevel, c.LogLevel, strings.Join(logLevels, ", "))
	}
	if c.TTY == "" {
		return fmt.Errorf("%s: empty device path", EnvTTY)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func oneOf(s string, set []string) bool {
	for _, v := range set {
		if s == v {
			return true
		}
	}
	return false
}
