// Package env loads configuration from .env files and the environment.
package env

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file. The ENV_PATH
// environment variable overrides defaultPath. A missing or unreadable file is
// an error only when env is "local" or empty. Variables already set in the
// environment are not overwritten.
func LoadDotEnv(env string, defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		slog.Debug("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		envPath = defaultPath
	}

	if err := godotenv.Load(envPath); err != nil {
		if env == "local" || env == "" {
			slog.Debug("Failed to load environment variables in local mode", "path", envPath, "error", err)
			return err
		}
		slog.Debug("Skipping .env", "path", envPath)
	}
	return nil
}

// String returns the value of the environment variable key, or def if it is
// unset or blank.
func String(key, def string) string {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// Level parses the environment variable key as a log level name such as
// "debug" or "WARN". Unset or unparseable values give def.
func Level(key string, def slog.Level) slog.Level {
	v := String(key, "")
	if v == "" {
		return def
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		slog.Warn("Invalid log level, using default", "key", key, "value", v, "default", def)
		return def
	}
	return l
}
