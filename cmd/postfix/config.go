package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/zephyrtronium/postfix/internal/env"
)

// AppConfig is the command's configuration. Environment variables, possibly
// from a .env file, give defaults; flags override them.
type AppConfig struct {
	ENV      string
	Sep      string
	LogLevel slog.Level

	In    string
	Batch string
	Lines bool
	Strip bool
	Echo  bool
	Args  []string
}

// NewAppConfig reads defaults from the environment.
func NewAppConfig() *AppConfig {
	cfg := &AppConfig{ENV: os.Getenv("ENV")}
	if err := env.LoadDotEnv(cfg.ENV, ".env"); err != nil {
		slog.Debug("Failed to load .env, continuing with existing environment variables", "error", err)
	}
	cfg.Sep = env.String("POSTFIX_SEPARATOR", " ")
	cfg.LogLevel = env.Level("POSTFIX_LOG_LEVEL", slog.LevelInfo)
	return cfg
}

// ParseFlags applies command-line flags from args over the configuration.
func (cfg *AppConfig) ParseFlags(name string, args []string) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.In, "in", "", "input file (default stdin if no args given)")
	fs.StringVar(&cfg.Batch, "batch", "", "YAML batch file of named expressions to convert and check")
	fs.StringVar(&cfg.Sep, "sep", cfg.Sep, "separator between output tokens (env POSTFIX_SEPARATOR)")
	fs.TextVar(&cfg.LogLevel, "log", cfg.LogLevel, "log level (env POSTFIX_LOG_LEVEL)")
	fs.BoolVar(&cfg.Lines, "n", false, "convert separate input lines as separate expressions")
	fs.BoolVar(&cfg.Strip, "strip", true, "remove whitespace from expressions before converting")
	fs.BoolVar(&cfg.Echo, "echo", false, "print each infix expression before its conversion")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.Args = fs.Args()
	return nil
}
