package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/zephyrtronium/postfix"
	"github.com/zephyrtronium/postfix/internal/batch"
)

func main() {
	cfg := NewAppConfig()
	if err := cfg.ParseFlags(os.Args[0], os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))
	os.Exit(run(cfg, os.Stdin, os.Stdout))
}

// run converts the configured inputs and returns the exit code.
func run(cfg *AppConfig, stdin io.Reader, stdout io.Writer) int {
	if cfg.Batch != "" {
		return runBatch(cfg, stdout)
	}

	srcs, err := inputs(cfg, stdin)
	if err != nil {
		slog.Error("Failed to read input", "error", err)
		return 1
	}
	code := 0
	for _, src := range srcs {
		if cfg.Strip {
			src = strip(src)
		}
		if cfg.Lines && src == "" {
			continue
		}
		if cfg.Echo {
			fmt.Fprintf(stdout, "%s : ", src)
		}
		toks, err := postfix.ConvertString(src)
		if err != nil {
			fmt.Fprintln(stdout, err)
			slog.Debug("Conversion failed", "expression", src, "error", err)
			code = 1
			continue
		}
		fmt.Fprintln(stdout, postfix.Join(toks, cfg.Sep))
	}
	return code
}

func runBatch(cfg *AppConfig, stdout io.Writer) int {
	f, err := os.Open(cfg.Batch)
	if err != nil {
		slog.Error("Failed to open batch file", "path", cfg.Batch, "error", err)
		return 1
	}
	defer f.Close()
	b, err := batch.NewLoader(f).Load(true)
	if err != nil {
		slog.Error("Failed to load batch file", "path", cfg.Batch, "error", err)
		return 1
	}
	slog.Info("Loaded batch", "path", cfg.Batch, "cases", len(b.Cases))

	failed := 0
	for _, r := range batch.Run(b, cfg.Sep) {
		switch {
		case r.Err != nil:
			fmt.Fprintf(stdout, "FAIL %s: %v\n", r.Case.Name, r.Err)
		case r.Mismatch:
			fmt.Fprintf(stdout, "FAIL %s: got %s, want %s\n", r.Case.Name, r.Postfix, r.Case.Want)
		default:
			fmt.Fprintf(stdout, "ok   %s: %s\n", r.Case.Name, r.Postfix)
		}
		if r.Failed() {
			failed++
		}
	}
	if failed > 0 {
		slog.Warn("Batch had failures", "failed", failed, "cases", len(b.Cases))
		return 1
	}
	return 0
}

// inputs gathers the expressions to convert. An input file or stdin is one
// expression, or one per line with -n; each argument is one expression.
func inputs(cfg *AppConfig, stdin io.Reader) ([]string, error) {
	var ins []io.Reader
	switch {
	case cfg.In != "" && cfg.In != "-":
		f, err := os.Open(cfg.In)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		ins = append(ins, f)
	case cfg.In == "-", len(cfg.Args) == 0:
		ins = append(ins, stdin)
	}

	var srcs []string
	for _, in := range ins {
		if !cfg.Lines {
			b, err := io.ReadAll(in)
			if err != nil {
				return nil, err
			}
			srcs = append(srcs, strings.TrimRightFunc(string(b), unicode.IsSpace))
			continue
		}
		scan := bufio.NewScanner(in)
		for scan.Scan() {
			srcs = append(srcs, scan.Text())
		}
		if err := scan.Err(); err != nil {
			return nil, err
		}
	}
	return append(srcs, cfg.Args...), nil
}

// strip removes all whitespace from s.
func strip(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), "")
}
