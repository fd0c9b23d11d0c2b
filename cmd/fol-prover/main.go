// Command fol-prover reads a batch of first-order clause sets as JSON,
// checks each for inconsistency within a shared time budget, and writes the
// indices of the inconsistent sets back out as JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fol-prover/resolver/batchio"
	"github.com/fol-prover/resolver/config"
	"github.com/fol-prover/resolver/solver"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := config.Default()
	fs := flag.NewFlagSet("fol-prover", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.RegisterFlags(fs)
	inputPath := fs.String("input", "", "path to a batch JSON file; defaults to stdin")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := newLogger(cfg, stderr)

	data, err := readInput(*inputPath, stdin)
	if err != nil {
		logger.Error("reading batch input", "error", err.Error())
		return 1
	}

	batch, err := batchio.ReadBatch(data)
	if err != nil {
		logger.Error("parsing batch document", "error", err.Error())
		return 1
	}
	if batch.BudgetSeconds <= 0 {
		batch.BudgetSeconds = cfg.BudgetSeconds
	}

	indices := solver.Run(context.Background(), batch.Sets, batch.BudgetSeconds, solver.Options{
		Workers:   cfg.Workers,
		CacheSize: cfg.CacheSize,
		Logger:    logger,
	})

	out, err := batchio.WriteResult(batchio.Result{Inconsistent: indices})
	if err != nil {
		logger.Error("encoding result document", "error", err.Error())
		return 1
	}
	fmt.Fprintln(stdout, string(out))
	return 0
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
