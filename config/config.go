// Package config holds the small set of scalar knobs the CLI driver exposes
// as flags (§4.9). A handful of scalars doesn't warrant a config-file
// library — see DESIGN.md for why viper/koanf-style layered configuration
// is not pulled in here.
package config

import (
	"flag"
	"runtime"
)

// Config is the fully-resolved set of run-time knobs for a fol-prover
// invocation.
type Config struct {
	// BudgetSeconds is the total wall-clock budget shared across all sets
	// in a batch.
	BudgetSeconds float64
	// Workers bounds how many sets are compiled/resolved concurrently.
	Workers int
	// CacheSize bounds each job's unify.Cache entry count.
	CacheSize int
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string
	// LogFormat is one of "text", "json".
	LogFormat string
}

// Default returns the configuration used when no flags are supplied.
func Default() Config {
	return Config{
		BudgetSeconds: 5.0,
		Workers:       runtime.NumCPU(),
		CacheSize:     4096,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// RegisterFlags binds fs's flags to cfg's fields, seeding each flag's
// default from cfg's current value. Call Parse on fs afterward; cfg is
// mutated in place once Parse returns.
func (cfg *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Float64Var(&cfg.BudgetSeconds, "budget", cfg.BudgetSeconds, "total wall-clock budget in seconds, shared across all sets in the batch")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "maximum number of sets resolved concurrently")
	fs.IntVar(&cfg.CacheSize, "cache-size", cfg.CacheSize, "per-job unify MGU cache capacity; <= 0 disables memoization")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "one of debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "one of text, json")
}
