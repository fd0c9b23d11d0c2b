// Package solver runs the compile-then-resolve pipeline over a batch of
// formula sets under a shared wall-clock budget, isolating each set's
// failures from the others (§4.5).
package solver

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/fol-prover/resolver/compiler"
	"github.com/fol-prover/resolver/resolve"
	"github.com/fol-prover/resolver/unify"
)

// Options configures a FindInconsistent run. The zero value is usable and
// matches the library defaults documented in §4.5; Config (package config)
// is how cmd/fol-prover populates one from flags.
type Options struct {
	// Workers bounds how many sets are compiled/resolved concurrently.
	// <= 0 means runtime.NumCPU().
	Workers int
	// CacheSize bounds each job's unify.Cache. <= 0 disables memoization.
	CacheSize int
	// Logger receives one structured record per job and per skipped set.
	// A nil Logger falls back to slog.Default().
	Logger *slog.Logger
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// FindInconsistent reports, for each formula set in sets, whether that set
// is inconsistent (refutable): the ascending indices of the inconsistent
// sets are returned. budgetSeconds is a total wall-clock budget shared
// equally across all sets (§4.5); a set that cannot be proved inconsistent
// within its share — because it compiles but saturates, because it fails to
// compile, or because its worker panics — is simply absent from the result,
// per the three non-propagating error kinds of §7.
func FindInconsistent(sets [][]string, budgetSeconds float64) []int {
	return Run(context.Background(), sets, budgetSeconds, Options{})
}

// Run is FindInconsistent with an explicit parent context and Options. The
// parent context bounds the whole batch in addition to each job's own
// per-set share of budgetSeconds; cancelling it aborts every in-flight job.
func Run(ctx context.Context, sets [][]string, budgetSeconds float64, opts Options) []int {
	if len(sets) == 0 {
		return nil
	}
	perSet := budgetSeconds / float64(len(sets))
	if perSet <= 0 {
		perSet = 0
	}

	logger := opts.logger()
	sem := make(chan struct{}, opts.workers())
	results := make([]bool, len(sets))
	var wg sync.WaitGroup

	for i, set := range sets {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, set []string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = runJob(ctx, i, set, perSet, opts, logger)
		}(i, set)
	}
	wg.Wait()

	var out []int
	for i, inconsistent := range results {
		if inconsistent {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}

// runJob compiles and saturates a single formula set, recovering from any
// panic in either stage and treating it as "not proved inconsistent" (§7
// error kind 3, internal invariant violation).
func runJob(ctx context.Context, index int, set []string, budget float64, opts Options, logger *slog.Logger) (inconsistent bool) {
	start := time.Now()
	jobLogger := logger.With("job_index", index)
	defer func() {
		if r := recover(); r != nil {
			jobLogger.Error("job panicked", "panic", fmt.Sprint(r))
			inconsistent = false
		}
		jobLogger.Info("job finished",
			"elapsed_ms", time.Since(start).Milliseconds(),
			"inconsistent", inconsistent,
		)
	}()

	formulas, err := parseAll(set)
	if err != nil {
		jobLogger.Warn("job skipped: parse error", "error", err.Error())
		return false
	}

	clauses, err := compiler.CompileAll(formulas)
	if err != nil {
		jobLogger.Warn("job skipped: compile error", "error", err.Error())
		return false
	}
	jobLogger.Debug("job compiled", "clause_count", clauses.Len())

	jobCtx := ctx
	var cancel context.CancelFunc
	if budget > 0 {
		jobCtx, cancel = context.WithTimeout(ctx, time.Duration(budget*float64(time.Second)))
		defer cancel()
	}

	cache := unify.NewCache(opts.CacheSize)
	derived, err := resolve.Saturate(jobCtx, clauses, cache, jobLogger)
	if err != nil {
		jobLogger.Warn("job skipped: budget exhausted", "error", err.Error())
		return false
	}
	return derived
}
