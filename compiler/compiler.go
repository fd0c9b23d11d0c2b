// Package compiler lowers a parsed FOL sentence (package ast) to a set of CNF
// clauses (package term) through six ordered passes: normalize, standardize,
// prenex, skolemize, drop_universals, to_cnf (§4.3). Each pass is a pure tree
// transformation.
package compiler

import (
	"errors"

	"github.com/fol-prover/resolver/ast"
	"github.com/fol-prover/resolver/term"
)

// ErrMalformedFormula is returned when a formula violates an invariant the
// pipeline depends on (e.g. Not wrapping something other than a predicate
// atom after normalization) — an internal invariant violation per §7 kind 3,
// surfaced here so callers can treat it as a compile failure for that
// formula rather than letting it propagate as a panic.
var ErrMalformedFormula = errors.New("compiler: malformed formula")

// Compile lowers a single formula to a clause set. Per §3's Lifecycle, each
// input string gets its own fresh-name counter and standardization context,
// discarded once this call returns.
func Compile(f ast.Formula) (term.Set, error) {
	fresh := term.NewFreshCounter()

	f1 := normalize(f)
	f2 := standardize(f1, fresh)
	f3 := prenex(f2)
	f4 := skolemize(f3, nil, nil)
	matrix, _ := dropUniversals(f4)
	return toCNF(matrix)
}

// CompileAll compiles every formula in fSet and unions the resulting clause
// sets, matching the C5 runner's "union of clause sets" step (§4.5.2). It
// returns an error, without partial results, on the first formula that fails
// to compile — the caller (package solver) treats that as "skip this set"
// per §4.5 step 1 and §7 kind 1.
func CompileAll(fSet []ast.Formula) (term.Set, error) {
	out := term.NewSet()
	for _, f := range fSet {
		clauses, err := Compile(f)
		if err != nil {
			return term.Set{}, err
		}
		out.Merge(clauses)
	}
	return out, nil
}
