// Package resolve implements saturation-based first-order resolution: given
// a clause set, it searches for a derivation of the empty clause under a
// deadline (§4.4).
package resolve

import (
	"strconv"

	"github.com/fol-prover/resolver/term"
	"github.com/fol-prover/resolver/unify"
)

// Resolvent searches left-to-right for the first pair of opposite-polarity
// literals (one from l, one from r) whose atoms unify, returning the
// resolvent clause and the MGU that produced it (§4.4.1). It reports
// ok=false if no resolvable pair exists. An empty resolvent (ok=true,
// clause.IsEmpty()) signals a derivation of ⊥.
//
// Variable disjointness between l and r is the caller's responsibility —
// see RenameApart — Resolvent itself assumes the two clauses already use
// disjoint variable names.
func Resolvent(l, r term.Clause, cache *unify.Cache) (term.Clause, unify.Subst, bool) {
	lLits := l.Literals()
	rLits := r.Literals()
	for i, lLit := range lLits {
		for j, rLit := range rLits {
			if lLit.Polarity == rLit.Polarity {
				continue
			}
			sigma, ok := cache.MGU(lLit.Atom, rLit.Atom)
			if !ok {
				continue
			}
			return buildResolvent(lLits, i, rLits, j, sigma), sigma, true
		}
	}
	return term.Clause{}, nil, false
}

func buildResolvent(lLits []term.Literal, skipL int, rLits []term.Literal, skipR int, sigma unify.Subst) term.Clause {
	out := make([]term.Literal, 0, len(lLits)+len(rLits)-2)
	for i, lit := range lLits {
		if i == skipL {
			continue
		}
		out = append(out, unify.ApplyLiteral(sigma, lit))
	}
	for j, lit := range rLits {
		if j == skipR {
			continue
		}
		out = append(out, unify.ApplyLiteral(sigma, lit))
	}
	return term.NewClause(out...)
}

// RenameApart returns a copy of c with every variable renamed to a fresh
// name carrying the given suffix, so that resolving c against another clause
// (including another copy of itself) can never conflate the two parents'
// variables. This closes the soundness gap noted in §9: the published
// resolution algorithm renames variables apart before resolving, which the
// distilled source omits, relying solely on standardize's global uniqueness
// — insufficient when a clause is reused on one derivation branch.
func RenameApart(c term.Clause, suffix string) term.Clause {
	sigma := unify.Subst{}
	for _, lit := range c.Literals() {
		collectVars(lit.Atom, sigma, suffix)
	}
	out := make([]term.Literal, 0, c.Len())
	for _, lit := range c.Literals() {
		out = append(out, unify.ApplyLiteral(sigma, lit))
	}
	return term.NewClause(out...)
}

// collectVars populates sigma with a fresh-suffixed rename for every
// variable occurring in t that is not already mapped.
func collectVars(t term.Term, sigma unify.Subst, suffix string) {
	switch v := t.(type) {
	case term.Var:
		if _, ok := sigma[v.Name]; !ok {
			sigma[v.Name] = term.NewVar(v.Name + suffix)
		}
	case term.App:
		for _, arg := range v.Args {
			collectVars(arg, sigma, suffix)
		}
	}
}

// renameSuffix builds a deterministic, collision-free suffix for the nth
// rename-apart operation within a job.
func renameSuffix(n int) string {
	return "#" + strconv.Itoa(n)
}
