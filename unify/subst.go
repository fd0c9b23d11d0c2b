// Package unify implements substitution application and most-general-unifier
// computation over first-order terms via the iterated disagreement-set
// method (§4.2 of the specification).
package unify

import "github.com/fol-prover/resolver/term"

// Subst is a finite mapping from variable name to term. Application is
// capture-free because the compilation pipeline guarantees globally unique
// variable names before unification ever runs.
type Subst map[string]term.Term

// Apply recursively replaces each Var(x) in t with σ(x) if defined, leaving
// it unchanged otherwise. It does not iterate to a fixpoint: callers that
// build up σ incrementally apply each fresh single-binding extension to both
// sides immediately, so the accumulated σ passed in here is already
// idempotent by construction (§4.2.1).
func Apply(sigma Subst, t term.Term) term.Term {
	switch tv := t.(type) {
	case term.Var:
		if repl, ok := sigma[tv.Name]; ok {
			return repl
		}
		return tv
	case term.App:
		if len(tv.Args) == 0 {
			return tv
		}
		newArgs := make([]term.Term, len(tv.Args))
		changed := false
		for i, arg := range tv.Args {
			newArgs[i] = Apply(sigma, arg)
			if !term.Equal(newArgs[i], arg) {
				changed = true
			}
		}
		if !changed {
			return tv
		}
		return term.App{Fun: tv.Fun, Args: newArgs}
	default:
		return t
	}
}

// ApplyLiteral applies σ to every argument of a literal's atom, preserving
// polarity and predicate symbol.
func ApplyLiteral(sigma Subst, lit term.Literal) term.Literal {
	return term.NewLiteral(lit.Polarity, ApplyAtom(sigma, lit.Atom))
}

// ApplyAtom applies σ to every argument of a predicate atom.
func ApplyAtom(sigma Subst, atom term.App) term.App {
	applied := Apply(sigma, atom)
	return applied.(term.App)
}

// Extend returns a copy of sigma with an additional binding; sigma is never
// mutated in place so callers may keep using the original.
func (sigma Subst) Extend(v string, t term.Term) Subst {
	out := make(Subst, len(sigma)+1)
	for k, val := range sigma {
		out[k] = val
	}
	out[v] = t
	return out
}

// Merge returns a copy of sigma with every binding of other added on top
// (other's bindings take precedence on key collision, though MGU never
// produces colliding keys: each variable it binds has already been
// eliminated from both terms before the next binding is chosen).
func (sigma Subst) Merge(other Subst) Subst {
	out := make(Subst, len(sigma)+len(other))
	for k, v := range sigma {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}
