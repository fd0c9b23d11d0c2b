package compiler

import (
	"github.com/fol-prover/resolver/ast"
	"github.com/fol-prover/resolver/term"
	"github.com/fol-prover/resolver/unify"
)

// skolemize replaces every existentially quantified variable with a Skolem
// function of the enclosing universals, dropping the existential quantifier
// entirely (§4.3.4). It carries the ordered tuple of enclosing universals and
// the accumulated existential-to-Skolem-term substitution top-down.
func skolemize(f ast.Formula, universals []term.Var, sigma unify.Subst) ast.Formula {
	switch v := f.(type) {
	case ast.Forall:
		nextUniversals := appendUniversal(universals, v.Var)
		return ast.Forall{Var: v.Var, Formula: skolemize(v.Formula, nextUniversals, sigma)}
	case ast.Exists:
		skolemTerm := term.NewApp(v.Var, universalsAsTerms(universals)...)
		nextSigma := sigma.Extend(v.Var, skolemTerm)
		return skolemize(v.Formula, universals, nextSigma)
	case ast.And:
		return ast.And{
			Left:  skolemize(v.Left, universals, sigma),
			Right: skolemize(v.Right, universals, sigma),
		}
	case ast.Or:
		return ast.Or{
			Left:  skolemize(v.Left, universals, sigma),
			Right: skolemize(v.Right, universals, sigma),
		}
	case ast.Not:
		return ast.Not{Formula: skolemize(v.Formula, universals, sigma)}
	case ast.Pred:
		newArgs := make([]term.Term, len(v.Args))
		for i, arg := range v.Args {
			newArgs[i] = unify.Apply(sigma, arg)
		}
		return ast.Pred{Sym: v.Sym, Args: newArgs}
	case ast.Contradiction:
		return v
	default:
		return f
	}
}

func appendUniversal(universals []term.Var, name string) []term.Var {
	for _, u := range universals {
		if u.Name == name {
			return universals
		}
	}
	out := make([]term.Var, len(universals), len(universals)+1)
	copy(out, universals)
	return append(out, term.NewVar(name))
}

func universalsAsTerms(universals []term.Var) []term.Term {
	out := make([]term.Term, len(universals))
	for i, u := range universals {
		out[i] = u
	}
	return out
}
