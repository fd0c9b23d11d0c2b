package compiler

import (
	"github.com/fol-prover/resolver/ast"
	"github.com/fol-prover/resolver/term"
	"github.com/fol-prover/resolver/unify"
)

// standardize performs alpha-renaming so every bound variable name is
// globally unique (§4.3.2). fresh and an internal seen-name set are shared
// mutable state threaded through the whole walk — deliberately, per §9,
// so that sibling branches never reuse each other's bound names.
func standardize(f ast.Formula, fresh *term.FreshCounter) ast.Formula {
	seen := make(map[string]bool)
	return standardizeWalk(f, unify.Subst{}, seen, fresh)
}

func standardizeWalk(f ast.Formula, sigma unify.Subst, seen map[string]bool, fresh *term.FreshCounter) ast.Formula {
	switch v := f.(type) {
	case ast.Forall:
		name, nextSigma := bindName(v.Var, sigma, seen, fresh)
		return ast.Forall{Var: name, Formula: standardizeWalk(v.Formula, nextSigma, seen, fresh)}
	case ast.Exists:
		name, nextSigma := bindName(v.Var, sigma, seen, fresh)
		return ast.Exists{Var: name, Formula: standardizeWalk(v.Formula, nextSigma, seen, fresh)}
	case ast.And:
		return ast.And{
			Left:  standardizeWalk(v.Left, sigma, seen, fresh),
			Right: standardizeWalk(v.Right, sigma, seen, fresh),
		}
	case ast.Or:
		return ast.Or{
			Left:  standardizeWalk(v.Left, sigma, seen, fresh),
			Right: standardizeWalk(v.Right, sigma, seen, fresh),
		}
	case ast.Not:
		return ast.Not{Formula: standardizeWalk(v.Formula, sigma, seen, fresh)}
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

// bindName decides the (possibly renamed) binder for a quantifier over v,
// extends the substitution, and records v as seen. The returned name is the
// one that should appear in the rebuilt quantifier node.
func bindName(v string, sigma unify.Subst, seen map[string]bool, fresh *term.FreshCounter) (string, unify.Subst) {
	name := v
	if seen[v] {
		name = fresh.Fresh()
	}
	seen[v] = true
	return name, sigma.Extend(v, term.NewVar(name))
}
