package compiler

import "github.com/fol-prover/resolver/ast"

// normalize rewrites f into negation-normal form: Implies is eliminated and
// Not appears only directly around predicate atoms (§4.3.1). It is
// implemented as the mutually recursive pos/neg pair from the specification's
// table.
func normalize(f ast.Formula) ast.Formula {
	return pos(f)
}

// pos rewrites f under an even (positive) number of enclosing negations.
func pos(f ast.Formula) ast.Formula {
	switch v := f.(type) {
	case ast.Forall:
		return ast.Forall{Var: v.Var, Formula: pos(v.Formula)}
	case ast.Exists:
		return ast.Exists{Var: v.Var, Formula: pos(v.Formula)}
	case ast.Implies:
		return ast.Or{Left: neg(v.Left), Right: pos(v.Right)}
	case ast.And:
		return ast.And{Left: pos(v.Left), Right: pos(v.Right)}
	case ast.Or:
		return ast.Or{Left: pos(v.Left), Right: pos(v.Right)}
	case ast.Not:
		return neg(v.Formula)
	case ast.Pred, ast.Contradiction:
		return f
	default:
		return f
	}
}

// neg rewrites f under an odd (negative) number of enclosing negations.
func neg(f ast.Formula) ast.Formula {
	switch v := f.(type) {
	case ast.Forall:
		return ast.Exists{Var: v.Var, Formula: neg(v.Formula)}
	case ast.Exists:
		return ast.Forall{Var: v.Var, Formula: neg(v.Formula)}
	case ast.Implies:
		return ast.And{Left: pos(v.Left), Right: neg(v.Right)}
	case ast.And:
		return ast.Or{Left: neg(v.Left), Right: neg(v.Right)}
	case ast.Or:
		return ast.And{Left: neg(v.Left), Right: neg(v.Right)}
	case ast.Not:
		return pos(v.Formula)
	case ast.Pred:
		return ast.Not{Formula: v}
	case ast.Contradiction:
		return ast.Not{Formula: v}
	default:
		return ast.Not{Formula: f}
	}
}
