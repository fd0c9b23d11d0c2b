package compiler

import "github.com/fol-prover/resolver/ast"

// quantBinder is one stripped quantifier, remembering its kind and bound
// variable so it can be rebuilt in the same order.
type quantBinder struct {
	existential bool
	v           string
}

// prenex floats every quantifier in f up to a leading block, preserving
// relative order (§4.3.3). Standardize having already made every bound name
// globally unique, this float-up never captures a free occurrence.
func prenex(f ast.Formula) ast.Formula {
	switch v := f.(type) {
	case ast.Forall:
		return ast.Forall{Var: v.Var, Formula: prenex(v.Formula)}
	case ast.Exists:
		return ast.Exists{Var: v.Var, Formula: prenex(v.Formula)}
	case ast.And:
		return floatUp(prenex(v.Left), prenex(v.Right), func(l, r ast.Formula) ast.Formula {
			return ast.And{Left: l, Right: r}
		})
	case ast.Or:
		return floatUp(prenex(v.Left), prenex(v.Right), func(l, r ast.Formula) ast.Formula {
			return ast.Or{Left: l, Right: r}
		})
	default: // Not, Pred, Contradiction: no quantifiers to float (NNF already pushed Not to atoms)
		return f
	}
}

// floatUp strips the leading quantifier blocks off left and right, rebuilds
// the connective over the bare matrices, and rewraps with the combined
// prefix — left's quantifiers outermost, then right's, preserving the order
// each side had.
func floatUp(left, right ast.Formula, combine func(l, r ast.Formula) ast.Formula) ast.Formula {
	leftQs, leftMatrix := stripQuantifiers(left)
	rightQs, rightMatrix := stripQuantifiers(right)
	body := combine(leftMatrix, rightMatrix)
	prefix := append(leftQs, rightQs...)
	return wrapQuantifiers(prefix, body)
}

func stripQuantifiers(f ast.Formula) ([]quantBinder, ast.Formula) {
	var qs []quantBinder
	cur := f
	for {
		switch v := cur.(type) {
		case ast.Forall:
			qs = append(qs, quantBinder{existential: false, v: v.Var})
			cur = v.Formula
		case ast.Exists:
			qs = append(qs, quantBinder{existential: true, v: v.Var})
			cur = v.Formula
		default:
			return qs, cur
		}
	}
}

func wrapQuantifiers(qs []quantBinder, matrix ast.Formula) ast.Formula {
	result := matrix
	for i := len(qs) - 1; i >= 0; i-- {
		q := qs[i]
		if q.existential {
			result = ast.Exists{Var: q.v, Formula: result}
		} else {
			result = ast.Forall{Var: q.v, Formula: result}
		}
	}
	return result
}
