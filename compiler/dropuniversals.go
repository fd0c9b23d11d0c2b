package compiler

import "github.com/fol-prover/resolver/ast"

// dropUniversals strips the leading block of Forall quantifiers left by
// prenex+skolemize, returning the quantifier-free matrix and the stripped
// variable names. The names are recorded only for documentation purposes
// (§4.3.5) — resolution treats every free variable in a clause as implicitly
// universal regardless.
func dropUniversals(f ast.Formula) (ast.Formula, []string) {
	var universals []string
	cur := f
	for {
		forall, ok := cur.(ast.Forall)
		if !ok {
			return cur, universals
		}
		universals = append(universals, forall.Var)
		cur = forall.Formula
	}
}
