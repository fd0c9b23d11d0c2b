package compiler

import (
	"github.com/fol-prover/resolver/ast"
	"github.com/fol-prover/resolver/term"
)

// toCNF distributes ∨ over ∧ across the quantifier-free matrix, producing a
// clause set (§4.3.6). Worst-case clause count is exponential in the number
// of Ors beneath Ands; that is inherent to the transformation and accepted.
func toCNF(f ast.Formula) (term.Set, error) {
	switch v := f.(type) {
	case ast.And:
		left, err := toCNF(v.Left)
		if err != nil {
			return term.Set{}, err
		}
		right, err := toCNF(v.Right)
		if err != nil {
			return term.Set{}, err
		}
		out := term.NewSet()
		out.Merge(left)
		out.Merge(right)
		return out, nil
	case ast.Or:
		left, err := toCNF(v.Left)
		if err != nil {
			return term.Set{}, err
		}
		right, err := toCNF(v.Right)
		if err != nil {
			return term.Set{}, err
		}
		out := term.NewSet()
		for _, a := range left.Clauses() {
			for _, b := range right.Clauses() {
				out.Add(term.Union(a, b))
			}
		}
		return out, nil
	case ast.Not:
		pred, ok := v.Formula.(ast.Pred)
		if !ok {
			// Contradiction's NNF form, ¬⊥, is the only non-atomic shape a
			// Not can still wrap at this point (every other negation was
			// pushed to an atom by normalize): it is a tautology, which
			// contributes no clauses.
			if _, isContr := v.Formula.(ast.Contradiction); isContr {
				return term.NewSet(), nil
			}
			return term.Set{}, ErrMalformedFormula
		}
		lit := term.NewLiteral(false, term.NewApp(pred.Sym, pred.Args...))
		return term.NewSet(term.NewClause(lit)), nil
	case ast.Pred:
		lit := term.NewLiteral(true, term.NewApp(v.Sym, v.Args...))
		return term.NewSet(term.NewClause(lit)), nil
	case ast.Contradiction:
		// Bare ⊥ as a conjunct asserts falsity outright: the clause set
		// containing just the empty clause.
		return term.NewSet(term.NewClause()), nil
	default:
		return term.Set{}, ErrMalformedFormula
	}
}
