package unify

import "github.com/fol-prover/resolver/term"

// MGU computes the most general unifier of t1 and t2, iterating the
// disagreement-set step until the terms coincide or a conflict is found
// (§4.2.3). The returned substitution is idempotent by construction.
func MGU(t1, t2 term.Term) (Subst, bool) {
	sigma := Subst{}
	cur1, cur2 := t1, t2

	for {
		d := findDisagreement(cur1, cur2)
		switch d.kind {
		case resultEqual:
			return sigma, true
		case resultConflict:
			return nil, false
		case resultPair:
			v, isVar := d.v.(term.Var)
			if !isVar {
				// Both sides turned out to be non-variable and unequal; no
				// unifier exists. Defensive: findDisagreement always
				// normalizes the variable into d.v when one side is a
				// variable, so this path is unreachable in practice, but
				// §4.2.3 step 4 calls for the check explicitly.
				return nil, false
			}
			if term.Occurs(v, d.u) {
				return nil, false
			}
			gamma := Subst{v.Name: d.u}
			for k, val := range sigma {
				sigma[k] = Apply(gamma, val)
			}
			sigma[v.Name] = d.u
			cur1 = Apply(gamma, cur1)
			cur2 = Apply(gamma, cur2)
		}
	}
}

// UnifyLiterals computes the MGU of two literal atoms (ignoring polarity),
// used by the resolution engine to check whether two opposite-polarity
// literals can be resolved.
func UnifyLiterals(a, b term.Literal) (Subst, bool) {
	return MGU(a.Atom, b.Atom)
}
