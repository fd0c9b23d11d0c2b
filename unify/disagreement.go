package unify

import "github.com/fol-prover/resolver/term"

// resultKind distinguishes the three outcomes of find_disagreement (§4.2.2).
type resultKind int

const (
	resultEqual resultKind = iota
	resultConflict
	resultPair
)

// disagreement is the first-pair-found result of walking two terms in
// lockstep.
type disagreement struct {
	kind resultKind
	v    term.Term // for resultPair: the variable side, when one exists
	u    term.Term // for resultPair: the other side
}

// findDisagreement walks t1 and t2 together and returns the first point at
// which they differ. The walk is implemented as a depth-first recursion over
// matching positions rather than the breadth-first order §4.2.2 describes;
// either order is sound (any single disagreement pair yields a correct MGU
// step), and depth-first keeps the implementation a direct structural
// recursion over the term sum type.
func findDisagreement(t1, t2 term.Term) disagreement {
	if term.Equal(t1, t2) {
		return disagreement{kind: resultEqual}
	}

	v1, isVar1 := t1.(term.Var)
	v2, isVar2 := t2.(term.Var)

	switch {
	case isVar1 && !isVar2:
		return disagreement{kind: resultPair, v: v1, u: t2}
	case isVar2 && !isVar1:
		return disagreement{kind: resultPair, v: v2, u: t1}
	case isVar1 && isVar2:
		// Distinct variable names (equality already ruled out above).
		return disagreement{kind: resultPair, v: v1, u: v2}
	}

	a1, ok1 := t1.(term.App)
	a2, ok2 := t2.(term.App)
	if !ok1 || !ok2 {
		return disagreement{kind: resultConflict}
	}
	if a1.Fun != a2.Fun || len(a1.Args) != len(a2.Args) {
		return disagreement{kind: resultConflict}
	}
	for i := range a1.Args {
		d := findDisagreement(a1.Args[i], a2.Args[i])
		if d.kind != resultEqual {
			return d
		}
	}
	return disagreement{kind: resultEqual}
}
