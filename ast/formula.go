package ast

import "github.com/fol-prover/resolver/term"

// Formula is the raw FOL abstract syntax tree produced by the parser (§3).
// Concrete variants: Pred, Not, And, Or, Implies, Forall, Exists,
// Contradiction.
type Formula interface {
	isFormula()
}

// Pred is a predicate application: a predicate symbol applied to terms.
type Pred struct {
	Sym  string
	Args []term.Term
}

func (Pred) isFormula() {}

// Not is logical negation.
type Not struct {
	Formula Formula
}

func (Not) isFormula() {}

// And is logical conjunction.
type And struct {
	Left, Right Formula
}

func (And) isFormula() {}

// Or is logical disjunction.
type Or struct {
	Left, Right Formula
}

func (Or) isFormula() {}

// Implies is material implication.
type Implies struct {
	Left, Right Formula
}

func (Implies) isFormula() {}

// Forall is universal quantification over a single variable.
type Forall struct {
	Var     string
	Formula Formula
}

func (Forall) isFormula() {}

// Exists is existential quantification over a single variable.
type Exists struct {
	Var     string
	Formula Formula
}

func (Exists) isFormula() {}

// Contradiction is the literal falsity token (⊥) accepted in input.
type Contradiction struct{}

func (Contradiction) isFormula() {}
