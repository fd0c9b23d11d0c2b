package term

import "sort"

// Literal is a predicate atom together with its polarity.
type Literal struct {
	Polarity bool // true = positive, false = negated
	Atom     App
}

// NewLiteral constructs a literal.
func NewLiteral(polarity bool, atom App) Literal {
	return Literal{Polarity: polarity, Atom: atom}
}

// Negate returns the literal with flipped polarity.
func (l Literal) Negate() Literal {
	return Literal{Polarity: !l.Polarity, Atom: l.Atom}
}

// String renders the literal canonically; (+, P(t)) and (-, P(t)) are always
// distinguishable.
func (l Literal) String() string {
	if l.Polarity {
		return l.Atom.String()
	}
	return "-" + l.Atom.String()
}

// Equal reports structural equality between two literals.
func (l Literal) Equal(other Literal) bool {
	return l.Polarity == other.Polarity && Equal(l.Atom, other.Atom)
}

// Clause is an unordered set of literals, interpreted as their disjunction.
// Clauses are value objects: equal by set equality of their literals. The
// internal slice is kept sorted and deduplicated by canonical string so two
// structurally-equal clauses are also byte-equal via their key.
type Clause struct {
	lits []Literal
}

// NewClause builds a clause from a literal list, removing duplicates.
func NewClause(lits ...Literal) Clause {
	seen := make(map[string]bool, len(lits))
	out := make([]Literal, 0, len(lits))
	for _, l := range lits {
		k := l.String()
		if !seen[k] {
			seen[k] = true
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return Clause{lits: out}
}

// Literals returns the clause's literals in canonical order.
func (c Clause) Literals() []Literal { return c.lits }

// Len returns the number of literals in the clause.
func (c Clause) Len() int { return len(c.lits) }

// IsEmpty reports whether the clause is the empty clause (⊥).
func (c Clause) IsEmpty() bool { return len(c.lits) == 0 }

// IsUnit reports whether the clause has exactly one literal.
func (c Clause) IsUnit() bool { return len(c.lits) == 1 }

// Key returns a canonical string usable as a map key for set membership.
func (c Clause) Key() string {
	var out string
	for i, l := range c.lits {
		if i > 0 {
			out += "|"
		}
		out += l.String()
	}
	return out
}

// Equal reports set equality of two clauses' literals.
func (c Clause) Equal(other Clause) bool {
	return c.Key() == other.Key()
}

// Union returns the clause containing the literals of both c and other, with
// duplicates removed.
func Union(c, other Clause) Clause {
	combined := make([]Literal, 0, len(c.lits)+len(other.lits))
	combined = append(combined, c.lits...)
	combined = append(combined, other.lits...)
	return NewClause(combined...)
}

// Set is an unordered collection of clauses, keyed by canonical string for
// O(1) membership and insertion.
type Set struct {
	byKey map[string]Clause
}

// NewSet builds a clause set from zero or more clauses.
func NewSet(clauses ...Clause) Set {
	s := Set{byKey: make(map[string]Clause, len(clauses))}
	for _, c := range clauses {
		s.Add(c)
	}
	return s
}

// Add inserts a clause, reporting whether it was new.
func (s *Set) Add(c Clause) bool {
	k := c.Key()
	if _, ok := s.byKey[k]; ok {
		return false
	}
	s.byKey[k] = c
	return true
}

// Contains reports whether an equal clause is already present.
func (s Set) Contains(c Clause) bool {
	_, ok := s.byKey[c.Key()]
	return ok
}

// Len returns the number of clauses in the set.
func (s Set) Len() int { return len(s.byKey) }

// Clauses returns the set's clauses in no particular order.
func (s Set) Clauses() []Clause {
	out := make([]Clause, 0, len(s.byKey))
	for _, c := range s.byKey {
		out = append(out, c)
	}
	return out
}

// Merge adds every clause of other into s.
func (s *Set) Merge(other Set) {
	for _, c := range other.byKey {
		s.Add(c)
	}
}
