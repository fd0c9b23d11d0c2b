package solver

import "testing"

func TestFindInconsistentSimpleContradiction(t *testing.T) {
	sets := [][]string{
		{"(P a)", "(NOT (P a))"},
	}
	got := FindInconsistent(sets, 2)
	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected set 0 to be reported inconsistent, got %v", got)
	}
}

func TestFindInconsistentModusPonens(t *testing.T) {
	sets := [][]string{
		{
			"(FORALL x (IMPLIES (man x) (mortal x)))",
			"(man socrates)",
			"(NOT (mortal socrates))",
		},
	}
	got := FindInconsistent(sets, 2)
	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected modus-ponens set to be inconsistent, got %v", got)
	}
}

func TestFindInconsistentSatisfiableSetIsAbsent(t *testing.T) {
	sets := [][]string{
		{"(P a)", "(Q b)"},
	}
	got := FindInconsistent(sets, 1)
	if len(got) != 0 {
		t.Fatalf("expected satisfiable set to be absent from results, got %v", got)
	}
}

func TestFindInconsistentMixedBatchReturnsAscendingIndices(t *testing.T) {
	sets := [][]string{
		{"(P a)", "(Q b)"},       // satisfiable
		{"(P a)", "(NOT (P a))"}, // inconsistent
		{"(XOR a b)"},            // malformed, skipped
		{"(Q c)", "(NOT (Q c))"}, // inconsistent
	}
	got := FindInconsistent(sets, 4)
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("expected [1 3], got %v", got)
	}
}

func TestFindInconsistentEmptyBatch(t *testing.T) {
	got := FindInconsistent(nil, 1)
	if len(got) != 0 {
		t.Fatalf("expected no results for empty batch, got %v", got)
	}
}

func TestFindInconsistentSmallBudgetStillDetectsUnitClash(t *testing.T) {
	// A one-step refutation should complete comfortably within a small but
	// non-degenerate per-set budget.
	sets := [][]string{
		{"(P a)", "(NOT (P a))"},
	}
	got := FindInconsistent(sets, 0.5)
	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected unit clash to be found within a small budget, got %v", got)
	}
}
