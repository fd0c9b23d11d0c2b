package resolve

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/fol-prover/resolver/term"
	"github.com/fol-prover/resolver/unify"
)

func unit(polarity bool, sym string, args ...term.Term) term.Clause {
	return term.NewClause(term.NewLiteral(polarity, term.NewApp(sym, args...)))
}

func TestResolventDerivesEmptyClauseFromComplementaryUnits(t *testing.T) {
	a := term.NewConst("a")
	pa := unit(true, "p", a)
	notPa := unit(false, "p", a)
	cache := unify.NewCache(16)

	resolvent, _, ok := Resolvent(pa, notPa, cache)
	if !ok {
		t.Fatal("expected pa and notPa to resolve")
	}
	if !resolvent.IsEmpty() {
		t.Fatalf("expected empty clause, got %v", resolvent.Literals())
	}
}

func TestResolventNoOpposingPolarity(t *testing.T) {
	a := term.NewConst("a")
	pa := unit(true, "p", a)
	qa := unit(true, "q", a)
	cache := unify.NewCache(16)

	if _, _, ok := Resolvent(pa, qa, cache); ok {
		t.Fatal("expected no resolvent between clauses sharing no complementary literal")
	}
}

func TestResolventUnifiesThroughVariable(t *testing.T) {
	x := term.NewVar("x")
	a := term.NewConst("a")
	// (P x) OR (Q x), (NOT (P a))
	left := term.NewClause(
		term.NewLiteral(true, term.NewApp("p", x)),
		term.NewLiteral(true, term.NewApp("q", x)),
	)
	right := unit(false, "p", a)
	cache := unify.NewCache(16)

	resolvent, sigma, ok := Resolvent(left, right, cache)
	if !ok {
		t.Fatal("expected resolution through unification of x with a")
	}
	if resolvent.Len() != 1 {
		t.Fatalf("expected single-literal resolvent, got %v", resolvent.Literals())
	}
	lit := resolvent.Literals()[0]
	if lit.Atom.Fun != "q" {
		t.Fatalf("expected remaining literal to be q(a), got %v", lit)
	}
	if repl, ok := sigma[x.Name]; !ok || !term.Equal(repl, a) {
		t.Fatalf("expected substitution to bind x -> a, got %v", sigma)
	}
}

func TestRenameApartProducesDisjointVariables(t *testing.T) {
	x := term.NewVar("x")
	c := term.NewClause(term.NewLiteral(true, term.NewApp("p", x)))
	renamed := RenameApart(c, "#1")

	origVar := c.Literals()[0].Atom.Args[0].(term.Var)
	renamedVar := renamed.Literals()[0].Atom.Args[0].(term.Var)
	if origVar.Name == renamedVar.Name {
		t.Fatalf("expected distinct variable names, got %v for both", origVar.Name)
	}
}

func TestSaturateDerivesEmptyClauseFromUnitClashingSet(t *testing.T) {
	a := term.NewConst("a")
	set := term.NewSet(unit(true, "p", a), unit(false, "p", a))
	cache := unify.NewCache(64)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	derived, err := Saturate(ctx, set, cache, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !derived {
		t.Fatal("expected saturation to derive the empty clause")
	}
}

func TestSaturateModusPonensStyleSet(t *testing.T) {
	x := term.NewVar("x")
	a := term.NewConst("a")
	// FORALL x: man(x) -> mortal(x)   =>  ¬man(x) ∨ mortal(x)
	rule := term.NewClause(
		term.NewLiteral(false, term.NewApp("man", x)),
		term.NewLiteral(true, term.NewApp("mortal", x)),
	)
	fact := unit(true, "man", a)
	goal := unit(false, "mortal", a)
	set := term.NewSet(rule, fact, goal)

	cache := unify.NewCache(64)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	derived, err := Saturate(ctx, set, cache, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !derived {
		t.Fatal("expected the empty clause to be derivable from man(a), ∀x.¬man(x)∨mortal(x), ¬mortal(a)")
	}
}

func TestSaturateSatisfiableSetReturnsFalseNotError(t *testing.T) {
	a := term.NewConst("a")
	b := term.NewConst("b")
	set := term.NewSet(unit(true, "p", a), unit(true, "q", b))

	cache := unify.NewCache(64)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	derived, err := Saturate(ctx, set, cache, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if derived {
		t.Fatal("expected a satisfiable, disjoint clause set not to derive the empty clause")
	}
}

func TestSaturateRespectsCancelledContext(t *testing.T) {
	a := term.NewConst("a")
	set := term.NewSet(unit(true, "p", a), unit(false, "p", a))

	cache := unify.NewCache(64)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	derived, err := Saturate(ctx, set, cache, nil)
	if err != ErrDeadlineExceeded {
		t.Fatalf("expected ErrDeadlineExceeded, got %v (derived=%v)", err, derived)
	}
}

func TestSaturateEmptyClauseInInputIsImmediatelyDerived(t *testing.T) {
	set := term.NewSet(term.NewClause())
	cache := unify.NewCache(16)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	derived, err := Saturate(ctx, set, cache, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !derived {
		t.Fatal("expected a clause set already containing the empty clause to report derived")
	}
}

func TestSaturateEmitsDebugRecordPerAcceptedResolvent(t *testing.T) {
	a := term.NewConst("a")
	set := term.NewSet(unit(true, "p", a), unit(false, "p", a))
	cache := unify.NewCache(64)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	derived, err := Saturate(ctx, set, cache, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !derived {
		t.Fatal("expected the empty clause to be derived")
	}

	out := buf.String()
	if !strings.Contains(out, "resolution step accepted") {
		t.Fatalf("expected a debug record per accepted resolvent, got log output: %q", out)
	}
	if !strings.Contains(out, "parent_left=") || !strings.Contains(out, "parent_right=") || !strings.Contains(out, "resolvent=") || !strings.Contains(out, "substitution=") {
		t.Fatalf("expected parent/resolvent/substitution fields in the debug record, got: %q", out)
	}
}

func TestSaturateNilLoggerDefaultsWithoutPanicking(t *testing.T) {
	a := term.NewConst("a")
	set := term.NewSet(unit(true, "p", a), unit(false, "p", a))
	cache := unify.NewCache(16)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	derived, err := Saturate(ctx, set, cache, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !derived {
		t.Fatal("expected derivation to succeed even with a nil logger")
	}
}
