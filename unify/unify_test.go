package unify

import (
	"testing"

	"github.com/fol-prover/resolver/term"
)

func TestMGUIdenticalTerms(t *testing.T) {
	tm := term.NewApp("f", term.NewConst("a"))
	sigma, ok := MGU(tm, tm)
	if !ok {
		t.Fatal("expected identical terms to unify")
	}
	if len(sigma) != 0 {
		t.Fatalf("expected empty substitution, got %v", sigma)
	}
}

func TestMGUVariableWithConstant(t *testing.T) {
	x := term.NewVar("x")
	a := term.NewConst("a")
	sigma, ok := MGU(x, a)
	if !ok {
		t.Fatal("expected x to unify with constant a")
	}
	if !term.Equal(sigma["x"], a) {
		t.Fatalf("expected x -> a, got %v", sigma)
	}
}

func TestMGUOccursCheck(t *testing.T) {
	x := term.NewVar("x")
	fx := term.NewApp("f", x)
	if _, ok := MGU(x, fx); ok {
		t.Fatal("expected occurs-check failure for x vs f(x)")
	}
}

func TestMGUConflictingConstants(t *testing.T) {
	a := term.NewConst("a")
	b := term.NewConst("b")
	if _, ok := MGU(a, b); ok {
		t.Fatal("expected distinct constants not to unify")
	}
}

func TestMGUArityMismatch(t *testing.T) {
	f1 := term.NewApp("f", term.NewConst("a"))
	f2 := term.NewApp("f", term.NewConst("a"), term.NewConst("b"))
	if _, ok := MGU(f1, f2); ok {
		t.Fatal("expected arity mismatch to fail unification")
	}
}

func TestMGUNestedVariables(t *testing.T) {
	x := term.NewVar("x")
	y := term.NewVar("y")
	t1 := term.NewApp("f", x, term.NewConst("b"))
	t2 := term.NewApp("f", term.NewConst("a"), y)
	sigma, ok := MGU(t1, t2)
	if !ok {
		t.Fatal("expected unification to succeed")
	}
	applied1 := Apply(sigma, t1)
	applied2 := Apply(sigma, t2)
	if !term.Equal(applied1, applied2) {
		t.Fatalf("expected substituted terms to be equal: %v vs %v", applied1, applied2)
	}
}

func TestSubstituteEmptyIsIdentity(t *testing.T) {
	tm := term.NewApp("f", term.NewVar("x"), term.NewConst("a"))
	if !term.Equal(Apply(Subst{}, tm), tm) {
		t.Fatal("expected substitute(empty, t) == t")
	}
}

func TestSubstituteIsIdempotentForMGUResult(t *testing.T) {
	x := term.NewVar("x")
	tm := term.NewApp("f", x)
	sigma, ok := MGU(tm, term.NewApp("f", term.NewConst("a")))
	if !ok {
		t.Fatal("expected unification to succeed")
	}
	once := Apply(sigma, tm)
	twice := Apply(sigma, once)
	if !term.Equal(once, twice) {
		t.Fatalf("expected substitution to be idempotent: %v vs %v", once, twice)
	}
}

func TestCacheReturnsSameResultAsDirect(t *testing.T) {
	c := NewCache(8)
	x := term.NewVar("x")
	a := term.NewConst("a")
	sigma1, ok1 := c.MGU(x, a)
	sigma2, ok2 := c.MGU(x, a)
	if ok1 != ok2 || !term.Equal(sigma1["x"], sigma2["x"]) {
		t.Fatal("expected cached MGU lookup to match direct computation")
	}
	if c.Len() != 1 {
		t.Fatalf("expected one cache entry, got %d", c.Len())
	}
}

func TestCacheEviction(t *testing.T) {
	c := NewCache(1)
	c.MGU(term.NewVar("x"), term.NewConst("a"))
	c.MGU(term.NewVar("y"), term.NewConst("b"))
	if c.Len() != 1 {
		t.Fatalf("expected bounded cache to hold at most 1 entry, got %d", c.Len())
	}
}
