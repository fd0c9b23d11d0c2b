// Package term implements the immutable first-order term algebra: variables
// and function application (constants are function application with no
// arguments). Terms and literals are value-typed and structurally hashable so
// that clause sets can use them as map keys.
package term

import (
	"strconv"
	"strings"
)

// Term is either a Var or an App. The absence of a separate constant node is
// deliberate: a constant is App(name, nil).
type Term interface {
	// String renders the term in a canonical, hashable form.
	String() string
	isTerm()
}

// Var is a variable name, meaningful only within a clause's local scope.
type Var struct {
	Name string
}

func (Var) isTerm() {}

// String prefixes the name with '?' so a variable never renders the same as
// a constant of the same name.
func (v Var) String() string { return "?" + v.Name }

// NewVar constructs a variable term.
func NewVar(name string) Var { return Var{Name: name} }

// App is function (or predicate) application: Fun applied to Args in order.
// Args may be empty, in which case App represents a constant.
type App struct {
	Fun  string
	Args []Term
}

func (App) isTerm() {}

// NewApp constructs an application term.
func NewApp(fun string, args ...Term) App {
	return App{Fun: fun, Args: args}
}

// NewConst constructs a zero-arity application (a constant).
func NewConst(name string) App {
	return App{Fun: name}
}

func (a App) String() string {
	if len(a.Args) == 0 {
		return a.Fun
	}
	var b strings.Builder
	b.WriteString(a.Fun)
	b.WriteByte('(')
	for i, arg := range a.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Equal reports structural equality between two terms.
func Equal(a, b Term) bool {
	switch av := a.(type) {
	case Var:
		bv, ok := b.(Var)
		return ok && av.Name == bv.Name
	case App:
		bv, ok := b.(App)
		if !ok || av.Fun != bv.Fun || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !Equal(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Occurs reports whether variable v occurs anywhere inside t.
func Occurs(v Var, t Term) bool {
	switch tv := t.(type) {
	case Var:
		return tv.Name == v.Name
	case App:
		for _, arg := range tv.Args {
			if Occurs(v, arg) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// FreshCounter hands out globally-unique internal symbol names. The source
// grammar forbids '-' in symbols, so names of the form "-1", "-2", ... can
// never collide with a symbol that came from input text.
type FreshCounter struct {
	next int
}

// NewFreshCounter returns a counter starting at -1 and decrementing.
func NewFreshCounter() *FreshCounter {
	return &FreshCounter{next: -1}
}

// Fresh returns the next fresh name and decrements the internal counter.
func (c *FreshCounter) Fresh() string {
	name := strconv.Itoa(c.next)
	c.next--
	return name
}
