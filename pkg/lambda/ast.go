package lambda

import "fmt"

// Term represents a lambda calculus term.
//
// The set of terms is closed: Var, Abs and App are the only implementations.
// Terms are immutable values, so two terms are structurally equal exactly
// when they compare equal with ==.
type Term interface {
	String() string
	term()
}

// Var represents a variable usage.
type Var struct {
	Name string
}

func (Var) term() {}

func (v Var) String() string {
	return v.Name
}

// Abs represents an abstraction (lambda).
type Abs struct {
	Name string
	Body Term
}

func (Abs) term() {}

func (a Abs) String() string {
	return fmt.Sprintf("λ%s.%s", a.Name, a.Body)
}

// App represents an application.
type App struct {
	Left  Term
	Right Term
}

func (App) term() {}

func (a App) String() string {
	return fmt.Sprintf("(%s %s)", a.Left, a.Right)
}

// Variable builds a variable term.
func Variable(name string) Term {
	return Var{Name: name}
}

// Abstraction builds λname.body.
func Abstraction(name string, body Term) Term {
	return Abs{Name: name, Body: body}
}

// Application builds (left right).
func Application(left, right Term) Term {
	return App{Left: left, Right: right}
}

// Size returns the number of nodes in a term.
func Size(term Term) int {
	switch t := term.(type) {
	case Var:
		return 1
	case Abs:
		return 1 + Size(t.Body)
	case App:
		return 1 + Size(t.Left) + Size(t.Right)
	default:
		panic(unknownTerm(term))
	}
}

func unknownTerm(term Term) string {
	return fmt.Sprintf("Unknown term type %T", term)
}
