package lambda

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoRedex is matched by every ReductionError.
var ErrNoRedex = errors.New("cannot beta reduce")

// ReductionError reports an application whose head is not an abstraction.
type ReductionError struct {
	Term Term
}

func (e *ReductionError) Error() string {
	return fmt.Sprintf("%v: %s", ErrNoRedex, e.Term)
}

func (e *ReductionError) Is(target error) bool {
	return target == ErrNoRedex
}

// Strategy performs a single reduction step.
type Strategy func(Term) (Term, error)

const (
	StrategyCallByName  = "call-by-name"
	StrategyNormalOrder = "normal-order"
)

var strategies = map[string]Strategy{
	StrategyCallByName:  CallByName,
	StrategyNormalOrder: NormalOrder,
}

var strategyAliases = map[string]string{
	"cbn":    StrategyCallByName,
	"name":   StrategyCallByName,
	"normal": StrategyNormalOrder,
	"no":     StrategyNormalOrder,
}

// LookupStrategy resolves a strategy by its name or a short alias.
func LookupStrategy(name string) (Strategy, error) {
	if canon, ok := strategyAliases[name]; ok {
		name = canon
	}
	s, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown reduction strategy %q (want one of %v)", name, Strategies())
	}
	return s, nil
}

// Strategies returns the canonical strategy names, sorted.
func Strategies() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CallByName contracts the outermost redex of term. It never reduces under
// a binder and never searches the head of a stuck application.
func CallByName(term Term) (Term, error) {
	switch t := term.(type) {
	case Var, Abs:
		return t, nil
	case App:
		return beta(t)
	default:
		panic(unknownTerm(term))
	}
}

// NormalOrder contracts the outermost redex of term, descending into
// abstraction bodies when the term itself is an abstraction.
func NormalOrder(term Term) (Term, error) {
	switch t := term.(type) {
	case Var:
		return t, nil
	case Abs:
		body, err := NormalOrder(t.Body)
		if err != nil {
			return nil, err
		}
		return Abs{Name: t.Name, Body: body}, nil
	case App:
		return beta(t)
	default:
		panic(unknownTerm(term))
	}
}

// beta applies (λx.body) right -> [x->right]body.
func beta(app App) (Term, error) {
	fun, ok := app.Left.(Abs)
	if !ok {
		return nil, &ReductionError{Term: app}
	}
	return Substitute(fun.Body, fun.Name, app.Right), nil
}
