package lambda

import "github.com/samber/lo"

// FreeVariables returns the names occurring free in term, in traversal order.
// A name may appear more than once; treat the result as a set.
func FreeVariables(term Term) []string {
	switch t := term.(type) {
	case Var:
		return []string{t.Name}
	case Abs:
		return lo.Filter(FreeVariables(t.Body), func(name string, _ int) bool {
			return name != t.Name
		})
	case App:
		return append(FreeVariables(t.Left), FreeVariables(t.Right)...)
	default:
		panic(unknownTerm(term))
	}
}

// IsFree reports whether name occurs free in term.
func IsFree(name string, term Term) bool {
	return lo.Contains(FreeVariables(term), name)
}
