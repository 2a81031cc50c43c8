package lambda

// Substitute replaces every free occurrence of name in term with replacement.
//
//	[x->s]x      = s
//	[x->s]y      = y                 if y != x
//	[x->s](λx.t) = λx.t
//	[x->s](λy.t) = λy.t              if y ∈ FV(s)
//	[x->s](λy.t) = λy.[x->s]t        otherwise
//	[x->s](t u)  = ([x->s]t [x->s]u)
//
// Capture is avoided by declining to substitute under a binder that would
// capture a free variable of replacement; binders are never renamed.
// Subterms that are not touched are shared with the input.
func Substitute(term Term, name string, replacement Term) Term {
	switch t := term.(type) {
	case Var:
		if t.Name == name {
			return replacement
		}
		return t
	case Abs:
		if t.Name == name {
			return t
		}
		if IsFree(t.Name, replacement) {
			return t
		}
		return Abs{Name: t.Name, Body: Substitute(t.Body, name, replacement)}
	case App:
		return App{
			Left:  Substitute(t.Left, name, replacement),
			Right: Substitute(t.Right, name, replacement),
		}
	default:
		panic(unknownTerm(term))
	}
}
