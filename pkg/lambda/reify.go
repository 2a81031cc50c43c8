package lambda

import "strconv"

// Unused is the binder name Reify emits for an abstraction whose bound
// name has not been numbered by the time the binder is rendered.
const Unused = "_"

// Reify renames every identifier to the decimal index of its first
// occurrence in a left-to-right, body-first traversal. One numbering is
// shared by the whole term, so equal names always get equal indices.
//
// An abstraction is numbered after its body. A binder whose name neither
// occurs in its body nor earlier in the term is rendered as Unused and
// stays unnumbered.
func Reify(term Term) Term {
	indices := make(map[string]int)
	var walk func(Term) Term
	walk = func(tt Term) Term {
		switch t := tt.(type) {
		case Var:
			idx, ok := indices[t.Name]
			if !ok {
				idx = len(indices)
				indices[t.Name] = idx
			}
			return Var{Name: strconv.Itoa(idx)}
		case Abs:
			body := walk(t.Body)
			name := Unused
			if idx, ok := indices[t.Name]; ok {
				name = strconv.Itoa(idx)
			}
			return Abs{Name: name, Body: body}
		case App:
			left := walk(t.Left)
			right := walk(t.Right)
			return App{Left: left, Right: right}
		default:
			panic(unknownTerm(tt))
		}
	}
	return walk(term)
}

// AlphaEquivalent compares two terms after canonicalization. Free names are
// renumbered too, so terms that differ only by a consistent renaming of all
// identifiers are equivalent.
func AlphaEquivalent(a, b Term) bool {
	return Reify(a) == Reify(b)
}
