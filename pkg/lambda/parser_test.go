package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Term
	}{
		{"x", Variable("x")},
		{"λx.x", Abstraction("x", Variable("x"))},
		{`\x.x`, Abstraction("x", Variable("x"))},
		{"f x y", Application(Application(Variable("f"), Variable("x")), Variable("y"))},
		{"f (x y)", Application(Variable("f"), Application(Variable("x"), Variable("y")))},
		{"(λx.x y)", Application(Abstraction("x", Variable("x")), Variable("y"))},
		{"λx.(x y)", Abstraction("x", Application(Variable("x"), Variable("y")))},
		{"λx.λy.x", Abstraction("x", Abstraction("y", Variable("x")))},
		{"f λx.x", Application(Variable("f"), Abstraction("x", Variable("x")))},
		{"λ0.(0 1)", Abstraction("0", Application(Variable("0"), Variable("1")))},
		{"λ_.x'", Abstraction("_", Variable("x'"))},
		{"  ( ( x ) )  ", Variable("x")},
		{
			"let i = λx.x; in i a",
			Application(Abstraction("i", Application(Variable("i"), Variable("a"))), Abstraction("x", Variable("x"))),
		},
		{
			"let x = a; y = b; in x",
			Application(Abstraction("x", Application(Abstraction("y", Variable("x")), Variable("b"))), Variable("a")),
		},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	terms := []Term{
		Variable("x"),
		Abstraction("x", Variable("x")),
		Application(Abstraction("x", Variable("x")), Variable("y")),
		Abstraction("x", Application(Abstraction("y", Variable("y")), Variable("x"))),
		Application(Variable("a"), Application(Variable("b"), Variable("c"))),
		Application(Application(Variable("a"), Variable("b")), Variable("c")),
		Abstraction("x", Abstraction("y", Abstraction("z",
			Application(
				Application(Variable("x"), Variable("z")),
				Application(Variable("y"), Variable("z")))))),
	}

	for _, term := range terms {
		t.Run(term.String(), func(t *testing.T) {
			got, err := Parse(term.String())
			require.NoError(t, err)
			assert.Equal(t, term, got)

			reified := Reify(term)
			got, err = Parse(reified.String())
			require.NoError(t, err)
			assert.Equal(t, reified, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		pos   int
		msg   string
	}{
		{"", 0, "unexpected end of input"},
		{"(x", 2, "expected ')', found end of input"},
		{"x)", 1, "unexpected ')'"},
		{"λ.x", 1, "expected identifier, found '.'"},
		{"λx x", 3, "expected '.', found identifier \"x\""},
		{"x + y", 2, `unexpected character "+"`},
		{"let x = a in x", 10, "expected ';', found 'in'"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			_, err := Parse(tc.input)
			var serr *SyntaxError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tc.pos, serr.Pos)
			assert.Equal(t, tc.msg, serr.Msg)
		})
	}
}
