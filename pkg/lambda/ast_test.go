package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		term Term
		want string
	}{
		{"Variable", Variable("x"), "x"},
		{"Identity", Abstraction("x", Variable("x")), "λx.x"},
		{"Application", Application(Variable("f"), Variable("x")), "(f x)"},
		{"Redex", Application(Abstraction("x", Variable("x")), Variable("y")), "(λx.x y)"},
		{"AbsOverApp", Abstraction("x", Application(Variable("x"), Variable("y"))), "λx.(x y)"},
		{"K", Abstraction("x", Abstraction("y", Variable("x"))), "λx.λy.x"},
		{
			"S",
			Abstraction("x", Abstraction("y", Abstraction("z",
				Application(
					Application(Variable("x"), Variable("z")),
					Application(Variable("y"), Variable("z")))))),
			"λx.λy.λz.((x z) (y z))",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.term.String())
			// rendering twice must give the same text
			assert.Equal(t, tc.term.String(), tc.term.String())
		})
	}
}

func TestConstructorsBuildVariants(t *testing.T) {
	body := Variable("x")
	abs := Abstraction("x", body)
	app := Application(abs, Variable("y"))

	require.Equal(t, Var{Name: "x"}, body)
	require.Equal(t, Abs{Name: "x", Body: Var{Name: "x"}}, abs)
	require.Equal(t, App{Left: abs, Right: Var{Name: "y"}}, app)
}

// TestStructuralEquality relies on terms being comparable values.
func TestStructuralEquality(t *testing.T) {
	a := Abstraction("x", Application(Variable("x"), Variable("y")))
	b := Abstraction("x", Application(Variable("x"), Variable("y")))
	c := Abstraction("x", Application(Variable("y"), Variable("x")))

	assert.True(t, a == b)
	assert.False(t, a == c)
	assert.False(t, Variable("x") == Abstraction("x", Variable("x")))
}

func TestSize(t *testing.T) {
	assert.Equal(t, 1, Size(Variable("x")))
	assert.Equal(t, 2, Size(Abstraction("x", Variable("x"))))
	assert.Equal(t, 4, Size(Application(Abstraction("x", Variable("x")), Variable("y"))))
}
