package gentests

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vic/lamb/pkg/lambda"
)

// parseFixture reads an embedded fixture, ignoring surrounding whitespace.
func parseFixture(t *testing.T, what, src string) lambda.Term {
	t.Helper()
	term, err := lambda.Parse(strings.TrimSpace(src))
	require.NoError(t, err, "parse error for %s", what)
	return term
}

func lookup(t *testing.T, strategy string) lambda.Strategy {
	t.Helper()
	reduce, err := lambda.LookupStrategy(strategy)
	require.NoError(t, err)
	return reduce
}

// CheckStep asserts that one step of strategy turns inputStr into outputStr.
// Names are compared exactly: a single step never renames a binder.
func CheckStep(t *testing.T, testName, strategy, inputStr, outputStr string) {
	t.Helper()
	term := parseFixture(t, "input", inputStr)
	expected := parseFixture(t, "expected output", outputStr)
	reduce := lookup(t, strategy)

	start := time.Now()
	actual, err := reduce(term)
	elapsed := time.Since(start)
	require.NoError(t, err, "%s: %s", testName, term)

	if actual != expected {
		t.Errorf("Mismatch in %s (%s):\nInput:    %s\nExpected: %s\nActual:   %s",
			testName, strategy, term, expected, actual)
	}
	t.Logf("%s: %s step, size %d -> %d in %v", testName, strategy, lambda.Size(term), lambda.Size(actual), elapsed)
}

// CheckStuck asserts that strategy reports term as having no redex.
func CheckStuck(t *testing.T, testName, strategy, inputStr string) {
	t.Helper()
	term := parseFixture(t, "input", inputStr)
	reduce := lookup(t, strategy)

	actual, err := reduce(term)
	require.ErrorIs(t, err, lambda.ErrNoRedex, "%s: expected stuck term, got %v", testName, actual)
	t.Logf("%s: %v", testName, err)
}
