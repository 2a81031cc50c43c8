package main

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vic/lamb/pkg/lambda"
)

// readTerm parses a term given inline, as "-" for stdin or as "@path".
func readTerm(cmd *cobra.Command, arg string) (lambda.Term, error) {
	src := arg
	switch {
	case arg == "-":
		input, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.Wrap(err, "reading stdin")
		}
		src = string(input)
	case strings.HasPrefix(arg, "@"):
		input, err := os.ReadFile(arg[1:])
		if err != nil {
			return nil, errors.Wrap(err, "reading term")
		}
		src = string(input)
	}

	term, err := lambda.Parse(src)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %q", strings.TrimSpace(src))
	}
	logrus.WithField("term", term.String()).Debug("parsed term")
	return term, nil
}
