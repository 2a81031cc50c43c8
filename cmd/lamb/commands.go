package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vic/lamb/pkg/lambda"
)

type termDoc struct {
	Term string `yaml:"term"`
}

type freeDoc struct {
	Term string   `yaml:"term"`
	Free []string `yaml:"free"`
}

type stepDoc struct {
	Strategy string `yaml:"strategy"`
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
}

type alphaDoc struct {
	Left       string `yaml:"left"`
	Right      string `yaml:"right"`
	Equivalent bool   `yaml:"equivalent"`
}

func newShowCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "show TERM",
		Args:    cobra.ExactArgs(1),
		Short:   "Print a term in canonical textual form",
		Example: `lamb show '\x.\y.x'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			term, err := readTerm(cmd, args[0])
			if err != nil {
				return err
			}
			return emit(cmd, opts, term.String(), termDoc{Term: term.String()})
		},
	}
}

func newFreeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "free TERM",
		Args:    cobra.ExactArgs(1),
		Short:   "List the free variables of a term",
		Example: `lamb free 'λx.(x y)'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			term, err := readTerm(cmd, args[0])
			if err != nil {
				return err
			}
			free := lo.Uniq(lambda.FreeVariables(term))
			return emit(cmd, opts, strings.Join(free, "\n"), freeDoc{Term: term.String(), Free: free})
		},
	}
}

func newSubstCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "subst TERM NAME REPLACEMENT",
		Args:    cobra.ExactArgs(3),
		Short:   "Substitute a term for the free occurrences of a variable",
		Long:    "Substitute REPLACEMENT for NAME in TERM. A binder that would capture a free variable of REPLACEMENT is left untouched.",
		Example: `lamb subst 'λy.(x y)' x 'λz.z'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			term, err := readTerm(cmd, args[0])
			if err != nil {
				return err
			}
			replacement, err := readTerm(cmd, args[2])
			if err != nil {
				return errors.Wrap(err, "replacement")
			}
			res := lambda.Substitute(term, args[1], replacement)
			return emit(cmd, opts, res.String(), termDoc{Term: res.String()})
		},
	}
}

func newStepCmd(opts *globalOptions) *cobra.Command {
	strategy := newStrategyFlag(lambda.StrategyNormalOrder)
	cmd := &cobra.Command{
		Use:   "step TERM",
		Args:  cobra.ExactArgs(1),
		Short: "Perform one beta-reduction step",
		Example: `lamb step '(λx.x y)'
lamb step --strategy cbn 'λx.(λy.y x)'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			term, err := readTerm(cmd, args[0])
			if err != nil {
				return err
			}

			start := time.Now()
			res, err := strategy.reduce(term)
			elapsed := time.Since(start)
			if err != nil {
				return errors.Wrapf(err, "%s step", strategy)
			}

			logrus.WithFields(logrus.Fields{
				"strategy": strategy.String(),
				"size_in":  lambda.Size(term),
				"size_out": lambda.Size(res),
				"elapsed":  elapsed,
			}).Debug("reduced one step")

			doc := stepDoc{Strategy: strategy.String(), Input: term.String(), Output: res.String()}
			return emit(cmd, opts, res.String(), doc)
		},
	}
	cmd.Flags().VarP(strategy, "strategy", "s", strategyUsage())
	return cmd
}

func newReifyCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "reify TERM",
		Args:    cobra.ExactArgs(1),
		Short:   "Rename every identifier to its first-occurrence index",
		Example: `lamb reify 'λf.λx.(f x)'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			term, err := readTerm(cmd, args[0])
			if err != nil {
				return err
			}
			res := lambda.Reify(term)
			return emit(cmd, opts, res.String(), termDoc{Term: res.String()})
		},
	}
}

func newAlphaCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "alpha TERM TERM",
		Args:    cobra.ExactArgs(2),
		Short:   "Report whether two terms have the same canonical form",
		Example: `lamb alpha 'λx.x' 'λy.y'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := readTerm(cmd, args[0])
			if err != nil {
				return err
			}
			right, err := readTerm(cmd, args[1])
			if err != nil {
				return err
			}
			eq := lambda.AlphaEquivalent(left, right)
			doc := alphaDoc{Left: left.String(), Right: right.String(), Equivalent: eq}
			return emit(cmd, opts, strconv.FormatBool(eq), doc)
		},
	}
}
