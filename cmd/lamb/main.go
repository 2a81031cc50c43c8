package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	logLevel string
	output   outputFormat
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{output: outputText}

	rootCmd := &cobra.Command{
		Use:   "lamb",
		Short: "Untyped lambda calculus, one step at a time",
		Long: `Inspect and reduce untyped lambda calculus terms.

Terms use the form λx.body (or \x.body) for abstractions and (f a) for
applications. A TERM argument of "-" is read from stdin and "@path" is read
from a file. Every command performs a single operation; reducing to a normal
form means running "lamb step" repeatedly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return before(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	fl := rootCmd.PersistentFlags()
	fl.StringVar(&opts.logLevel, "log-level", "warn", "logging level")
	fl.VarP(&opts.output, "output", "o", "output format (text or yaml)")

	rootCmd.AddCommand(
		newShowCmd(opts),
		newFreeCmd(opts),
		newSubstCmd(opts),
		newStepCmd(opts),
		newReifyCmd(opts),
		newAlphaCmd(opts),
	)
	return rootCmd
}

func before(cmd *cobra.Command, opts *globalOptions) error {
	if opts.logLevel != "" {
		level, err := logrus.ParseLevel(opts.logLevel)
		if err != nil {
			return errors.Wrapf(err, "parsing log level %q", opts.logLevel)
		}
		logrus.SetLevel(level)
	}
	logrus.SetOutput(cmd.ErrOrStderr())
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if logrus.IsLevelEnabled(logrus.TraceLevel) {
			fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
