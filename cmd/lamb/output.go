package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	outputText outputFormat = "text"
	outputYAML outputFormat = "yaml"
)

var _ pflag.Value = (*outputFormat)(nil)

func (o *outputFormat) String() string { return string(*o) }
func (o *outputFormat) Type() string   { return "format" }

func (o *outputFormat) Set(s string) error {
	switch f := outputFormat(s); f {
	case outputText, outputYAML:
		*o = f
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text or yaml)", s)
	}
}

// emit writes text in text mode and doc as a YAML document otherwise.
func emit(cmd *cobra.Command, opts *globalOptions, text string, doc any) error {
	out := cmd.OutOrStdout()
	if opts.output != outputYAML {
		_, err := fmt.Fprintln(out, text)
		return err
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	return enc.Close()
}
