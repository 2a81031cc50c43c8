package main

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/vic/lamb/pkg/lambda"
)

// strategyFlag resolves a strategy name (or alias) when the flag is set.
type strategyFlag struct {
	name   string
	reduce lambda.Strategy
}

var _ pflag.Value = (*strategyFlag)(nil)

func newStrategyFlag(name string) *strategyFlag {
	f := &strategyFlag{}
	if err := f.Set(name); err != nil {
		panic(err)
	}
	return f
}

func (f *strategyFlag) String() string { return f.name }
func (f *strategyFlag) Type() string   { return "strategy" }

func (f *strategyFlag) Set(s string) error {
	reduce, err := lambda.LookupStrategy(s)
	if err != nil {
		return err
	}
	f.name = s
	f.reduce = reduce
	return nil
}

func strategyUsage() string {
	return "reduction strategy (" + strings.Join(lambda.Strategies(), ", ") + ")"
}
