package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vic/lamb/pkg/lambda"
	"gopkg.in/yaml.v3"
)

type TestCase struct {
	Name     string `yaml:"name"`
	Strategy string `yaml:"strategy"`
	Input    string `yaml:"input"`
	Output   string `yaml:"output,omitempty"`
}

const stepTemplate = `package gentests

import _ "embed"
import "testing"
import "github.com/vic/lamb/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_%s_Step(t *testing.T) {
	gentests.CheckStep(t, %q, %q, input, output)
}
`

const stuckTemplate = `package gentests

import _ "embed"
import "testing"
import "github.com/vic/lamb/cmd/gentests/helper"

//go:embed input.lam
var input string

func Test_%s_Stuck(t *testing.T) {
	gentests.CheckStuck(t, %q, %q, input)
}
`

var nonIdent = regexp.MustCompile(`[^A-Za-z0-9_]`)

func main() {
	casesFile := pflag.String("cases", "cmd/gentests/cases.yaml", "YAML file listing the cases")
	baseDir := pflag.String("out", "cmd/gentests/generated", "directory receiving one sub-directory per case")
	pflag.Parse()

	tests, err := loadCases(*casesFile)
	if err != nil {
		logrus.Fatal(err)
	}

	written := 0
	for _, tc := range tests {
		if err := generate(*baseDir, tc); err != nil {
			logrus.WithField("case", tc.Name).Error(err)
			continue
		}
		written++
	}

	fmt.Printf("Generated %d tests\n", written)
}

func loadCases(path string) ([]TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading cases")
	}
	var tests []TestCase
	if err := yaml.Unmarshal(data, &tests); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return tests, nil
}

func generate(baseDir string, tc TestCase) error {
	if _, err := lambda.LookupStrategy(tc.Strategy); err != nil {
		return err
	}

	// Fixtures hold the canonical textual form.
	inTerm, err := lambda.Parse(tc.Input)
	if err != nil {
		return errors.Wrap(err, "parsing input")
	}

	dir := filepath.Join(baseDir, tc.Name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "input.lam"), []byte(inTerm.String()), 0o644); err != nil {
		return err
	}

	ident := nonIdent.ReplaceAllString(tc.Name, "_")
	testGo := fmt.Sprintf(stuckTemplate, ident, tc.Name, tc.Strategy)
	if tc.Output != "" {
		outTerm, err := lambda.Parse(tc.Output)
		if err != nil {
			return errors.Wrap(err, "parsing output")
		}
		if err := os.WriteFile(filepath.Join(dir, "output.lam"), []byte(outTerm.String()), 0o644); err != nil {
			return err
		}
		testGo = fmt.Sprintf(stepTemplate, ident, tc.Name, tc.Strategy)
	}

	logrus.WithField("case", tc.Name).Debug("writing test")
	return os.WriteFile(filepath.Join(dir, "reduction_test.go"), []byte(testGo), 0o644)
}
