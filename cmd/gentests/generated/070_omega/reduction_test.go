package gentests

import _ "embed"
import "testing"
import "github.com/vic/lamb/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_070_omega_Step(t *testing.T) {
	gentests.CheckStep(t, "070_omega", "call-by-name", input, output)
}
