package gentests

import _ "embed"
import "testing"
import "github.com/vic/lamb/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_004_k_2_Step(t *testing.T) {
	gentests.CheckStep(t, "004_k_2", "call-by-name", input, output)
}
