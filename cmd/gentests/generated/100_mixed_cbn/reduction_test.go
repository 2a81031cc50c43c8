package gentests

import _ "embed"
import "testing"
import "github.com/vic/lamb/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_100_mixed_cbn_Step(t *testing.T) {
	gentests.CheckStep(t, "100_mixed_cbn", "call-by-name", input, output)
}
