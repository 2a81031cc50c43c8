package gentests

import _ "embed"
import "testing"
import "github.com/vic/lamb/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_002_id_id_Step(t *testing.T) {
	gentests.CheckStep(t, "002_id_id", "normal-order", input, output)
}
