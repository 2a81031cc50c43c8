package gentests

import _ "embed"
import "testing"
import "github.com/vic/lamb/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_041_let_id_Step(t *testing.T) {
	gentests.CheckStep(t, "041_let_id", "normal-order", input, output)
}
