package checkplugin

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	RegisterCheck("example", func() CheckHandler { return &CheckExample{} })
}

// CheckExample simply sets the state to the given value and reports the
// remaining arguments. It is the default dispatch target.
type CheckExample struct{}

func (l *CheckExample) Check(ctx *CheckContext, args []string) (*CheckResult, error) {
	state := CheckExitOK
	output := "Example check"

	if len(args) > 0 {
		res, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse state to int: %s", err.Error())
		}
		state = res
	}

	if len(args) > 1 {
		output = strings.Join(args[1:], " ")
	}

	return ctx.SetExit(state, output, "")
}
