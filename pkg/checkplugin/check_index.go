package checkplugin

import (
	"sort"
	"strings"
)

func init() {
	RegisterCheck("index", func() CheckHandler { return &CheckIndex{} })
}

// CheckIndex returns the list of known checks.
type CheckIndex struct{}

func (l *CheckIndex) Check(ctx *CheckContext, _ []string) (*CheckResult, error) {
	keys := make([]string, 0, len(AvailableChecks))
	for k := range AvailableChecks {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return ctx.SetExit(CheckExitOK, strings.Join(keys, ", "), "")
}
