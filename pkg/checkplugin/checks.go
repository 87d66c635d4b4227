package checkplugin

import (
	"strings"
)

// AvailableChecks contains all registered checks by name.
var AvailableChecks = make(map[string]CheckEntry)

// CheckHandler runs a single check and reports its outcome through the given
// context, either by finalizing it or by returning an error which is then
// funneled into a CRITICAL outcome.
type CheckHandler interface {
	Check(ctx *CheckContext, args []string) (*CheckResult, error)
}

type CheckEntry struct {
	Name    string
	Handler func() CheckHandler
}

// RegisterCheck adds a named check. Names are matched case-insensitively,
// registering a name again silently shadows the previous handler.
func RegisterCheck(name string, factory func() CheckHandler) {
	name = strings.ToLower(name)
	AvailableChecks[name] = CheckEntry{name, factory}
}
