package checkplugin

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCheckCaseInsensitive(t *testing.T) {
	plugin := StartTestPlugin(t, "")

	res := plugin.RunCheck("EXAMPLE", []string{"0", "all", "good"})
	assert.Equalf(t, CheckExitOK, res.State, "state OK")
	assert.Equalf(t, "all good", string(res.BuildPluginOutput()), "plugin output")
}

func TestRunCheckDefaultsToExample(t *testing.T) {
	plugin := StartTestPlugin(t, "")

	res := plugin.RunCheck("", nil)
	assert.Equalf(t, CheckExitOK, res.State, "state OK")
	assert.Equalf(t, "Example check", res.Output, "plugin output")
}

func TestRunCheckNotFound(t *testing.T) {
	plugin := StartTestPlugin(t, "")

	res := plugin.RunCheck("missing", nil)
	assert.Equalf(t, CheckExitCritical, res.State, "state CRITICAL")
	assert.Equalf(t, "Check not found.", string(res.BuildPluginOutput()), "plugin output")
}

func TestRunCheckHandlerError(t *testing.T) {
	plugin := StartTestPlugin(t, "")

	RegisterCheck("broken", func() CheckHandler { return &brokenCheck{} })
	defer delete(AvailableChecks, "broken")

	res := plugin.RunCheck("broken", nil)
	assert.Equalf(t, CheckExitCritical, res.State, "handler errors become CRITICAL")
	assert.Equalf(t, "kaputt", res.Output, "plugin output")
}

func TestRunCheckInvalidStateFromArgs(t *testing.T) {
	plugin := StartTestPlugin(t, "")

	// the example check passes the requested state through SetExit which
	// rejects anything outside of 0-3
	res := plugin.RunCheck("example", []string{"7"})
	assert.Equalf(t, CheckExitCritical, res.State, "invalid state funneled into CRITICAL")
	assert.Containsf(t, res.Output, "exit code must be one of", "plugin output")
}

func TestRunCheckDisabledByConfig(t *testing.T) {
	plugin := StartTestPlugin(t, `
[/checks]
example = disabled
uptime = enabled
`)

	res := plugin.RunCheck("example", nil)
	assert.Equalf(t, CheckExitCritical, res.State, "disabled check is not dispatchable")
	assert.Equalf(t, "Check not found.", res.Output, "plugin output")
}

func TestRegisterCheckShadows(t *testing.T) {
	RegisterCheck("Shadowed", func() CheckHandler { return &staticCheck{output: "first"} })
	RegisterCheck("shadowed", func() CheckHandler { return &staticCheck{output: "second"} })
	defer delete(AvailableChecks, "shadowed")

	plugin := StartTestPlugin(t, "")
	res := plugin.RunCheck("shadowed", nil)
	assert.Equalf(t, "second", res.Output, "later registration shadows the earlier one")
}

func TestListChecks(t *testing.T) {
	plugin := StartTestPlugin(t, `
[/checks]
my_custom_probe = enabled
`)

	buf := &bytes.Buffer{}
	res := plugin.ListChecks(buf)
	assert.Equalf(t, CheckExitOK, res.State, "state OK")
	assert.Equalf(t, "Check list complete.", res.Output, "plugin output")
	assert.Containsf(t, buf.String(), "check: example\n", "builtin listed")
	assert.Containsf(t, buf.String(), "check: my_custom_probe\n", "config enumerated check listed")
}

func TestCheckIndex(t *testing.T) {
	plugin := StartTestPlugin(t, "")

	res := plugin.RunCheck("index", nil)
	assert.Equalf(t, CheckExitOK, res.State, "state OK")
	assert.Containsf(t, res.Output, "example", "example listed")
	assert.Containsf(t, res.Output, "uptime", "uptime listed")
}

type brokenCheck struct{}

func (l *brokenCheck) Check(_ *CheckContext, _ []string) (*CheckResult, error) {
	return nil, fmt.Errorf("kaputt")
}

type staticCheck struct {
	output string
}

func (l *staticCheck) Check(ctx *CheckContext, _ []string) (*CheckResult, error) {
	return ctx.SetExit(CheckExitOK, l.output, "")
}

func TestNewPluginBrokenConfig(t *testing.T) {
	tmp := t.TempDir()
	require.NotEmptyf(t, tmp, "temp dir created")

	flags := &PluginFlags{ConfigFiles: []string{tmp + "/missing.ini"}, Quiet: true}
	_, err := NewPlugin(flags)
	require.Errorf(t, err, "missing config file fails construction")
}
