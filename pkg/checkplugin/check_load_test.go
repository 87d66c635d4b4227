package checkplugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckLoad(t *testing.T) {
	plugin := StartTestPlugin(t, "")

	res := plugin.RunCheck("load", []string{"warn=9999", "crit=10000"})
	assert.Equalf(t, CheckExitOK, res.State, "state OK")
	assert.Regexpf(t,
		`^load average: \d+\.\d+, \d+\.\d+, \d+\.\d+\|'load1'=\d+\.\d+;9999;10000;0 'load5'=\d+\.\d+;9999;10000;0 'load15'=\d+\.\d+;9999;10000;0$`,
		string(res.BuildPluginOutput()),
		"output matches",
	)
}

func TestCheckLoadPerCPU(t *testing.T) {
	plugin := StartTestPlugin(t, "")

	res := plugin.RunCheck("load", []string{"percpu"})
	assert.Equalf(t, CheckExitOK, res.State, "state OK")
	assert.Regexpf(t, `^load average: `, res.Output, "output matches")
}

func TestCheckLoadParseArgs(t *testing.T) {
	check := &CheckLoad{}
	err := check.parseArgs([]string{"warn=20", "crit=30", "percpu"})
	assert.NoErrorf(t, err, "args parsed")
	assert.InDeltaf(t, 20.0, check.warning, 0.001, "warning threshold")
	assert.InDeltaf(t, 30.0, check.critical, 0.001, "critical threshold")
	assert.Truef(t, check.perCPU, "percpu enabled")

	assert.Equalf(t, "30", check.thresholdString(check.critical), "threshold string")
	assert.Equalf(t, "", check.thresholdString(0), "unset thresholds render empty")
}

func TestCheckLoadBadArgs(t *testing.T) {
	plugin := StartTestPlugin(t, "")

	res := plugin.RunCheck("load", []string{"warn=high"})
	assert.Equalf(t, CheckExitCritical, res.State, "bad threshold becomes CRITICAL")
	assert.Containsf(t, res.Output, "cannot parse threshold", "plugin output")
}
