package checkplugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckResultStateString(t *testing.T) {
	for state, expect := range map[int64]string{
		CheckExitOK:       "OK",
		CheckExitWarning:  "WARNING",
		CheckExitCritical: "CRITICAL",
		CheckExitUnknown:  "UNKNOWN",
		42:                "UNKNOWN",
	} {
		res := &CheckResult{State: state}
		assert.Equalf(t, expect, res.StateString(), "state string for %d", state)
	}
}

func TestCheckResultPluginOutput(t *testing.T) {
	res := &CheckResult{
		State:  CheckExitOK,
		Output: "Looks good",
		Stats:  "stat1=123;stat2=321",
	}
	assert.Equalf(t, "Looks good|stat1=123;stat2=321", string(res.BuildPluginOutput()), "plugin output with stats")
}

func TestCheckResultPluginOutputNoStats(t *testing.T) {
	// empty stats and stats without any word character both omit the separator
	for _, stats := range []string{"", "   ", "|;;"} {
		res := &CheckResult{
			State:  CheckExitWarning,
			Output: "something off",
			Stats:  stats,
		}
		assert.Equalf(t, "something off", string(res.BuildPluginOutput()), "plugin output for stats %q", stats)
	}
}

func TestCheckResultEscalateStatus(t *testing.T) {
	res := &CheckResult{State: CheckExitOK}
	res.EscalateStatus(CheckExitWarning)
	assert.Equalf(t, CheckExitWarning, res.State, "state escalated")
	res.EscalateStatus(CheckExitOK)
	assert.Equalf(t, CheckExitWarning, res.State, "state not lowered")
}
