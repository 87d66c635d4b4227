package checkplugin

import (
	"regexp"
)

const (
	// CheckExitOK is used for normal exits.
	CheckExitOK = int64(0)

	// CheckExitWarning is used for warnings.
	CheckExitWarning = int64(1)

	// CheckExitCritical is used for critical errors.
	CheckExitCritical = int64(2)

	// CheckExitUnknown is used for when the check runs into a problem itself.
	CheckExitUnknown = int64(3)
)

// the stats segment is only printed when it contains at least one word character
var reWordCharacter = regexp.MustCompile(`\w`)

// CheckResult is the final outcome of a single check invocation. It is
// computed by CheckContext.Finalize and carried up to the top level driver
// which performs the actual process exit, see CleanExit.
type CheckResult struct {
	State  int64
	Output string
	Stats  string
}

func (cr *CheckResult) StateString() string {
	switch cr.State {
	case 0:
		return "OK"
	case 1:
		return "WARNING"
	case 2:
		return "CRITICAL"
	}

	return "UNKNOWN"
}

// EscalateStatus raises the state, it never lowers a previously raised one.
func (cr *CheckResult) EscalateStatus(state int64) {
	if state > cr.State {
		cr.State = state
	}
}

// BuildPluginOutput returns the single line consumed by the monitoring
// agent. Stats and the pipe separator are omitted entirely unless the stats
// string contains at least one word character.
func (cr *CheckResult) BuildPluginOutput() []byte {
	output := []byte(cr.Output)
	if reWordCharacter.MatchString(cr.Stats) {
		output = append(output, '|')
		output = append(output, []byte(cr.Stats)...)
	}

	return output
}
