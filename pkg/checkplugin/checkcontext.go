package checkplugin

import (
	"fmt"
	"strings"
)

const (
	// DefaultMessage is substituted for an exit message which was never set.
	DefaultMessage = "Unknown"

	// DefaultErrorMessage is used by Error when called without a message.
	DefaultErrorMessage = "Unknown error"
)

// CheckContext is the mutable state container for one check invocation. A
// check reports its outcome by assigning an exit code, message and stats and
// finalizing, usually through one of the severity helpers.
type CheckContext struct {
	exitCode    *int64
	exitMessage *string
	exitStats   *string
	verbose     bool
	logging     bool
	conf        *Config
}

// NewCheckContext creates a context for a single invocation. Configuration
// errors are fatal here, they are never silently defaulted.
func NewCheckContext(conf *Config) (*CheckContext, error) {
	ctx := &CheckContext{conf: conf}
	if conf == nil {
		return ctx, nil
	}

	section := conf.Section("/settings/default")
	logging, _, err := section.GetBool("log")
	if err != nil {
		return nil, fmt.Errorf("config error in [/settings/default]: %s", err.Error())
	}
	ctx.logging = logging

	verbose, _, err := section.GetBool("verbose")
	if err != nil {
		return nil, fmt.Errorf("config error in [/settings/default]: %s", err.Error())
	}
	ctx.verbose = verbose

	return ctx, nil
}

// Config returns the configuration this context was created from, may be nil.
func (ctx *CheckContext) Config() *Config {
	return ctx.conf
}

// SetExitCode assigns the pending exit code. Values outside of the four
// severities fail with ErrInvalidExitCode and leave the previous state
// untouched.
func (ctx *CheckContext) SetExitCode(code int64) error {
	switch code {
	case CheckExitOK, CheckExitWarning, CheckExitCritical, CheckExitUnknown:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidExitCode, code)
	}
	ctx.exitCode = &code

	return nil
}

// ExitCode returns the pending exit code, defaulting to unknown while unset.
func (ctx *CheckContext) ExitCode() int64 {
	if ctx.exitCode == nil {
		return CheckExitUnknown
	}

	return *ctx.exitCode
}

// SetExitMessage assigns the pending exit message. Messages without any word
// character fail with ErrEmptyMessage and leave the previous state untouched.
func (ctx *CheckContext) SetExitMessage(message string) error {
	if !reWordCharacter.MatchString(message) {
		return fmt.Errorf("%w: %q", ErrEmptyMessage, message)
	}
	ctx.exitMessage = &message

	return nil
}

// SetExitStats assigns the pending stats string. An empty string is a valid
// value and explicitly means no stats.
func (ctx *CheckContext) SetExitStats(stats string) {
	ctx.exitStats = &stats
}

// SetExitMetrics renders the given metrics into the pending stats string.
func (ctx *CheckContext) SetExitMetrics(metrics ...*CheckMetric) {
	ctx.SetExitStats(MetricsString(metrics))
}

// ExitStats returns the pending stats string. Reading stats which were never
// initialized fails with ErrUndefinedStats.
func (ctx *CheckContext) ExitStats() (string, error) {
	if ctx.exitStats == nil {
		return "", ErrUndefinedStats
	}

	return *ctx.exitStats, nil
}

// SetExit is the unified path behind the severity helpers. It assigns code,
// message and stats in this order and finalizes. An empty message defaults
// to "Unknown".
func (ctx *CheckContext) SetExit(code int64, message, stats string) (*CheckResult, error) {
	if err := ctx.SetExitCode(code); err != nil {
		return nil, err
	}
	if message == "" {
		message = DefaultMessage
	}
	if err := ctx.SetExitMessage(message); err != nil {
		return nil, err
	}
	ctx.SetExitStats(stats)

	return ctx.Finalize(), nil
}

// ExitOK finalizes with the OK severity.
func (ctx *CheckContext) ExitOK(message, stats string) *CheckResult {
	return ctx.exit(CheckExitOK, message, stats)
}

// ExitWarning finalizes with the WARNING severity.
func (ctx *CheckContext) ExitWarning(message, stats string) *CheckResult {
	return ctx.exit(CheckExitWarning, message, stats)
}

// ExitCritical finalizes with the CRITICAL severity.
func (ctx *CheckContext) ExitCritical(message, stats string) *CheckResult {
	return ctx.exit(CheckExitCritical, message, stats)
}

// ExitUnknown finalizes with the UNKNOWN severity.
func (ctx *CheckContext) ExitUnknown(message, stats string) *CheckResult {
	return ctx.exit(CheckExitUnknown, message, stats)
}

func (ctx *CheckContext) exit(code int64, message, stats string) *CheckResult {
	if !reWordCharacter.MatchString(message) {
		// blank messages count as omitted here, the helpers stay total
		message = DefaultMessage
	}
	res, err := ctx.SetExit(code, message, stats)
	if err != nil {
		// not reachable with the fixed severity constants
		return ctx.Error(err.Error())
	}

	return res
}

// Error converts a runtime failure into a monitoring visible CRITICAL
// outcome. The message is logged at error level once and the CRITICAL state
// overrides any previously assigned exit code.
func (ctx *CheckContext) Error(message string) *CheckResult {
	if message == "" {
		message = DefaultErrorMessage
	}
	log.Errorf("%s", message)

	code := CheckExitCritical
	ctx.exitCode = &code
	if reWordCharacter.MatchString(message) {
		ctx.exitMessage = &message
	}

	return ctx.Finalize()
}

// Info logs the given message at info level, the exit state is not touched.
func (ctx *CheckContext) Info(message string) {
	if message == "" {
		message = "Unknown info"
	}
	log.Infof("%s", message)
}

// Debug logs the given message at debug level, the exit state is not touched.
func (ctx *CheckContext) Debug(message string) {
	if message == "" {
		message = "Unknown debug"
	}
	log.Debugf("%s", message)
}

// Finalize reads back the pending state, applies the default-on-missing
// rules and returns the outcome: unset code becomes UNKNOWN, unset message
// becomes "Unknown", unset stats become the empty string. Trailing
// whitespace is trimmed from message and stats. The process exit itself
// happens in CleanExit, exactly once.
func (ctx *CheckContext) Finalize() *CheckResult {
	message := DefaultMessage
	if ctx.exitMessage != nil {
		message = *ctx.exitMessage
	}
	stats := ""
	if ctx.exitStats != nil {
		stats = *ctx.exitStats
	}

	return &CheckResult{
		State:  ctx.ExitCode(),
		Output: strings.TrimRight(message, " \t\r\n"),
		Stats:  strings.TrimRight(stats, " \t\r\n"),
	}
}
