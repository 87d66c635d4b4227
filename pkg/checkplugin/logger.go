package checkplugin

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kdar/factorlog"
)

// define all available log level.
const (
	// LogVerbosityNone disables logging.
	LogVerbosityNone = 0

	// LogVerbosityDefault sets the default log level.
	LogVerbosityDefault = 1

	// LogVerbosityDebug sets the debug log level.
	LogVerbosityDebug = 2

	// LogVerbosityTrace sets trace log level.
	LogVerbosityTrace = 3
)

var (
	DateTimeLogFormat = `[%{Date} %{Time "15:04:05.000"}]`
	LogFormat         = `[%{Severity}][pid:%{Pid}][%{ShortFile}:%{Line}] %{Message}`

	// stdout carries the plugin result line, logs default to stderr
	log                    = factorlog.New(os.Stderr, BuildFormatter(DateTimeLogFormat+LogFormat))
	targetWriter io.Writer = os.Stderr
)

func setLogLevel(level string) {
	switch strings.ToLower(level) {
	case "off":
		log.SetMinMaxSeverity(factorlog.StringToSeverity("PANIC"), factorlog.StringToSeverity("PANIC"))
		log.SetVerbosity(LogVerbosityNone)
	case "error", "info":
		log.SetMinMaxSeverity(factorlog.StringToSeverity(strings.ToUpper(level)), factorlog.StringToSeverity("PANIC"))
		log.SetVerbosity(LogVerbosityDefault)
	case "debug":
		log.SetMinMaxSeverity(factorlog.StringToSeverity(strings.ToUpper(level)), factorlog.StringToSeverity("PANIC"))
		log.SetVerbosity(LogVerbosityDebug)
	case "trace":
		log.SetMinMaxSeverity(factorlog.StringToSeverity(strings.ToUpper(level)), factorlog.StringToSeverity("PANIC"))
		log.SetVerbosity(LogVerbosityTrace)
	case "":
	default:
		log.Errorf("unknown log level: %s", level)
	}
}

// setLogTarget builds the log writer from the /settings/log section and the
// /settings/default switches: "log" adds the syslog backend, "verbose"
// mirrors everything to stdout.
func setLogTarget(conf, defaults *ConfigSection, flagLogFile string) error {
	file, _ := conf.GetString("file name")
	// override from cmd flags
	if flagLogFile != "" {
		file = flagLogFile
	}

	var base io.Writer
	switch file {
	case "stderr", "":
		base = os.Stderr
	case "stdout":
		base = os.Stdout
	case "syslog":
		writer, err := newSyslogWriter()
		if err != nil {
			return fmt.Errorf("failed to open syslog: %s", err.Error())
		}
		base = writer
	default:
		fHandle, err := os.OpenFile(file, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open logfile %s: %s", file, err.Error())
		}
		base = fHandle
	}

	writers := []io.Writer{base}

	if enabled, _, err := defaults.GetBool("log"); err == nil && enabled && file != "syslog" {
		writer, sysErr := newSyslogWriter()
		if sysErr != nil {
			return fmt.Errorf("failed to open syslog: %s", sysErr.Error())
		}
		writers = append(writers, writer)
	}

	if verbose, _, err := defaults.GetBool("verbose"); err == nil && verbose && base != os.Stdout {
		writers = append(writers, os.Stdout)
	}

	targetWriter = io.MultiWriter(writers...)

	if format, ok := conf.GetString("format"); ok && format != "" {
		log.SetFormatter(BuildFormatter(format))
	}
	log.SetOutput(targetWriter)

	return nil
}

func BuildFormatter(format string) *factorlog.StdFormatter {
	format = strings.ReplaceAll(format, "%{Pid}", fmt.Sprintf("%d", os.Getpid()))

	return factorlog.NewStdFormatter(format)
}

func LogError(err error) {
	if err != nil {
		logErr := log.Output(factorlog.ERROR, 2, err.Error())
		if logErr != nil {
			LogStderrf("failed to log: %s (%s)", err.Error(), logErr.Error())
		}
	}
}

func LogStderrf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
