package checkplugin

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
)

const (
	// NAME contains the name of this library.
	NAME = "checkplugin"

	// VERSION contains the actual version.
	VERSION = "0.1"

	// DefaultCheck is dispatched when no check name was requested.
	DefaultCheck = "example"
)

// the output and exit sequence runs at most once per process
var exitOnce sync.Once

// PluginFlags contains the command line flags shared by all commands.
type PluginFlags struct {
	ConfigFiles []string
	LogLevel    string
	LogFile     string
	LogFormat   string
	Verbose     int
	Quiet       bool
	Version     bool
}

// Plugin ties configuration, logging and the check registry together for a
// single one-shot invocation.
type Plugin struct {
	Config *Config
	flags  *PluginFlags
}

// NewPlugin loads and validates the configuration and sets up the logger.
// Configuration errors are fatal, a Plugin is never created from a broken
// config.
func NewPlugin(flags *PluginFlags) (*Plugin, error) {
	if flags == nil {
		flags = &PluginFlags{}
	}
	plugin := &Plugin{
		Config: NewConfig(),
		flags:  flags,
	}

	for _, file := range flags.ConfigFiles {
		if err := plugin.Config.ReadINI(file); err != nil {
			return nil, err
		}
	}
	if err := plugin.Config.Validate(); err != nil {
		return nil, err
	}
	if err := plugin.createLogger(); err != nil {
		return nil, err
	}

	return plugin, nil
}

func (p *Plugin) createLogger() error {
	conf := p.Config.Section("/settings/log")
	defaults := p.Config.Section("/settings/default")

	level, ok := conf.GetString("level")
	if !ok {
		level = "info"
	}
	switch {
	case p.flags.Quiet:
		level = "error"
	case p.flags.Verbose == 1:
		level = "debug"
	case p.flags.Verbose >= 2:
		level = "trace"
	case p.flags.LogLevel != "":
		level = p.flags.LogLevel
	}
	setLogLevel(level)

	if p.flags.LogFormat != "" {
		log.SetFormatter(BuildFormatter(p.flags.LogFormat))
	}

	return setLogTarget(conf, defaults, p.flags.LogFile)
}

// NewContext creates a CheckContext from the loaded configuration.
func (p *Plugin) NewContext() (*CheckContext, error) {
	return NewCheckContext(p.Config)
}

// RunCheck resolves the requested name against the registered checks and
// runs the match. An empty name dispatches the default check. Misses and
// handler failures are funneled into CRITICAL outcomes, RunCheck always
// returns a usable result.
func (p *Plugin) RunCheck(name string, args []string) *CheckResult {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultCheck
	}
	log.Tracef("command: %s", name)
	log.Tracef("args: %#v", args)

	ctx, err := NewCheckContext(p.Config)
	if err != nil {
		// cannot happen, NewPlugin validated the config already
		ctx = &CheckContext{conf: p.Config}
	}

	check, ok := AvailableChecks[name]
	if ok && p.Config.CheckDisabled(name) {
		log.Debugf("check %s is disabled by config", name)
		ok = false
	}
	if !ok {
		return ctx.Error("Check not found.")
	}

	res, err := check.Handler().Check(ctx, args)
	if err != nil {
		return ctx.Error(err.Error())
	}
	if res == nil {
		res = ctx.Finalize()
	}

	return res
}

// ListChecks writes one "check: <name>" line per known check, including the
// names enumerated in the /checks config section, and returns the OK
// outcome. This is a diagnostic operation, not a monitoring path.
func (p *Plugin) ListChecks(writer io.Writer) *CheckResult {
	seen := make(map[string]bool)
	for name := range AvailableChecks {
		seen[name] = true
	}
	for _, name := range p.Config.CheckNames() {
		seen[name] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(writer, "check: %s\n", name)
	}

	return &CheckResult{
		State:  CheckExitOK,
		Output: "Check list complete.",
	}
}

// PrintVersion prints the version.
func (p *Plugin) PrintVersion() {
	fmt.Fprintf(os.Stdout, "%s v%s\n", NAME, VERSION)
}

// CleanExit writes the plugin output line to stdout and terminates the
// process with the outcome state. This is the only exit path for a check
// invocation and it runs at most once per process.
func CleanExit(res *CheckResult) {
	exitOnce.Do(func() {
		fmt.Fprintf(os.Stdout, "%s\n", res.BuildPluginOutput())
		os.Exit(int(res.State))
	})
}
