package checkplugin

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/host"
)

func init() {
	RegisterCheck("uptime", func() CheckHandler { return &CheckUptime{} })
}

// CheckUptime checks the time since the last reboot. Thresholds are given in
// seconds, ex.: warn=172800 crit=86400, and trigger when the uptime falls
// below them.
type CheckUptime struct {
	warning  int64
	critical int64
}

func (l *CheckUptime) Check(ctx *CheckContext, args []string) (*CheckResult, error) {
	if err := l.parseArgs(args); err != nil {
		return nil, err
	}

	bootTime, err := host.BootTime()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve uptime: %s", err.Error())
	}
	bootTimeUnix := time.Unix(int64(bootTime), 0)
	uptime := time.Since(bootTimeUnix)
	seconds := int64(uptime.Seconds())

	state := CheckExitOK
	switch {
	case l.critical > 0 && seconds < l.critical:
		state = CheckExitCritical
	case l.warning > 0 && seconds < l.warning:
		state = CheckExitWarning
	}

	zero := float64(0)
	metric := &CheckMetric{
		Name:  "uptime",
		Unit:  "s",
		Value: seconds,
		Min:   &zero,
	}
	if l.warning > 0 {
		metric.Warning = fmt.Sprintf("%d:", l.warning)
	}
	if l.critical > 0 {
		metric.Critical = fmt.Sprintf("%d:", l.critical)
	}

	output := fmt.Sprintf("uptime: %s, boot: %s (UTC)",
		durationString(uptime), bootTimeUnix.UTC().Format("2006-01-02 15:04:05"))

	return ctx.SetExit(state, output, metric.String())
}

func (l *CheckUptime) parseArgs(args []string) error {
	for _, arg := range args {
		keyVal := strings.SplitN(arg, "=", 2)
		if len(keyVal) != 2 {
			return fmt.Errorf("unknown argument: %s", arg)
		}
		num, err := strconv.ParseInt(keyVal[1], 10, 64)
		if err != nil {
			return fmt.Errorf("cannot parse threshold %s: %s", arg, err.Error())
		}
		switch keyVal[0] {
		case "warn", "warning":
			l.warning = num
		case "crit", "critical":
			l.critical = num
		default:
			return fmt.Errorf("unknown argument: %s", keyVal[0])
		}
	}

	return nil
}

// durationString returns a compact human readable duration, ex.: "3d 02:30h"
func durationString(dur time.Duration) string {
	seconds := int64(dur.Seconds())
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60

	if days > 0 {
		return fmt.Sprintf("%dd %02d:%02dh", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%02d:%02dh", hours, minutes)
	}

	return fmt.Sprintf("%dm %02ds", minutes, seconds%60)
}
