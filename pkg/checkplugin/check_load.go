package checkplugin

import (
	"fmt"
	"strconv"
	"strings"

	cpuinfo "github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/load"
)

func init() {
	RegisterCheck("load", func() CheckHandler { return &CheckLoad{} })
}

// CheckLoad checks the cpu load averages. Thresholds apply to the highest of
// the three averages, ex.: warn=20 crit=30. With percpu the averages are
// divided by the number of cpu cores first.
type CheckLoad struct {
	warning  float64
	critical float64
	perCPU   bool
}

func (l *CheckLoad) Check(ctx *CheckContext, args []string) (*CheckResult, error) {
	if err := l.parseArgs(args); err != nil {
		return nil, err
	}

	loadStat, err := load.Avg()
	if err != nil {
		return nil, fmt.Errorf("load.Avg(): %s", err.Error())
	}

	load1 := loadStat.Load1
	load5 := loadStat.Load5
	load15 := loadStat.Load15
	if l.perCPU {
		numCPU, err2 := cpuinfo.Counts(true)
		if err2 != nil {
			return nil, fmt.Errorf("cpuinfo: %s", err2.Error())
		}
		if numCPU == 0 {
			return nil, fmt.Errorf("cpu count is zero")
		}
		load1 /= float64(numCPU)
		load5 /= float64(numCPU)
		load15 /= float64(numCPU)
	}

	maxLoad := load1
	if load5 > maxLoad {
		maxLoad = load5
	}
	if load15 > maxLoad {
		maxLoad = load15
	}

	state := CheckExitOK
	switch {
	case l.critical > 0 && maxLoad > l.critical:
		state = CheckExitCritical
	case l.warning > 0 && maxLoad > l.warning:
		state = CheckExitWarning
	}

	zero := float64(0)
	metrics := make([]*CheckMetric, 0, 3)
	for _, entry := range []struct {
		name string
		val  float64
	}{{"load1", load1}, {"load5", load5}, {"load15", load15}} {
		metrics = append(metrics, &CheckMetric{
			Name:     entry.name,
			Value:    strconv.FormatFloat(entry.val, 'f', 2, 64),
			Warning:  l.thresholdString(l.warning),
			Critical: l.thresholdString(l.critical),
			Min:      &zero,
		})
	}

	output := fmt.Sprintf("load average: %.2f, %.2f, %.2f", load1, load5, load15)

	return ctx.SetExit(state, output, MetricsString(metrics))
}

func (l *CheckLoad) thresholdString(val float64) string {
	if val <= 0 {
		return ""
	}

	return strconv.FormatFloat(val, 'f', -1, 64)
}

func (l *CheckLoad) parseArgs(args []string) error {
	for _, arg := range args {
		if arg == "percpu" {
			l.perCPU = true

			continue
		}
		keyVal := strings.SplitN(arg, "=", 2)
		if len(keyVal) != 2 {
			return fmt.Errorf("unknown argument: %s", arg)
		}
		num, err := strconv.ParseFloat(keyVal[1], 64)
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
