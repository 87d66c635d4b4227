package checkplugin

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// CheckMetric contains a single performance value.
type CheckMetric struct {
	Name     string
	Unit     string
	Value    interface{}
	Warning  string
	Critical string
	Min      *float64
	Max      *float64
}

func (m *CheckMetric) String() string {
	var res bytes.Buffer

	res.WriteString(fmt.Sprintf("'%s'=%v%s", m.Name, m.Value, m.Unit))

	res.WriteString(";")
	res.WriteString(m.Warning)

	res.WriteString(";")
	res.WriteString(m.Critical)

	res.WriteString(";")
	if m.Min != nil {
		res.WriteString(strconv.FormatFloat(*m.Min, 'f', -1, 64))
	}

	res.WriteString(";")
	if m.Max != nil {
		res.WriteString(strconv.FormatFloat(*m.Max, 'f', -1, 64))
	}

	resStr := res.String()
	// strip trailing semicolons
	for strings.HasSuffix(resStr, ";") {
		resStr = strings.TrimSuffix(resStr, ";")
	}

	return resStr
}

// MetricsString joins the given metrics into a stats string suitable for the
// plugin output line.
func MetricsString(metrics []*CheckMetric) string {
	perf := make([]string, 0, len(metrics))
	for _, m := range metrics {
		perf = append(perf, m.String())
	}

	return strings.Join(perf, " ")
}
