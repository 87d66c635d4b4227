//go:build windows || plan9

package checkplugin

import (
	"fmt"
	"io"
)

func newSyslogWriter() (io.Writer, error) {
	return nil, fmt.Errorf("syslog is not supported on this platform")
}
