//go:build !windows && !plan9

package checkplugin

import (
	"io"
	"log/syslog"
)

func newSyslogWriter() (io.Writer, error) {
	return syslog.New(syslog.LOG_INFO|syslog.LOG_DAEMON, NAME)
}
