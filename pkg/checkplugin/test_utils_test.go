package checkplugin

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func init() {
	level := "error"
	// set log level from env
	if env := os.Getenv("CHECKPLUGIN_VERBOSE"); env != "" {
		level = env
	}
	setLogLevel(level)
}

// Builds a full Plugin from given config
func StartTestPlugin(t *testing.T, config string) *Plugin {
	t.Helper()

	tmpConfig, err := os.CreateTemp(t.TempDir(), "testconfig")
	require.NoErrorf(t, err, "tmp config created")
	_, err = tmpConfig.WriteString(config)
	require.NoErrorf(t, err, "tmp config written")
	err = tmpConfig.Close()
	require.NoErrorf(t, err, "tmp config closed")

	flags := &PluginFlags{
		ConfigFiles: []string{tmpConfig.Name()},
		Quiet:       true,
	}
	plugin, err := NewPlugin(flags)
	require.NoErrorf(t, err, "plugin created")

	return plugin
}
