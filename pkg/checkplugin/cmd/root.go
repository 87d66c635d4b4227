package cmd

import (
	"fmt"
	"os"

	"github.com/consol-monitoring/checkplugin/pkg/checkplugin"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "checkplugin [global flags] [command]",
	Short: "Convention toolkit for Naemon and Nagios NRPE-style check plugins.",
	Long: `checkplugin standardizes exit codes, plugin output and configuration
for small client side check plugins run by an NRPE daemon or monitoring
agent. It dispatches registered checks by name and scaffolds new ones.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Usage()
		os.Exit(int(checkplugin.CheckExitUnknown))
	},
	PreRun: func(_ *cobra.Command, _ []string) {
		if pluginFlags.Version {
			fmt.Fprintf(os.Stdout, "%s v%s\n", checkplugin.NAME, checkplugin.VERSION)
			os.Exit(int(checkplugin.CheckExitOK))
		}
	},
}

var pluginFlags = &checkplugin.PluginFlags{}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&pluginFlags.Version, "version", "V", false, "print version and exit")
	rootCmd.PersistentFlags().StringArrayVarP(&pluginFlags.ConfigFiles, "config", "c", []string{}, "path to config file (multiple)")
	rootCmd.PersistentFlags().BoolVarP(&pluginFlags.Quiet, "quiet", "q", false, "set loglevel to error")
	rootCmd.PersistentFlags().CountVarP(&pluginFlags.Verbose, "verbose", "v", "increase loglevel, -v means debug, -vv means trace")
	rootCmd.PersistentFlags().StringVarP(&pluginFlags.LogLevel, "loglevel", "", "", "set loglevel to one of: off, error, info, debug, trace")
	rootCmd.PersistentFlags().StringVarP(&pluginFlags.LogFormat, "logformat", "", "", "override logformat, see https://pkg.go.dev/github.com/kdar/factorlog")
	rootCmd.PersistentFlags().StringVarP(&pluginFlags.LogFile, "logfile", "", "", "path to log file or stdout/stderr/syslog")

	rootCmd.DisableAutoGenTag = true
	rootCmd.DisableSuggestions = true

	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.Flags().SortFlags = false
}

func Execute() error {
	return rootCmd.Execute()
}

// newPlugin builds a Plugin from the global flags. Configuration failures
// still end in a single stdout line and an UNKNOWN exit code, the monitoring
// agent never sees a bare crash.
func newPlugin() *checkplugin.Plugin {
	plugin, err := checkplugin.NewPlugin(pluginFlags)
	if err != nil {
		checkplugin.LogError(err)
		checkplugin.CleanExit(&checkplugin.CheckResult{
			State:  checkplugin.CheckExitUnknown,
			Output: err.Error(),
		})
	}

	return plugin
}
