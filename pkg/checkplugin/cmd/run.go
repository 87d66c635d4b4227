package cmd

import (
	"github.com/consol-monitoring/checkplugin/pkg/checkplugin"

	"github.com/spf13/cobra"
)

func init() {
	runCmd := &cobra.Command{
		Use:     "run [check] [args...]",
		Aliases: []string{"do", "check"},
		Short:   "Run the given check and exit with its state",
		Long: `Run dispatches the given check name, prints the plugin output line and
exits with the corresponding state. Without a name the example check runs.

Examples:

# run the default example check
checkplugin run

# run check_uptime and warn below two days of uptime
checkplugin run uptime warn=172800

# an unknown name exits CRITICAL, same as any check failure
checkplugin run nosuchcheck
`,
		Run: func(_ *cobra.Command, args []string) {
			plugin := newPlugin()

			name := ""
			checkArgs := []string{}
			if len(args) > 0 {
				name = args[0]
				checkArgs = args[1:]
			}

			res := plugin.RunCheck(name, checkArgs)
			checkplugin.CleanExit(res)
		},
	}
	rootCmd.AddCommand(runCmd)
}
