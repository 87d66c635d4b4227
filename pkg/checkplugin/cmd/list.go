package cmd

import (
	"os"

	"github.com/consol-monitoring/checkplugin/pkg/checkplugin"

	"github.com/spf13/cobra"
)

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all known checks",
		Long: `List prints one "check: <name>" line per known check, including names
enumerated in the /checks config section, and exits OK.`,
		Run: func(_ *cobra.Command, _ []string) {
			plugin := newPlugin()
			res := plugin.ListChecks(os.Stdout)
			checkplugin.CleanExit(res)
		},
	}
	rootCmd.AddCommand(listCmd)
}
