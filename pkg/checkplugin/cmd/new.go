package cmd

import (
	"fmt"
	"os"

	"github.com/consol-monitoring/checkplugin/pkg/checkplugin"

	"github.com/spf13/cobra"
)

func init() {
	var dir, pkg string

	newCmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Scaffold a new check file from the template",
		Long: `New writes check_<name>.go into the target directory, filled from the
embedded check template. Existing files are never overwritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path, err := checkplugin.ScaffoldCheck(args[0], dir, pkg)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "created %s\n", path)

			return nil
		},
	}
	newCmd.Flags().StringVarP(&dir, "dir", "d", ".", "target directory for the generated file")
	newCmd.Flags().StringVarP(&pkg, "package", "p", "main", "package name used in the generated file")
	rootCmd.AddCommand(newCmd)
}
