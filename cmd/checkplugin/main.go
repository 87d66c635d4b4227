package main

import (
	"os"

	"github.com/consol-monitoring/checkplugin/pkg/checkplugin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(3)
	}
}
