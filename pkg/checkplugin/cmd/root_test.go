package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, expect := range []string{"run", "list", "new"} {
		assert.Truef(t, names[expect], "command %s registered", expect)
	}
}

func TestRunAliases(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Name() != "run" {
			continue
		}
		assert.ElementsMatchf(t, []string{"do", "check"}, c.Aliases, "run aliases")

		return
	}
	t.Fatalf("run command not found")
}
