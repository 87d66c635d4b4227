package checkplugin

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var reScaffoldName = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// template for generated check files, ${...} macros are filled in by
// ScaffoldCheck.
const checkTemplate = `package ${package}

import (
	"github.com/consol-monitoring/checkplugin/pkg/checkplugin"
)

func init() {
	checkplugin.RegisterCheck("${name}", func() checkplugin.CheckHandler { return &Check${camel}{} })
}

// Check${camel} ... describe what this check monitors.
type Check${camel} struct{}

func (l *Check${camel}) Check(ctx *checkplugin.CheckContext, args []string) (*checkplugin.CheckResult, error) {
	// TODO: collect data, pick the severity and build real stats
	return ctx.SetExit(checkplugin.CheckExitOK, "${name} is ok", "")
}
`

// ScaffoldCheck writes a new check file for the given name into dir,
// substituting the name macros in the embedded template. It refuses to
// overwrite an existing file.
func ScaffoldCheck(name, dir, pkg string) (string, error) {
	if !reScaffoldName.MatchString(name) {
		return "", fmt.Errorf("invalid check name %q, must match %s", name, reScaffoldName.String())
	}
	if pkg == "" {
		pkg = "main"
	}

	path := filepath.Join(dir, "check_"+name+".go")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("refusing to overwrite existing file: %s", path)
	}

	replacer := strings.NewReplacer(
		"${package}", pkg,
		"${name}", name,
		"${camel}", camelCase(name),
	)
	if err := os.WriteFile(path, []byte(replacer.Replace(checkTemplate)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %s", path, err.Error())
	}

	return path, nil
}

func camelCase(name string) string {
	parts := strings.Split(name, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[0:1]) + part[1:]
	}

	return strings.Join(parts, "")
}
