package checkplugin

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

const MaxLineSize = 1024 * 1024 // limit max line length to 1MB

// fixed numeric severity values, the external exit code contract
var severityValues = map[string]int64{
	"ok":       CheckExitOK,
	"warning":  CheckExitWarning,
	"critical": CheckExitCritical,
	"unknown":  CheckExitUnknown,
}

// Config contains the merged config over all config files.
type Config struct {
	sections map[string]*ConfigSection
}

func NewConfig() *Config {
	conf := &Config{
		sections: make(map[string]*ConfigSection),
	}

	return conf
}

// ReadINI opens the config file and parses it.
func (config *Config) ReadINI(iniPath string) error {
	file, err := os.Open(iniPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %s", err.Error())
	}
	defer file.Close()

	return config.ParseINI(file, iniPath)
}

// ParseINI parses the config from the given stream. Parse errors are fatal,
// a broken config never loads partially.
func (config *Config) ParseINI(file io.Reader, iniPath string) error {
	var currentSection *ConfigSection
	lineNr := 0

	scanner := bufio.NewScanner(file)
	buffer := make([]byte, 0, MaxLineSize)
	scanner.Buffer(buffer, MaxLineSize)
	for scanner.Scan() {
		lineNr++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == ';' || line[0] == '#' {
			continue
		}

		// start of a new section
		if line[0] == '[' {
			currentBlock := strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			currentSection = config.Section(currentBlock)

			continue
		}

		if currentSection == nil {
			return fmt.Errorf("parse error in %s:%d: found key=value pair outside of ini block", iniPath, lineNr)
		}

		val := strings.SplitN(line, "=", 2)
		if len(val) < 2 {
			return fmt.Errorf("parse error in %s:%d: found key without '='", iniPath, lineNr)
		}

		currentSection.Set(strings.TrimSpace(val[0]), strings.TrimSpace(val[1]))
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read config file %s: %s", iniPath, err.Error())
	}

	return nil
}

// Section returns config section by name, it creates an empty section if it
// does not exist yet.
func (config *Config) Section(name string) *ConfigSection {
	if section, ok := config.sections[name]; ok {
		return section
	}

	section := NewConfigSection(config, name)
	config.sections[name] = section

	return section
}

// SectionNames returns all configured section names sorted alphabetically.
func (config *Config) SectionNames() []string {
	keys := make([]string, 0, len(config.sections))
	for name := range config.sections {
		keys = append(keys, name)
	}
	sort.Strings(keys)

	return keys
}

// Validate checks all keys the core consumes. Any malformed value or
// severity override fails the whole load.
func (config *Config) Validate() error {
	if err := config.validateSeverities(); err != nil {
		return err
	}

	defaults := config.Section("/settings/default")
	for _, key := range []string{"log", "verbose"} {
		if _, _, err := defaults.GetBool(key); err != nil {
			return fmt.Errorf("config error in [/settings/default]: %s", err.Error())
		}
	}

	checks := config.Section("/checks")
	for _, key := range checks.Keys() {
		if _, _, err := checks.GetBool(key); err != nil {
			return fmt.Errorf("config error in [/checks]: %s", err.Error())
		}
	}

	return nil
}

// Configuration may carry severity entries as display metadata, but it must
// never be able to change their numeric meaning. A mismatched override fails
// the load instead of silently diverging.
func (config *Config) validateSeverities() error {
	section := config.Section("/settings/nagios")
	for name, expected := range severityValues {
		num, ok, err := section.GetInt(name)
		if err != nil {
			return fmt.Errorf("config error in [/settings/nagios]: %s: %s", name, err.Error())
		}
		if ok && num != expected {
			return fmt.Errorf("config error in [/settings/nagios]: %s must be %d, got %d", name, expected, num)
		}
	}

	return nil
}

// CheckNames returns the check names enabled in the /checks section, sorted
// alphabetically.
func (config *Config) CheckNames() []string {
	section := config.Section("/checks")
	names := make([]string, 0, len(section.Keys()))
	for _, key := range section.Keys() {
		enabled, _, err := section.GetBool(key)
		if err == nil && enabled {
			names = append(names, strings.ToLower(key))
		}
	}
	sort.Strings(names)

	return names
}

// CheckDisabled returns true if the /checks section explicitly disables the
// given name. Unlisted names stay dispatchable.
func (config *Config) CheckDisabled(name string) bool {
	section := config.Section("/checks")
	for _, key := range section.Keys() {
		if !strings.EqualFold(key, name) {
			continue
		}
		enabled, _, err := section.GetBool(key)
		if err != nil {
			return false
		}

		return !enabled
	}

	return false
}

// ConfigSection contains a single config section.
type ConfigSection struct {
	cfg  *Config
	name string
	data ConfigData
	keys []string
}

// NewConfigSection creates a new ConfigSection.
func NewConfigSection(cfg *Config, name string) *ConfigSection {
	section := &ConfigSection{
		cfg:  cfg,
		name: name,
		data: make(ConfigData),
		keys: make([]string, 0),
	}

	return section
}

// Set sets a single key/value pair. Existing keys will be overwritten.
func (cs *ConfigSection) Set(key, value string) {
	if !cs.HasKey(key) {
		cs.keys = append(cs.keys, key)
	}
	cs.data[key] = value
}

// Keys returns the keys in the order they were set.
func (cs *ConfigSection) Keys() []string {
	return cs.keys
}

// HasKey returns true if given key exists in this config section.
func (cs *ConfigSection) HasKey(key string) (ok bool) {
	_, ok = cs.data[key]

	return ok
}

// GetString parses string from config section, it returns the value if found
// and sets ok to true.
func (cs *ConfigSection) GetString(key string) (val string, ok bool) {
	val, ok = cs.data[key]

	return val, ok
}

// GetInt parses int64 from config section, it returns the value if found and
// sets ok to true. If the value is found but cannot be parsed, error is set.
func (cs *ConfigSection) GetInt(key string) (num int64, ok bool, err error) {
	val, ok := cs.GetString(key)
	if !ok {
		return 0, false, nil
	}
	num, err = strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, true, fmt.Errorf("ParseInt: %s", err.Error())
	}

	return num, true, nil
}

// GetBool parses bool from config section, it returns the value if found and
// sets ok to true. If the value is found but cannot be parsed, error is set.
func (cs *ConfigSection) GetBool(key string) (val, ok bool, err error) {
	raw, ok := cs.GetString(key)
	if !ok {
		return false, false, nil
	}
	val, err = parseBool(raw)
	if err != nil {
		return false, true, err
	}

	return val, ok, nil
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "1", "enable", "enabled", "true", "yes", "on":
		return true, nil
	case "0", "disable", "disabled", "false", "no", "off":
		return false, nil
	}

	return false, fmt.Errorf("cannot parse boolean value from %q", value)
}

// ConfigData contains data for a section.
type ConfigData map[string]string
