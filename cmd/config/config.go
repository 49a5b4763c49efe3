package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

const (
	configKindString = iota
	configKindBool
	configKindInt
	configKindFloat
	configKindDuration
)

type configEntry struct {
	key  string
	kind int
	help string
}

var config = map[string]configEntry{
	"root":            {"root", configKindString, "install root"},
	"os":              {"os", configKindString, "os tag to install for (linux, osx, windows)"},
	"concurrency":     {"concurrency", configKindInt, "max parallel downloads"},
	"timeout":         {"timeout", configKindDuration, "connect and response header timeout, for example 10s"},
	"ratelimit":       {"rateLimit", configKindFloat, "max requests per second, 0 is unlimited"},
	"hosts.meta":      {"hosts.meta", configKindString, "version manifest host"},
	"hosts.assets":    {"hosts.assets", configKindString, "asset object host"},
	"hosts.libraries": {"hosts.libraries", configKindString, "maven repository for forge libraries"},
	"noninteractive":  {"nonInteractive", configKindBool, "never prompt"},
	"logformat":       {"logFormat", configKindString, "\"text\" or \"json\" for structured logs"},
}

// SubCmd is the "config" command
var SubCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global config options",
	Long:  "Manage global config options.\n\nAvailable keys:\n" + keyHelp(),
}

// FilePath returns the path of the global config file
func FilePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "launchkit", "config.toml"), nil
}

// lookup returns the entry for key (case insensitive)
func lookup(key string) (configEntry, bool) {
	entry, ok := config[strings.ToLower(key)]
	return entry, ok
}

func keyHelp() string {
	keys := make([]string, 0, len(config))
	for k := range config {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	help := ""
	for _, k := range keys {
		help += "  " + config[k].key + ": " + config[k].help + "\n"
	}
	return help
}
