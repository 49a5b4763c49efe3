package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jwalton/gchalk"
	"github.com/minepkg/launchkit/internals/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Sets a global config value",
		Args:  cobra.ExactArgs(2),
	}, &setRunner{})

	SubCmd.AddCommand(cmd.Command)
}

type setRunner struct{}

func (i *setRunner) RunE(cmd *cobra.Command, args []string) error {
	entry, ok := lookup(args[0])
	if !ok {
		return unknownKey(args[0])
	}

	newValue, err := parseValue(entry, args[1])
	if err != nil {
		return err
	}

	previousValue := viper.Get(entry.key)
	previousStringValue := fmt.Sprintf("%v", previousValue)
	if previousValue == nil {
		previousStringValue = "(unset)"
	}
	viper.Set(entry.key, newValue)

	fmt.Printf(
		"Changing config entry:\n  %s: %s → %v\n",
		entry.key,
		gchalk.Strikethrough(previousStringValue),
		gchalk.Bold(fmt.Sprintf("%v", newValue)),
	)

	file, err := FilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(file), os.ModePerm); err != nil {
		return err
	}
	return viper.WriteConfigAs(file)
}

// parseValue converts value to the type of the entry
func parseValue(entry configEntry, value string) (interface{}, error) {
	switch entry.kind {
	case configKindBool:
		return parseBool(value)
	case configKindString:
		return value, nil
	case configKindInt:
		num, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%s needs to be a number", entry.key)
		}
		return num, nil
	case configKindFloat:
		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%s needs to be a number", entry.key)
		}
		return num, nil
	case configKindDuration:
		if _, err := time.ParseDuration(value); err != nil {
			return nil, fmt.Errorf("%s needs to be a duration like 10s", entry.key)
		}
		// stored as string, viper parses it again
		return value, nil
	}
	return nil, fmt.Errorf("what? uncovered config values type")
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value. Use \"true\" or \"false\"")
	}
}
