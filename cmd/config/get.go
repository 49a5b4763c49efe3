package config

import (
	"fmt"

	"github.com/minepkg/launchkit/internals/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "get <key>",
		Short: "Gets a global config value",
		Args:  cobra.ExactArgs(1),
	}, &getRunner{})

	SubCmd.AddCommand(cmd.Command)
}

type getRunner struct{}

func (i *getRunner) RunE(cmd *cobra.Command, args []string) error {
	entry, ok := lookup(args[0])
	if !ok {
		return unknownKey(args[0])
	}

	fmt.Printf("%s: %v\n", entry.key, viper.Get(entry.key))
	return nil
}

func unknownKey(key string) error {
	return &commands.CliError{
		Text: fmt.Sprintf("config key \"%s\" does not exist", key),
		Help: "Available keys:\n" + keyHelp(),
	}
}
