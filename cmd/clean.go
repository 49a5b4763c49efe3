package cmd

import (
	"os"

	"github.com/minepkg/launchkit/internals/commands"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(commands.New(&cobra.Command{
		Use:   "clean <version>",
		Short: "Removes the extracted natives of a version",
		Long:  "The natives are extracted again by the next install or launch.",
		Args:  cobra.ExactArgs(1),
	}, &cleanRunner{}).Command)
}

type cleanRunner struct{}

func (c *cleanRunner) RunE(cmd *cobra.Command, args []string) error {
	inst, err := newInstaller()
	if err != nil {
		return err
	}

	dir := inst.NativesDir(args[0])
	if err := os.RemoveAll(dir); err != nil {
		return err
	}
	logger.Info("Removed " + dir)
	return nil
}
