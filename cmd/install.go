package cmd

import (
	"fmt"

	"github.com/jwalton/gchalk"
	"github.com/minepkg/launchkit/internals/commands"
	"github.com/minepkg/launchkit/internals/install"
	"github.com/spf13/cobra"
)

func init() {
	runner := &installRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "install <version>",
		Short: "Installs a Minecraft version",
		Long: `Downloads the client jar, libraries, natives and assets of a Minecraft version.
Files that already exist are not downloaded again.`,
		Example: `
  launchkit install 1.19.2
  launchkit install 1.12.2 --forge ./forge-1.12.2-14.23.5.2860-universal.jar
  launchkit install 1.19.2 --custom fabric-loader-0.14.10-1.19.2`,
		Args: cobra.ExactArgs(1),
	}, runner)

	cmd.Flags().StringVar(&runner.custom, "custom", "", "id of a custom version descriptor in the versions directory")
	cmd.Flags().StringVar(&runner.forge, "forge", "", "path to a forge universal jar")

	rootCmd.AddCommand(cmd.Command)
}

type installRunner struct {
	custom string
	forge  string
}

func (i *installRunner) request(version string) install.Request {
	return install.Request{Version: version, Custom: i.custom, ForgeJar: i.forge}
}

func (i *installRunner) RunE(cmd *cobra.Command, args []string) error {
	inst, err := newInstaller()
	if err != nil {
		return err
	}

	prepared, err := prepare(cmd.Context(), inst, i.request(args[0]))
	if err != nil {
		return err
	}

	logger.Info(commands.Emoji("✅ ") + "Minecraft " + gchalk.Bold(prepared.Version.ID) + " is ready")
	logger.Info(gchalk.Gray(fmt.Sprintf("│ root: %s", inst.Root)))
	logger.Info(gchalk.Gray(fmt.Sprintf("│ classpath entries: %d", len(prepared.Classpath))))
	if prepared.Overlay != nil {
		logger.Info(gchalk.Gray("│ overlay: " + prepared.Overlay.ID))
	}
	return nil
}
