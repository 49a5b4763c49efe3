package cmd

import (
	"os"

	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/jwalton/gchalk"
	"github.com/minepkg/launchkit/internals/commands"
	"github.com/spf13/cobra"
)

var packageCmd = &cobra.Command{
	Use:   "package",
	Short: "Creates and extracts client packages",
	Long: `A client package is a zip of a whole install root.
It can be extracted on another machine to launch without downloading everything again.`,
}

func init() {
	packageCmd.AddCommand(
		commands.New(&cobra.Command{
			Use:     "make <versions...>",
			Short:   "Installs the given versions and zips the install root",
			Example: `  launchkit package make 1.19.2 1.12.2`,
			Args:    cobra.MinimumNArgs(1),
		}, &packageMakeRunner{}).Command,
	)

	extract := &packageExtractRunner{}
	extractCmd := commands.New(&cobra.Command{
		Use:   "extract <file|url>",
		Short: "Extracts a client package into the install root",
		Example: `
  launchkit package extract ./launchkit.zip
  launchkit package extract https://example.com/client.zip --yes`,
		Args: cobra.ExactArgs(1),
	}, extract)
	extractCmd.Flags().BoolVarP(&extract.yes, "yes", "y", false, "overwrite existing files without asking")
	packageCmd.AddCommand(extractCmd.Command)

	rootCmd.AddCommand(packageCmd)
}

type packageMakeRunner struct{}

func (p *packageMakeRunner) RunE(cmd *cobra.Command, args []string) error {
	inst, err := newInstaller()
	if err != nil {
		return err
	}

	var path string
	err = withProgress(inst, "Packaging", func() error {
		var err error
		path, err = inst.MakePackage(cmd.Context(), args)
		return err
	})
	if err != nil {
		return err
	}

	logger.Info(commands.Emoji("📦 ") + "Package created: " + gchalk.Bold(path))
	return nil
}

type packageExtractRunner struct {
	yes bool
}

// rootUsed returns true if dir exists and contains anything
func rootUsed(dir string) bool {
	entries, err := os.ReadDir(dir)
	return err == nil && len(entries) != 0
}

func (p *packageExtractRunner) RunE(cmd *cobra.Command, args []string) error {
	inst, err := newInstaller()
	if err != nil {
		return err
	}

	if !p.yes && rootUsed(inst.Root) {
		if nonInteractive() {
			return &commands.CliError{
				Text:        inst.Root + " is not empty",
				Suggestions: []string{"Use --yes to overwrite existing files"},
			}
		}
		logger.Warn(inst.Root + " is not empty. Existing files will be overwritten.")
		input := confirmation.New("Extract anyway?", confirmation.No)
		overwrite, err := input.RunPrompt()
		if !overwrite || err != nil {
			logger.Info("Aborting")
			return nil
		}
	}

	return withProgress(inst, "Extracting package", func() error {
		return inst.ExtractPackage(cmd.Context(), args[0])
	})
}
