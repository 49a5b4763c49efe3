package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Command is a cobra command that renders returned errors for humans
type Command struct {
	*cobra.Command
	runner Runner
}

// Runner runs a command
type Runner interface {
	RunE(cmd *cobra.Command, args []string) error
}

// New wraps cmd. Errors returned by run are printed and exit the process with code 1
func New(cmd *cobra.Command, run Runner) *Command {
	build := &Command{
		cmd,
		run,
	}
	build.Command.Run = func(cmd *cobra.Command, args []string) {
		if err := run.RunE(cmd, args); err != nil {
			PrintError(os.Stdout, err)
			os.Exit(1)
		}
	}

	return build
}

// PrintError renders err. A CliError anywhere in the chain is rendered with its help
func PrintError(w io.Writer, err error) {
	var asCliErr *CliError
	if errors.As(err, &asCliErr) {
		fmt.Fprintln(w, asCliErr.RichError()+"\n")
		return
	}
	fmt.Fprintln(w, ErrorBox(err.Error(), ""))
}
