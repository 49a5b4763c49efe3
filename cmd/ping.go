package cmd

import (
	"fmt"
	"time"

	"github.com/jwalton/gchalk"
	"github.com/minepkg/launchkit/internals/commands"
	"github.com/minepkg/launchkit/internals/serverstatus"
	"github.com/spf13/cobra"
)

func init() {
	runner := &pingRunner{}
	cmd := commands.New(&cobra.Command{
		Use:     "ping <host[:port]>",
		Short:   "Queries the status of a multiplayer server",
		Example: `  launchkit ping mc.example.com`,
		Args:    cobra.ExactArgs(1),
	}, runner)

	cmd.Flags().DurationVar(&runner.timeout, "timeout", serverstatus.DefaultTimeout, "ping timeout")

	rootCmd.AddCommand(cmd.Command)
}

type pingRunner struct {
	timeout time.Duration
}

func (p *pingRunner) RunE(cmd *cobra.Command, args []string) error {
	server, err := serverstatus.ParseAddress(args[0])
	if err != nil {
		return &commands.CliError{Text: "Invalid server address " + args[0], Err: err}
	}

	status, err := serverstatus.Ping(server, p.timeout)
	if err != nil {
		return &commands.CliError{
			Text: fmt.Sprintf("Could not reach %s:%d", server.Host, server.Port),
			Err:  err,
			Suggestions: []string{
				"Check if the server is online",
				"Check the port (25565 is used if none is given)",
			},
		}
	}

	logger.Headline(fmt.Sprintf("%s:%d", server.Host, server.Port))
	if motd := status.MOTD(); motd != "" {
		logger.Info(motd)
	}
	logger.Info(gchalk.Gray(fmt.Sprintf("│ version: %s (protocol %d)", status.Version.Name, status.Version.Protocol)))
	logger.Info(gchalk.Gray(fmt.Sprintf("│ players: %d/%d", status.Players.Online, status.Players.Max)))
	logger.Info(gchalk.Gray("│ delay:   " + status.Delay.Round(time.Millisecond).String()))
	return nil
}
