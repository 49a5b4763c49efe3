package cmd

import (
	"github.com/minepkg/launchkit/internals/commands"
	"github.com/minepkg/launchkit/internals/credentials"
	"github.com/minepkg/launchkit/internals/launch"
	"github.com/spf13/cobra"
)

var credentialCmd = &cobra.Command{
	Use:   "credential",
	Short: "Manages the stored player credential",
	Long: `launchkit does not log in by itself. Store the credential issued by your
authenticator with "credential set" or use --offline when launching.`,
}

func init() {
	set := &credentialSetRunner{}
	setCmd := commands.New(&cobra.Command{
		Use:     "set",
		Short:   "Stores a player credential",
		Example: `  launchkit credential set --name Steve --uuid 8667ba71b85a4004af54457a9734eed7 --access-token ey...`,
		Args:    cobra.NoArgs,
	}, set)
	setCmd.Flags().StringVar(&set.credential.Name, "name", "", "player name")
	setCmd.Flags().StringVar(&set.credential.UUID, "uuid", "", "player uuid")
	setCmd.Flags().StringVar(&set.credential.AccessToken, "access-token", "", "access token")
	setCmd.Flags().StringVar(&set.credential.ClientToken, "client-token", "", "client token")
	setCmd.Flags().StringVar(&set.credential.UserProperties, "user-properties", "{}", "user properties as json")
	for _, required := range []string{"name", "uuid", "access-token"} {
		setCmd.MarkFlagRequired(required)
	}

	credentialCmd.AddCommand(
		setCmd.Command,
		commands.New(&cobra.Command{
			Use:   "clear",
			Short: "Removes the stored player credential",
			Args:  cobra.NoArgs,
		}, &credentialClearRunner{}).Command,
	)

	rootCmd.AddCommand(credentialCmd)
}

func credentialStore() (*credentials.Store, error) {
	root, err := rootDir()
	if err != nil {
		return nil, err
	}
	return credentials.New(root)
}

type credentialSetRunner struct {
	credential launch.Credential
}

func (c *credentialSetRunner) RunE(cmd *cobra.Command, args []string) error {
	store, err := credentialStore()
	if err != nil {
		return err
	}
	credential := c.credential
	if err := store.Set(&credential); err != nil {
		return err
	}
	logger.Info("Credential for " + credential.Name + " stored")
	return nil
}

type credentialClearRunner struct{}

func (c *credentialClearRunner) RunE(cmd *cobra.Command, args []string) error {
	store, err := credentialStore()
	if err != nil {
		return err
	}
	if err := store.Clear(); err != nil {
		return err
	}
	logger.Info("Credential removed")
	return nil
}
