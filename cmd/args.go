package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/minepkg/launchkit/internals/commands"
	"github.com/minepkg/launchkit/internals/credentials"
	"github.com/minepkg/launchkit/internals/install"
	"github.com/minepkg/launchkit/internals/java"
	"github.com/minepkg/launchkit/internals/launch"
	"github.com/minepkg/launchkit/internals/serverstatus"
	"github.com/spf13/cobra"
)

func init() {
	runner := &argsRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "args <version>",
		Short: "Prepares a Minecraft version and prints its launch command",
		Long: `Installs the version (like "install") and prints the command that starts it.
The command is printed only, launchkit never starts it.`,
		Example: `
  launchkit args 1.19.2
  launchkit args 1.12.2 --offline Alice --server mc.example.com:25566
  launchkit args 1.19.2 --json | jq -r '.command | @sh'`,
		Args: cobra.ExactArgs(1),
	}, runner)

	flags := cmd.Flags()
	flags.StringVar(&runner.custom, "custom", "", "id of a custom version descriptor in the versions directory")
	flags.StringVar(&runner.forge, "forge", "", "path to a forge universal jar")
	flags.StringVar(&runner.server, "server", "", "server to join after startup (host[:port])")
	flags.StringVar(&runner.proxy, "proxy", "", "proxy to use (host[:port])")
	flags.StringVar(&runner.proxyUser, "proxy-user", "", "proxy username")
	flags.StringVar(&runner.proxyPass, "proxy-pass", "", "proxy password")
	flags.StringVar(&runner.offline, "offline", "", "use an offline credential with this player name")
	flags.StringVar(&runner.java, "java", "", "java binary (default $JAVA_HOME or the one in $PATH)")
	flags.IntVar(&runner.memory, "memory", 0, "max heap in MiB (default depends on the system memory)")
	flags.BoolVar(&runner.json, "json", false, "print the command and classpath as json")

	rootCmd.AddCommand(cmd.Command)
}

type argsRunner struct {
	custom    string
	forge     string
	server    string
	proxy     string
	proxyUser string
	proxyPass string
	offline   string
	java      string
	memory    int
	json      bool
}

func (a *argsRunner) credential() (*launch.Credential, error) {
	if a.offline != "" {
		return credentials.Offline(a.offline), nil
	}

	store, err := credentialStore()
	if err != nil {
		return nil, err
	}
	if store.Credential == nil {
		return nil, &commands.CliError{
			Text: "No credential found",
			Suggestions: []string{
				`Store the credential of your authenticator with "launchkit credential set"`,
				`Play offline with "--offline <name>"`,
			},
		}
	}
	return store.Credential, nil
}

// options builds the launch options for the prepared version
func (a *argsRunner) options(inst *install.Installer, prepared *install.Prepared, cred *launch.Credential) (*launch.Options, error) {
	opts := &launch.Options{
		Root:       inst.Root,
		OS:         inst.OS,
		Arch:       inst.Arch,
		Credential: *cred,
		Version: launch.Version{
			Number: prepared.Version.ID,
			Type:   prepared.Version.Type,
			Custom: a.custom,
		},
		NativesDir: prepared.NativesDir,
		Classpath:  prepared.Classpath,
		MemoryMiB:  a.memory,
		Events:     inst.Events,
	}

	if a.server != "" {
		server, err := serverstatus.ParseAddress(a.server)
		if err != nil {
			return nil, err
		}
		opts.Server = server
	}

	if a.proxy != "" {
		host, port, err := serverstatus.SplitAddress(a.proxy)
		if err != nil {
			return nil, err
		}
		opts.Proxy = &launch.Proxy{
			Host:     host,
			Port:     port,
			Username: a.proxyUser,
			Password: a.proxyPass,
		}
	}
	return opts, nil
}

func (a *argsRunner) RunE(cmd *cobra.Command, args []string) error {
	if a.json {
		// stdout is reserved for the json output
		logger.SetOutput(os.Stderr)
	}

	cred, err := a.credential()
	if err != nil {
		return err
	}

	inst, err := newInstaller()
	if err != nil {
		return err
	}

	prepared, err := prepare(cmd.Context(), inst, install.Request{Version: args[0], Custom: a.custom, ForgeJar: a.forge})
	if err != nil {
		return err
	}

	opts, err := a.options(inst, prepared, cred)
	if err != nil {
		return err
	}
	javaBin := a.java
	if javaBin == "" {
		javaBin = java.Find()
	}
	command := launch.Command(javaBin, prepared.Version, prepared.Overlay, opts)

	if a.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Command   []string `json:"command"`
			Classpath []string `json:"classpath"`
		}{command, prepared.Classpath})
	}

	fmt.Println(strings.Join(command, " "))
	return nil
}
