package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/jwalton/gchalk"
	"github.com/minepkg/launchkit/cmd/config"
	"github.com/minepkg/launchkit/internals/cmdlog"
	"github.com/minepkg/launchkit/internals/commands"
	"github.com/minepkg/launchkit/internals/downloadmgr"
	"github.com/minepkg/launchkit/internals/install"
	"github.com/minepkg/launchkit/internals/launch"
	"github.com/minepkg/launchkit/internals/ownhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// set by main
var (
	Version = "dev"
	Commit  string
)

var logger = cmdlog.New()

var (
	cfgFile       string
	disableColors bool
	disableEmojis bool
	verbose       bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "launchkit",
	Short: "Installs Minecraft clients and renders their launch command",
	Long: `launchkit downloads everything a Minecraft client needs (client jar, libraries,
natives, assets and forge libraries) into a local directory and prints the
command that starts it.`,

	Example: `
  launchkit install 1.19.2
  launchkit args 1.12.2 --offline Alice --server mc.example.com
  launchkit versions --constraint "~1.18"`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = Version
	launch.LauncherVersion = Version
	ownhttp.UserAgent = fmt.Sprintf("launchkit/%s (+https://github.com/minepkg/launchkit)", Version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $CONFIG_DIR/launchkit/config.toml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "print debug output")
	flags.BoolVarP(&disableColors, "no-color", "", false, "disable color output")
	flags.BoolVarP(&disableEmojis, "no-emoji", "", false, "disable emojis")
	flags.String("root", "", "install root (default is $HOME/.launchkit)")
	flags.String("os", "", "install for another os (linux, osx or windows)")
	flags.Int("concurrency", downloadmgr.DefaultConcurrency, "max parallel downloads")
	flags.String("log-format", "", "log events structured as \"text\" or \"json\" instead of the interactive output")
	flags.Bool("non-interactive", false, "never prompt")

	viper.BindPFlag("root", flags.Lookup("root"))
	viper.BindPFlag("os", flags.Lookup("os"))
	viper.BindPFlag("concurrency", flags.Lookup("concurrency"))
	viper.BindPFlag("logFormat", flags.Lookup("log-format"))
	viper.BindPFlag("nonInteractive", flags.Lookup("non-interactive"))

	viper.SetDefault("timeout", ownhttp.DefaultTimeout)
	viper.SetDefault("rateLimit", 0)
	viper.SetDefault("hosts.meta", install.DefaultMetaHost)
	viper.SetDefault("hosts.assets", install.DefaultAssetHost)
	viper.SetDefault("hosts.libraries", install.DefaultLibraryHost)

	rootCmd.AddCommand(config.SubCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if disableColors || os.Getenv("CI") != "" {
		gchalk.SetLevel(gchalk.LevelNone)
	}
	if disableEmojis {
		commands.EmojiEnabled = false
	}
	logger.Verbose = verbose

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else if file, err := config.FilePath(); err == nil {
		viper.AddConfigPath(filepath.Dir(file))
		viper.SetConfigName(strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)))
		viper.SetConfigType("toml")
	}

	// LAUNCHKIT_HOSTS_META for example
	viper.SetEnvPrefix("launchkit")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("Using config file: " + viper.ConfigFileUsed())
	}
}
