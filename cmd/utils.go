package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/minepkg/launchkit/internals/cmdlog"
	"github.com/minepkg/launchkit/internals/commands"
	"github.com/minepkg/launchkit/internals/downloadmgr"
	"github.com/minepkg/launchkit/internals/events"
	"github.com/minepkg/launchkit/internals/install"
	"github.com/minepkg/launchkit/internals/minecraft"
	"github.com/minepkg/launchkit/internals/ownhttp"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// rootDir returns the configured install root, $HOME/.launchkit by default
func rootDir() (string, error) {
	if root := viper.GetString("root"); root != "" {
		return filepath.Abs(root)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".launchkit"), nil
}

// eventSink returns the structured sink if a log format is set and the console logger otherwise
func eventSink() events.Sink {
	if format := viper.GetString("logFormat"); format != "" {
		return cmdlog.NewStructuredSink(os.Stderr, format, verbose)
	}
	return logger
}

// newInstaller returns an installer configured by flags, env and config file
func newInstaller() (*install.Installer, error) {
	root, err := rootDir()
	if err != nil {
		return nil, err
	}

	inst := install.New(root)
	if osTag := viper.GetString("os"); osTag != "" {
		inst.OS = minecraft.PlatformTag(osTag)
	}
	inst.Hosts = install.Hosts{
		Meta:      viper.GetString("hosts.meta"),
		Assets:    viper.GetString("hosts.assets"),
		Libraries: viper.GetString("hosts.libraries"),
	}
	inst.Manager = downloadmgr.New(viper.GetInt("concurrency"))
	inst.HTTP = ownhttp.NewWithOptions(ownhttp.Options{
		Timeout:           viper.GetDuration("timeout"),
		RequestsPerSecond: viper.GetFloat64("rateLimit"),
	})
	inst.IdleTimeout = viper.GetDuration("timeout")
	inst.Events = eventSink()
	return inst, nil
}

// withProgress shows download progress while fn runs (interactive output only)
func withProgress(inst *install.Installer, text string, fn func() error) error {
	l, interactive := inst.Events.(*cmdlog.Logger)
	if !interactive {
		return fn()
	}
	l.StartProgress(text)
	defer l.StopProgress()
	return fn()
}

// prepare installs the requested version and turns known errors into cli errors
func prepare(ctx context.Context, inst *install.Installer, req install.Request) (*install.Prepared, error) {
	var prepared *install.Prepared
	err := withProgress(inst, "Preparing Minecraft "+req.Version, func() error {
		var err error
		prepared, err = inst.Prepare(ctx, req)
		return err
	})

	if errors.Is(err, install.ErrUnknownVersion) {
		return nil, &commands.CliError{
			Text: "Minecraft version " + req.Version + " does not exist",
			Err:  err,
			Suggestions: []string{
				`List all versions with "launchkit versions"`,
				"Check if the version number has a typo",
			},
		}
	}
	return prepared, err
}

// nonInteractive returns true if prompts are not possible or not wanted
func nonInteractive() bool {
	return viper.GetBool("nonInteractive") || !cmdlog.IsTerminal()
}
