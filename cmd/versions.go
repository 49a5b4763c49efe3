package cmd

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/jwalton/gchalk"
	"github.com/minepkg/launchkit/internals/commands"
	"github.com/minepkg/launchkit/internals/minecraft"
	"github.com/minepkg/launchkit/internals/utils"
	"github.com/spf13/cobra"
)

func init() {
	runner := &versionsRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "versions",
		Short: "Lists available Minecraft versions",
		Example: `
  launchkit versions
  launchkit versions --type snapshot
  launchkit versions --constraint "~1.18"
  launchkit versions --latest`,
		Args: cobra.NoArgs,
	}, runner)

	cmd.Flags().StringVar(&runner.releaseType, "type", minecraft.TypeRelease, "release type (release, snapshot, old_beta, old_alpha or all)")
	cmd.Flags().StringVar(&runner.constraint, "constraint", "", "semver constraint the version has to match")
	cmd.Flags().BoolVar(&runner.latest, "latest", false, "only print the latest release and snapshot")

	rootCmd.AddCommand(cmd.Command)
}

type versionsRunner struct {
	releaseType string
	constraint  string
	latest      bool
}

// filter returns all releases matching the type and constraint flags
func (v *versionsRunner) filter(releases []minecraft.Release) ([]minecraft.Release, error) {
	var constraint *semver.Constraints
	if v.constraint != "" {
		c, err := semver.NewConstraint(v.constraint)
		if err != nil {
			return nil, &commands.CliError{
				Text: "Invalid version constraint " + v.constraint,
				Err:  err,
				Help: `Use a semver constraint like "~1.18" or ">=1.16, <1.19"`,
			}
		}
		constraint = c
	}

	matching := make([]minecraft.Release, 0, len(releases))
	for _, release := range releases {
		if v.releaseType != "all" && release.Type != v.releaseType {
			continue
		}
		if constraint != nil {
			// snapshots like 22w45a are no semver versions
			version, err := semver.NewVersion(release.ID)
			if err != nil || !constraint.Check(version) {
				continue
			}
		}
		matching = append(matching, release)
	}
	return matching, nil
}

func (v *versionsRunner) RunE(cmd *cobra.Command, args []string) error {
	inst, err := newInstaller()
	if err != nil {
		return err
	}

	manifest, err := inst.VersionManifest(cmd.Context())
	if err != nil {
		return err
	}

	if v.latest {
		fmt.Printf("release:  %s\n", manifest.Latest.Release)
		fmt.Printf("snapshot: %s\n", manifest.Latest.Snapshot)
		return nil
	}

	releases, err := v.filter(manifest.Versions)
	if err != nil {
		return err
	}

	for _, release := range releases {
		fmt.Printf("%-20s %s\n", release.ID, gchalk.Gray(release.Type+" "+release.ReleaseTime))
	}
	logger.Info(gchalk.Gray(fmt.Sprintf(
		"%s of %s versions",
		utils.HumanInteger(len(releases)),
		utils.HumanInteger(len(manifest.Versions)),
	)))
	return nil
}
