package install

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archiver/v3"
	"github.com/minepkg/launchkit/internals/minecraft"
	"github.com/pkg/errors"
)

// ForgeResult is the outcome of ResolveForgeDependencies
type ForgeResult struct {
	// Paths are the local paths of all loader libraries, in declaration order
	Paths []string
	// Descriptor is the version.json of the loader. It overlays the base version at launch
	Descriptor *minecraft.LaunchManifest
}

type forgeLibrary struct {
	coordinate minecraft.Coordinate
	repository string
}

// isForgeItself returns true for the loader library. It is part of the loader jar
func isForgeItself(c minecraft.Coordinate) bool {
	return c.Group == "net.minecraftforge" && strings.Contains(c.Artifact, "forge")
}

// ResolveForgeDependencies extracts the descriptor from the forge installer or
// universal jar and downloads all of its libraries.
// Libraries without a declared repository are fetched from Hosts.Libraries if
// they are flagged as client or server requirement and are skipped otherwise.
func (i *Installer) ResolveForgeDependencies(ctx context.Context, version *minecraft.LaunchManifest, jar string) (*ForgeResult, error) {
	dir := i.ForgeDir(version.ID)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}

	z := &archiver.Zip{OverwriteExisting: true, MkdirAll: true}
	if err := z.Extract(jar, "version.json", dir); err != nil {
		return nil, errors.Wrapf(err, "could not extract version.json from %s", jar)
	}

	descriptor, err := minecraft.ReadLaunchManifest(filepath.Join(dir, "version.json"))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid version.json in %s", jar)
	}

	libs := make([]forgeLibrary, 0, len(descriptor.Libraries))
	for _, lib := range descriptor.Libraries {
		coordinate, err := lib.Coordinate()
		if err != nil {
			i.events().Debug("skipping forge library: " + err.Error())
			continue
		}
		if isForgeItself(coordinate) {
			continue
		}

		repository := lib.URL
		if repository == "" {
			if !lib.ServerReq && !lib.ClientReq {
				continue
			}
			repository = i.Hosts.Libraries
		}
		libs = append(libs, forgeLibrary{coordinate, repository})
	}

	librariesDir := i.LibrariesDir()
	paths := make([]string, len(libs))
	i.manager().Each(ctx, len(libs), func(ctx context.Context, n int) {
		lib := libs[n]
		dir := lib.coordinate.LocalDir(librariesDir)
		target := filepath.Join(dir, lib.coordinate.FileName())
		paths[n] = target
		if fileExists(target) {
			return
		}
		i.Fetcher().Fetch(ctx, lib.coordinate.URL(lib.repository), dir, lib.coordinate.FileName())
	})

	return &ForgeResult{Paths: paths, Descriptor: descriptor}, nil
}
