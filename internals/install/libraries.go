package install

import (
	"context"
	"log"
	"path/filepath"

	"github.com/minepkg/launchkit/internals/minecraft"
	"github.com/pkg/errors"
)

// LibraryPath returns the local path of a library artifact
func (i *Installer) LibraryPath(a *minecraft.Artifact) string {
	return filepath.Join(i.LibrariesDir(), filepath.FromSlash(a.Path))
}

// LibraryInstalled returns true if the library artifact exists locally
func (i *Installer) LibraryInstalled(a *minecraft.Artifact) bool {
	return fileExists(i.LibraryPath(a))
}

// CollectClasspath downloads all missing libraries of version and returns the
// classpath entries. If custom is set, the libraries of the custom descriptor
// (<root>/versions/<custom>/<custom>.json) come first. Those are not checked
// or downloaded.
// Failed downloads are not reported, their path is part of the result anyway.
func (i *Installer) CollectClasspath(ctx context.Context, version *minecraft.LaunchManifest, custom string) ([]string, error) {
	classpath := make([]string, 0, len(version.Libraries))

	if custom != "" {
		overlayPaths, err := i.overlayClasspath(custom)
		if err != nil {
			return nil, err
		}
		classpath = append(classpath, overlayPaths...)
	}

	librariesDir := i.LibrariesDir()
	artifacts := make([]*minecraft.Artifact, 0, len(version.Libraries))
	for _, lib := range version.Libraries {
		if !lib.HasArtifact() {
			continue
		}
		if !insideDir(librariesDir, i.LibraryPath(lib.Downloads.Artifact)) {
			i.events().Warn("skipping library " + lib.Name + ", its path points outside of " + librariesDir)
			continue
		}
		artifacts = append(artifacts, lib.Downloads.Artifact)
	}

	paths := make([]string, len(artifacts))
	i.manager().Each(ctx, len(artifacts), func(ctx context.Context, n int) {
		artifact := artifacts[n]
		target := i.LibraryPath(artifact)
		paths[n] = target
		if i.LibraryInstalled(artifact) {
			return
		}
		i.Fetcher().Fetch(ctx, artifact.URL, filepath.Dir(target), filepath.Base(target))
	})

	return append(classpath, paths...), nil
}

func (i *Installer) overlayClasspath(custom string) ([]string, error) {
	path := filepath.Join(i.VersionDir(custom), custom+".json")
	overlay, err := minecraft.ReadLaunchManifest(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read custom descriptor %s", path)
	}

	paths := make([]string, 0, len(overlay.Libraries))
	for _, lib := range overlay.Libraries {
		coordinate, err := lib.Coordinate()
		if err != nil {
			log.Println("[WARN] skipping library of " + custom + ": " + err.Error())
			continue
		}
		paths = append(paths, filepath.Join(coordinate.LocalDir(i.LibrariesDir()), coordinate.FileName()))
	}
	return paths, nil
}
