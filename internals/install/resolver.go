package install

import (
	"context"
	"path/filepath"

	"github.com/minepkg/launchkit/internals/minecraft"
	"github.com/pkg/errors"
)

// VersionManifestURL returns the url of the global version manifest
func (i *Installer) VersionManifestURL() string {
	return trimSlash(i.Hosts.Meta) + "/mc/game/version_manifest.json"
}

// VersionManifest fetches the global index of all versions
func (i *Installer) VersionManifest(ctx context.Context) (*minecraft.VersionManifest, error) {
	manifest := &minecraft.VersionManifest{}
	if err := i.getJSON(ctx, i.VersionManifestURL(), manifest); err != nil {
		return nil, errors.Wrap(err, "could not get version manifest")
	}
	return manifest, nil
}

// VersionCached returns true if the descriptor of id is cached in cacheDir
func (i *Installer) VersionCached(id string, cacheDir string) bool {
	return fileExists(filepath.Join(cacheDir, id+".json"))
}

// ResolveVersion returns the version descriptor of id. A descriptor cached as
// <cacheDir>/<id>.json is used without any network request.
// An id that is not part of the global manifest resolves to nil without an error.
func (i *Installer) ResolveVersion(ctx context.Context, id string, cacheDir string) (*minecraft.LaunchManifest, error) {
	cached := filepath.Join(cacheDir, id+".json")
	if fileExists(cached) {
		version, err := minecraft.ReadLaunchManifest(cached)
		if err != nil {
			return nil, errors.Wrapf(err, "could not parse cached descriptor %s", cached)
		}
		i.events().Debug("using cached descriptor " + cached)
		return version, nil
	}

	manifest, err := i.VersionManifest(ctx)
	if err != nil {
		return nil, err
	}

	release := manifest.Find(id)
	if release == nil {
		i.events().Debug("version " + id + " is not part of the version manifest")
		return nil, nil
	}

	version := &minecraft.LaunchManifest{}
	if err := i.getJSON(ctx, release.URL, version); err != nil {
		return nil, errors.Wrapf(err, "could not get descriptor of %s", id)
	}
	return version, nil
}
