package install

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/minepkg/launchkit/internals/minecraft"
	"github.com/pkg/errors"
)

// JarPath returns the path of the client jar of version number n
func (i *Installer) JarPath(n string) string {
	return filepath.Join(i.VersionDir(n), n+".jar")
}

// JarInstalled returns true if the client jar of version number n exists
func (i *Installer) JarInstalled(n string) bool {
	return fileExists(i.JarPath(n))
}

// DownloadJar downloads the client jar of version (skipped if present) and
// persists the descriptor next to it as <n>.json. The persisted descriptor is
// what ResolveVersion picks up on the next run.
func (i *Installer) DownloadJar(ctx context.Context, version *minecraft.LaunchManifest, n string) error {
	dir := i.VersionDir(n)

	if !i.JarInstalled(n) {
		res := i.Fetcher().Fetch(ctx, version.Downloads.Client.URL, dir, n+".jar")
		if res.Failed() {
			return errors.Wrapf(res.Err, "could not download client jar of %s", n)
		}
	}

	buf, err := json.Marshal(version)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}
	target := filepath.Join(dir, n+".json")
	if err := os.WriteFile(target, buf, 0644); err != nil {
		return errors.Wrapf(err, "could not write %s", target)
	}
	return nil
}
