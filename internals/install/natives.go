package install

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/mholt/archiver/v3"
	"github.com/minepkg/launchkit/internals/minecraft"
	"github.com/pkg/errors"
)

// NativesInstalled returns true if the natives directory of the version exists.
// The directory itself is the marker, its content is not checked.
func (i *Installer) NativesInstalled(id string) bool {
	return fileExists(i.NativesDir(id))
}

// InstallNatives downloads and extracts the native libraries of version for
// the installer os. It returns the natives directory.
// Extraction problems (colliding files for example) are reported as warnings.
func (i *Installer) InstallNatives(ctx context.Context, version *minecraft.LaunchManifest) (string, error) {
	dir := i.NativesDir(version.ID)
	if i.NativesInstalled(version.ID) {
		return dir, nil
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", errors.Wrapf(err, "could not create natives dir %s", dir)
	}

	natives := make([]*minecraft.Artifact, 0)
	for _, lib := range version.Libraries {
		if native, ok := lib.NativeClassifier(i.OS, i.Arch); ok {
			natives = append(natives, native)
		}
	}

	i.manager().Each(ctx, len(natives), func(ctx context.Context, n int) {
		native := natives[n]
		name := native.FileName()
		if native.Path == "" {
			name = path.Base(native.URL)
		}
		if target := filepath.Join(dir, name); target == dir || !insideDir(dir, target) {
			i.events().Warn("skipping native " + native.URL + ", invalid file name " + name)
			return
		}

		res := i.Fetcher().Fetch(ctx, native.URL, dir, name)
		if res.Failed() {
			i.events().Warn("could not download native " + native.URL + ": " + res.Err.Error())
			return
		}

		// a zip value keeps state while extracting, every archive needs its own
		z := &archiver.Zip{OverwriteExisting: true, MkdirAll: true}
		if err := z.Unarchive(res.Path(), dir); err != nil {
			i.events().Warn("could not extract native " + name + ": " + err.Error())
		}
		if err := os.Remove(res.Path()); err != nil {
			i.events().Debug("could not remove native archive " + res.Path())
		}
	})

	return dir, nil
}
