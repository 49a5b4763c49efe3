package install

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archiver/v3"
	"github.com/pkg/errors"
)

// PackageFile is the name remote client packages are downloaded to
const PackageFile = "clientPackage.zip"

// PackagePath returns the path MakePackage writes to: the root path with a .zip suffix
func (i *Installer) PackagePath() string {
	return filepath.Clean(i.Root) + ".zip"
}

// MakePackage installs every given version into the root (one after another)
// and zips the content of the root. It returns the path of the created package.
func (i *Installer) MakePackage(ctx context.Context, versions []string) (string, error) {
	for _, id := range versions {
		if err := i.installForPackage(ctx, id); err != nil {
			return "", err
		}
	}

	entries, err := os.ReadDir(i.Root)
	if err != nil {
		return "", err
	}
	sources := make([]string, 0, len(entries))
	for _, entry := range entries {
		// a downloaded package is no part of a new one
		if entry.Name() == PackageFile {
			continue
		}
		sources = append(sources, filepath.Join(i.Root, entry.Name()))
	}

	target := i.PackagePath()
	z := archiver.NewZip()
	z.OverwriteExisting = true
	if err := z.Archive(sources, target); err != nil {
		return "", errors.Wrapf(err, "could not create package %s", target)
	}
	return target, nil
}

func (i *Installer) installForPackage(ctx context.Context, id string) error {
	version, err := i.ResolveVersion(ctx, id, i.VersionDir(id))
	if err != nil {
		return err
	}
	if version == nil {
		return errors.Wrap(ErrUnknownVersion, id)
	}

	if _, err := i.InstallNatives(ctx, version); err != nil {
		return err
	}
	if err := i.DownloadJar(ctx, version, id); err != nil {
		return err
	}
	if _, err := i.CollectClasspath(ctx, version, ""); err != nil {
		return err
	}
	return i.SyncAssets(ctx, version)
}

// ExtractPackage expands a client package into the root. Existing files are
// overwritten. source can be a local path or a http(s) url.
func (i *Installer) ExtractPackage(ctx context.Context, source string) error {
	archive := source
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		res := i.Fetcher().Fetch(ctx, source, i.Root, PackageFile)
		if res.Failed() {
			return errors.Wrapf(res.Err, "could not download package %s", source)
		}
		archive = res.Path()
	}

	z := archiver.NewZip()
	z.OverwriteExisting = true
	z.MkdirAll = true
	if err := z.Unarchive(archive, i.Root); err != nil {
		return errors.Wrapf(err, "could not extract package %s", archive)
	}

	i.events().PackageExtracted()
	return nil
}
