package install

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/minepkg/launchkit/internals/downloadmgr"
	"github.com/minepkg/launchkit/internals/minecraft"
	"github.com/pkg/errors"
)

// AssetIndexPath returns the local path of the asset index of version
func (i *Installer) AssetIndexPath(version *minecraft.LaunchManifest) string {
	return filepath.Join(i.AssetsDir(), "indexes", version.AssetIndex.ID+".json")
}

// AssetObjectsDir returns the directory of the content addressed asset store
func (i *Installer) AssetObjectsDir() string {
	return filepath.Join(i.AssetsDir(), "objects")
}

// LegacyAssetsDir returns the directory assets are mirrored to for legacy versions
func (i *Installer) LegacyAssetsDir() string {
	return filepath.Join(i.AssetsDir(), "legacy")
}

// AssetPath returns the local path of an asset object
func (i *Installer) AssetPath(obj *minecraft.AssetObject) string {
	return filepath.Join(i.AssetObjectsDir(), obj.Shard(), obj.Hash)
}

// validAsset reports if the object is stored inside the objects dir
func (i *Installer) validAsset(obj *minecraft.AssetObject) bool {
	objects := i.AssetObjectsDir()
	path := i.AssetPath(obj)
	return len(obj.Hash) >= 2 && path != objects && insideDir(objects, path)
}

// AssetInstalled returns true if the asset object exists locally
func (i *Installer) AssetInstalled(obj *minecraft.AssetObject) bool {
	return fileExists(i.AssetPath(obj))
}

// SyncAssets downloads the asset index and all missing asset objects of version.
// Failed objects are retried exactly once, objects that fail again are dropped.
// Legacy versions additionally get a copy of every object at its logical path.
func (i *Installer) SyncAssets(ctx context.Context, version *minecraft.LaunchManifest) error {
	index, err := i.assetIndex(ctx, version)
	if err != nil {
		return err
	}

	missing := i.missingAssets(index)
	i.events().Debug(fmt.Sprintf("downloading %d assets", len(missing)))

	mgr := i.manager()
	results := mgr.FetchAll(ctx, i.Fetcher(), missing)
	if failed := downloadmgr.Failed(results); len(failed) != 0 {
		i.events().Debug(fmt.Sprintf("retrying %d failed assets", len(failed)))
		results = mgr.FetchAll(ctx, i.Fetcher(), failed)
		for _, res := range results {
			if res.Failed() {
				i.events().Debug("dropping asset " + res.Asset.Name + ": " + res.Err.Error())
			}
		}
	}

	if version.IsLegacyAssets() {
		i.mirrorLegacyAssets(ctx, index)
	}
	return nil
}

// assetIndex reads the local asset index and downloads it first if it is missing
func (i *Installer) assetIndex(ctx context.Context, version *minecraft.LaunchManifest) (*minecraft.AssetIndex, error) {
	path := i.AssetIndexPath(version)
	if !insideDir(filepath.Join(i.AssetsDir(), "indexes"), path) {
		return nil, errors.Errorf("invalid asset index id %q", version.AssetIndex.ID)
	}
	if !fileExists(path) {
		res := i.Fetcher().Fetch(ctx, version.AssetIndex.URL, filepath.Dir(path), filepath.Base(path))
		if res.Failed() {
			return nil, errors.Wrapf(res.Err, "could not download asset index %s", version.AssetIndex.ID)
		}
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	index := &minecraft.AssetIndex{}
	if err := json.Unmarshal(buf, index); err != nil {
		return nil, errors.Wrapf(err, "could not parse asset index %s", path)
	}
	return index, nil
}

// missingAssets returns one download per missing hash, sorted by hash
func (i *Installer) missingAssets(index *minecraft.AssetIndex) []downloadmgr.Asset {
	seen := make(map[string]bool, len(index.Objects))
	missing := make([]downloadmgr.Asset, 0)

	for _, obj := range index.Objects {
		obj := obj
		if !i.validAsset(&obj) {
			i.events().Warn("skipping asset object with invalid hash " + obj.Hash)
			continue
		}
		if seen[obj.Hash] || i.AssetInstalled(&obj) {
			continue
		}
		seen[obj.Hash] = true
		missing = append(missing, downloadmgr.Asset{
			URL:       obj.DownloadURL(i.Hosts.Assets),
			Directory: filepath.Join(i.AssetObjectsDir(), obj.Shard()),
			Name:      obj.Hash,
		})
	}

	sort.Slice(missing, func(a, b int) bool { return missing[a].Name < missing[b].Name })
	return missing
}

// mirrorLegacyAssets copies every object to <legacy>/<logical path>.
// Existing files are kept and missing objects are skipped.
func (i *Installer) mirrorLegacyAssets(ctx context.Context, index *minecraft.AssetIndex) {
	names := make([]string, 0, len(index.Objects))
	for name := range index.Objects {
		names = append(names, name)
	}
	sort.Strings(names)

	legacyDir := i.LegacyAssetsDir()
	i.manager().Each(ctx, len(names), func(ctx context.Context, n int) {
		name := names[n]
		obj := index.Objects[name]
		dest := filepath.Join(legacyDir, filepath.FromSlash(name))
		if !insideDir(legacyDir, dest) || dest == legacyDir {
			i.events().Warn("skipping asset " + name + ", it points outside of " + legacyDir)
			return
		}
		if fileExists(dest) {
			return
		}

		src := i.AssetPath(&obj)
		if !i.validAsset(&obj) || !fileExists(src) {
			i.events().Debug("skipping legacy copy of " + name + ", object " + obj.Hash + " is missing")
			return
		}
		if err := copyFile(src, dest); err != nil {
			i.events().Warn("could not copy asset " + name + ": " + err.Error())
		}
	})
}

func copyFile(src string, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	return out.Close()
}
