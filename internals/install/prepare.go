package install

import (
	"context"
	"path/filepath"

	"github.com/minepkg/launchkit/internals/minecraft"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Request describes what Prepare should install
type Request struct {
	// Version is the minecraft version number, for example "1.19.2"
	Version string
	// Custom is the id of a descriptor in the versions dir that overlays Version
	Custom string
	// ForgeJar is the path to a forge installer or universal jar
	ForgeJar string
}

// Prepared is everything needed to render a launch command
type Prepared struct {
	Version *minecraft.LaunchManifest
	// Overlay is the forge or custom descriptor, nil if there is none
	Overlay    *minecraft.LaunchManifest
	NativesDir string
	// Classpath in launch order: forge libraries, custom libraries, version libraries, client jar
	Classpath []string
}

// Prepare installs the requested version. Natives, libraries, assets and
// forge libraries are installed concurrently.
func (i *Installer) Prepare(ctx context.Context, req Request) (*Prepared, error) {
	version, err := i.ResolveVersion(ctx, req.Version, i.VersionDir(req.Version))
	if err != nil {
		return nil, err
	}
	if version == nil {
		return nil, errors.Wrap(ErrUnknownVersion, req.Version)
	}

	if err := i.DownloadJar(ctx, version, req.Version); err != nil {
		return nil, err
	}

	var (
		nativesDir string
		libraries  []string
		forge      *ForgeResult
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		nativesDir, err = i.InstallNatives(gCtx, version)
		return err
	})
	g.Go(func() error {
		var err error
		libraries, err = i.CollectClasspath(gCtx, version, req.Custom)
		return err
	})
	g.Go(func() error {
		return i.SyncAssets(gCtx, version)
	})
	if req.ForgeJar != "" {
		g.Go(func() error {
			var err error
			forge, err = i.ResolveForgeDependencies(gCtx, version, req.ForgeJar)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	prepared := &Prepared{Version: version, NativesDir: nativesDir}
	classpath := make([]string, 0, len(libraries)+1)

	switch {
	case forge != nil:
		prepared.Overlay = forge.Descriptor
		classpath = append(classpath, forge.Paths...)
	case req.Custom != "":
		overlay, err := minecraft.ReadLaunchManifest(filepath.Join(i.VersionDir(req.Custom), req.Custom+".json"))
		if err != nil {
			return nil, errors.Wrapf(err, "could not read custom descriptor %s", req.Custom)
		}
		prepared.Overlay = overlay
	}

	classpath = append(classpath, libraries...)
	prepared.Classpath = append(classpath, i.JarPath(req.Version))
	return prepared, nil
}
