// Package install downloads everything a minecraft client needs to run:
// version descriptors, the client jar, libraries, natives, assets and the
// libraries of a forge loader. Every stage can run on its own, Prepare runs
// all of them.
package install

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/minepkg/launchkit/internals/downloadmgr"
	"github.com/minepkg/launchkit/internals/events"
	"github.com/minepkg/launchkit/internals/minecraft"
	"github.com/pkg/errors"
)

// Default remote hosts
const (
	DefaultMetaHost    = "https://launchermeta.mojang.com"
	DefaultAssetHost   = "https://resources.download.minecraft.net"
	DefaultLibraryHost = "https://libraries.minecraft.net/"
)

// ErrUnknownVersion is returned if a version id is not part of the global version manifest
var ErrUnknownVersion = errors.New("unknown minecraft version")

// Hosts are the remote hosts used by the installer. All of them can point to a mirror
type Hosts struct {
	// Meta serves the global version manifest
	Meta string
	// Assets serves content addressed asset objects
	Assets string
	// Libraries is the maven repository used for loader libraries without a declared url
	Libraries string
}

// DefaultHosts returns the official mojang hosts
func DefaultHosts() Hosts {
	return Hosts{
		Meta:      DefaultMetaHost,
		Assets:    DefaultAssetHost,
		Libraries: DefaultLibraryHost,
	}
}

// Installer installs minecraft versions into Root
type Installer struct {
	// Root is the directory containing versions, libraries, natives, assets and forge
	Root string
	// OS is the os tag used to pick natives and rules ("linux", "osx" or "windows")
	OS string
	// Arch is a GOARCH value
	Arch  string
	Hosts Hosts
	// HTTP is used for all requests, http.DefaultClient if nil
	HTTP *http.Client
	// Manager limits the amount of parallel work
	Manager *downloadmgr.Manager
	// Events receives progress and debug notifications
	Events events.Sink
	// IdleTimeout fails a download that receives no data for this long
	IdleTimeout time.Duration

	fetcher *downloadmgr.Fetcher
}

// New returns an installer for root using the default hosts and the running platform
func New(root string) *Installer {
	return &Installer{
		Root:    root,
		OS:      minecraft.CurrentPlatform(),
		Arch:    runtime.GOARCH,
		Hosts:   DefaultHosts(),
		Manager: downloadmgr.New(downloadmgr.DefaultConcurrency),
		Events:  events.Nop{},
	}
}

// Fetcher returns the fetcher used for all downloads
func (i *Installer) Fetcher() *downloadmgr.Fetcher {
	if i.fetcher == nil {
		i.fetcher = downloadmgr.NewFetcher(i.client(), i.events())
		i.fetcher.IdleTimeout = i.IdleTimeout
	}
	return i.fetcher
}

func (i *Installer) client() *http.Client {
	if i.HTTP == nil {
		return http.DefaultClient
	}
	return i.HTTP
}

func (i *Installer) events() events.Sink {
	return events.OrNop(i.Events)
}

func (i *Installer) manager() *downloadmgr.Manager {
	if i.Manager == nil {
		i.Manager = downloadmgr.New(downloadmgr.DefaultConcurrency)
	}
	return i.Manager
}

// VersionsDir returns the path to the versions directory
func (i *Installer) VersionsDir() string {
	return filepath.Join(i.Root, "versions")
}

// VersionDir returns the directory of a single version. It contains the
// cached descriptor and the client jar
func (i *Installer) VersionDir(id string) string {
	return filepath.Join(i.VersionsDir(), id)
}

// LibrariesDir returns the path to the libraries directory
func (i *Installer) LibrariesDir() string {
	return filepath.Join(i.Root, "libraries")
}

// AssetsDir returns the path to the assets directory
func (i *Installer) AssetsDir() string {
	return filepath.Join(i.Root, "assets")
}

// NativesDir returns the directory natives of the given version are extracted to
func (i *Installer) NativesDir(id string) string {
	return filepath.Join(i.Root, "natives", id)
}

// ForgeDir returns the directory the loader descriptor of the given version is extracted to
func (i *Installer) ForgeDir(id string) string {
	return filepath.Join(i.Root, "forge", id)
}

// getJSON fetches url and decodes the json body into v
func (i *Installer) getJSON(ctx context.Context, url string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	res, err := i.client().Do(req)
	if err != nil {
		return errors.Wrapf(err, "could not fetch %s", url)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return errors.Errorf("invalid status code: %s from %s", res.Status, url)
	}
	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return errors.Wrapf(err, "could not parse response of %s", url)
	}
	return nil
}

// insideDir reports if target is dir or below it
func insideDir(dir string, target string) bool {
	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func trimSlash(s string) string {
	return strings.TrimRight(s, "/")
}
