// Package launch renders the command line used to start a prepared
// minecraft client. Nothing in here starts a process.
package launch

import (
	"path/filepath"
	"runtime"

	"github.com/minepkg/launchkit/internals/events"
	"github.com/minepkg/launchkit/internals/minecraft"
)

// Credential is the already authenticated player
type Credential struct {
	AccessToken string `json:"accessToken"`
	ClientToken string `json:"clientToken"`
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	// UserProperties is the serialized property map ("{}" if there are none)
	UserProperties string `json:"userProperties"`
}

// Version is the selected version
type Version struct {
	// Number is the version number, for example "1.19.2"
	Number string
	// Type is the release type, for example "release"
	Type string
	// Custom is the id of an overlay descriptor
	Custom string
}

// Server is a multiplayer server to join right after startup
type Server struct {
	Host string
	// Port defaults to 25565
	Port int
}

// Proxy is a network proxy the game should use
type Proxy struct {
	Host string
	// Port defaults to 8080
	Port     int
	Username string
	Password string
}

// Options are all runtime values that end up in the launch command
type Options struct {
	// Root is the install root. It is used as game directory
	Root string
	// OS is the os tag, the running platform if empty
	OS string
	// Arch is a GOARCH value, the running architecture if empty
	Arch       string
	Credential Credential
	Version    Version
	Server     *Server
	Proxy      *Proxy

	// NativesDir is passed as java.library.path
	NativesDir string
	// Classpath entries in order
	Classpath []string
	// MemoryMiB is the max heap size. 0 sizes it from the system memory
	MemoryMiB int

	Events events.Sink
}

func (o *Options) os() string {
	if o.OS == "" {
		return minecraft.CurrentPlatform()
	}
	return minecraft.PlatformTag(o.OS)
}

func (o *Options) arch() string {
	if o.Arch == "" {
		return runtime.GOARCH
	}
	return o.Arch
}

func (o *Options) events() events.Sink {
	return events.OrNop(o.Events)
}

// AssetsRoot returns the assets directory the game should use for version.
// Legacy layouts use the mirrored assets in assets/legacy.
func (o *Options) AssetsRoot(version *minecraft.LaunchManifest) string {
	if version.IsLegacyAssets() {
		return filepath.Join(o.Root, "assets", "legacy")
	}
	return filepath.Join(o.Root, "assets")
}
