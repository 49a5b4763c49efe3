package launch

import (
	"strconv"

	"github.com/minepkg/launchkit/internals/minecraft"
)

const (
	// DefaultServerPort is used if a server has no port
	DefaultServerPort = 25565
	// DefaultProxyPort is used if a proxy has no port
	DefaultProxyPort = 8080

	// argument lists shorter than this get the base version arguments appended
	minArguments = 5
)

// Launcher name and version as reported to the game
var (
	LauncherName    = "launchkit"
	LauncherVersion = "0.0.0"
)

// placeholders returns the value of every known placeholder
func (o *Options) placeholders(version *minecraft.LaunchManifest) map[string]string {
	assetsRoot := o.AssetsRoot(version)
	return map[string]string{
		"${auth_access_token}": o.Credential.AccessToken,
		"${auth_session}":      o.Credential.AccessToken,
		"${auth_player_name}":  o.Credential.Name,
		"${auth_uuid}":         o.Credential.UUID,
		"${user_properties}":   o.Credential.UserProperties,
		"${user_type}":         "mojang",
		"${clientid}":          o.Credential.ClientToken,
		"${version_name}":      o.Version.Number,
		"${assets_index_name}": version.AssetIndex.ID,
		"${game_directory}":    o.Root,
		"${assets_root}":       assetsRoot,
		"${game_assets}":       assetsRoot,
		"${version_type}":      o.Version.Type,
		"${launcher_name}":     LauncherName,
		"${launcher_version}":  LauncherVersion,
	}
}

// BuildArguments returns the game arguments (everything after the main class).
// The argument template of overlay is used if it is set, the one of version otherwise.
// Tokens that exactly match a placeholder are replaced, everything else is kept as is.
func BuildArguments(version *minecraft.LaunchManifest, overlay *minecraft.LaunchManifest, opts *Options) []string {
	osTag, arch := opts.os(), opts.arch()

	source := version
	if overlay != nil {
		source = overlay
	}
	template := source.GameArgs(osTag, arch)

	// loader descriptors sometimes only carry their own few arguments
	if len(template) < minArguments && overlay != nil {
		template = append(template, version.GameArgs(osTag, arch)...)
	}

	values := opts.placeholders(version)
	args := make([]string, 0, len(template)+12)
	for _, token := range template {
		if value, ok := values[token]; ok {
			token = value
		}
		args = append(args, token)
	}

	if server := opts.Server; server != nil {
		port := server.Port
		if port == 0 {
			port = DefaultServerPort
		}
		args = append(args, "--server", server.Host, "--port", strconv.Itoa(port))
	}

	if proxy := opts.Proxy; proxy != nil {
		port := proxy.Port
		if port == 0 {
			port = DefaultProxyPort
		}
		args = append(args,
			"--proxyHost", proxy.Host,
			"--proxyPort", strconv.Itoa(port),
			"--proxyUser", proxy.Username,
			"--proxyPass", proxy.Password,
		)
	}

	opts.events().Debug("set launch options")
	return args
}
