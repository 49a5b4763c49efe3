package minecraft

import (
	"encoding/json"
	"os"
	"strings"
)

// Asset layout tags that require assets to be mirrored to their logical path
const (
	AssetsLegacy = "legacy"
	AssetsPre16  = "pre-1.6"
)

// LaunchManifest is a version.json manifest that is used to launch minecraft instances
type LaunchManifest struct {
	ID string `json:"id"`
	// MinecraftArguments are used before 1.13
	MinecraftArguments string `json:"minecraftArguments,omitempty"`
	// Arguments is the new (complicated) system
	Arguments struct {
		Game []Argument `json:"game,omitempty"`
		JVM  []Argument `json:"jvm,omitempty"`
	} `json:"arguments"`
	Downloads struct {
		Client Artifact `json:"client"`
		Server Artifact `json:"server"`
	} `json:"downloads"`
	Libraries  Libraries `json:"libraries"`
	Type       string    `json:"type"`
	MainClass  string    `json:"mainClass"`
	Jar        string    `json:"jar,omitempty"`
	Assets     string    `json:"assets"`
	AssetIndex struct {
		ID        string `json:"id"`
		Sha1      string `json:"sha1"`
		Size      int    `json:"size"`
		TotalSize int    `json:"totalSize"`
		URL       string `json:"url"`
	} `json:"assetIndex"`
	InheritsFrom string `json:"inheritsFrom,omitempty"`
	JavaVersion  struct {
		Component    string `json:"component"`
		MajorVersion int    `json:"majorVersion"`
	} `json:"javaVersion"`
}

// ReadLaunchManifest parses the version json file at path
func ReadLaunchManifest(path string) (*LaunchManifest, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	man := &LaunchManifest{}
	if err := json.Unmarshal(buf, man); err != nil {
		return nil, err
	}
	return man, nil
}

// IsLegacyAssets returns true if the game expects assets at their logical path
func (l *LaunchManifest) IsLegacyAssets() bool {
	return l.Assets == AssetsLegacy || l.Assets == AssetsPre16
}

// GameArgs returns the argument template of this manifest as tokens.
// The flat "minecraftArguments" string (used before 1.13) wins over the
// structured list. Structured entries are only included if their rules apply
// to the given os tag.
func (l *LaunchManifest) GameArgs(osTag string, arch string) []string {
	if l.MinecraftArguments != "" {
		return strings.Fields(l.MinecraftArguments)
	}

	args := make([]string, 0, len(l.Arguments.Game))
	for _, arg := range l.Arguments.Game {
		if !arg.AppliesFor(osTag, arch) {
			continue
		}
		args = append(args, arg.Value...)
	}
	return args
}
