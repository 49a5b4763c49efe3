package minecraft

import (
	"strings"
)

// Libraries as a collection of minecraft libs
type Libraries []Library

// Library is a minecraft library
type Library struct {
	// Name is the maven coordinate of the library
	Name      string `json:"name"`
	Downloads struct {
		// Artifact is the jar that belongs on the classpath. It is not set for
		// native only entries
		Artifact *Artifact `json:"artifact,omitempty"`
		// Classifiers is a list of additional artifacts.
		// It is used to download native libraries.
		// The `Natives` field is used to determine which classifier to use.
		// This field is no longer used after 1.19
		Classifiers map[string]Artifact `json:"classifiers,omitempty"`
	} `json:"downloads"`
	// URL is the repository root. Only used by loader descriptors
	URL string `json:"url,omitempty"`
	// Rules is a list of rules that determine whether this library should be included.
	// If no rules are specified, the library is included by default.
	Rules []Rule `json:"rules,omitempty"`
	// Natives is a map of OS names to native classifier names.
	// This field is no longer used after 1.19
	Natives map[string]string `json:"natives,omitempty"`
	// ServerReq and ClientReq are set by (old) forge loader descriptors
	ServerReq bool `json:"serverreq,omitempty"`
	ClientReq bool `json:"clientreq,omitempty"`
}

// Coordinate parses the library name
func (l *Library) Coordinate() (Coordinate, error) {
	return ParseCoordinate(l.Name)
}

// HasArtifact returns true if the library declares a direct (classpath) artifact
func (l *Library) HasArtifact() bool {
	return l.Downloads.Artifact != nil && l.Downloads.Artifact.Path != ""
}

// NativeClassifier returns the native artifact for the given os tag.
// The "natives" map is used if present, "natives-<os>" otherwise.
func (l *Library) NativeClassifier(osTag string, arch string) (*Artifact, bool) {
	if len(l.Downloads.Classifiers) == 0 {
		return nil, false
	}
	osTag = PlatformTag(osTag)

	key := "natives-" + osTag
	if classifier, ok := l.Natives[osTag]; ok {
		key = strings.ReplaceAll(classifier, "${arch}", archBits(arch))
	}

	native, ok := l.Downloads.Classifiers[key]
	if !ok || native.URL == "" {
		return nil, false
	}
	return &native, true
}
