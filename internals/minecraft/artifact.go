package minecraft

import (
	"encoding/json"
	"path"
)

// Artifact is an object describing a "thing" that can be downloaded
// It is used to download libraries, natives and the minecraft client itself
type Artifact struct {
	// Path of the jar file relative to the libraries folder
	// Path is not set for the minecraft client itself
	Path string `json:"path,omitempty"`
	Sha1 string `json:"sha1"`
	// Size in bytes
	Size json.Number `json:"size"`
	// URL to download the jar file
	URL string `json:"url"`
}

// FileName returns the last segment of the artifact path
func (a *Artifact) FileName() string {
	return path.Base(a.Path)
}
