package minecraft

// AssetIndex maps logical asset paths (like "minecraft/sounds/ambient/cave/cave1.ogg")
// to their content addressed objects
type AssetIndex struct {
	Objects map[string]AssetObject `json:"objects"`
	// Virtual is set by older indexes that expect the legacy layout
	Virtual bool `json:"virtual,omitempty"`
}

// AssetObject is one minecraft asset
type AssetObject struct {
	Hash string `json:"hash"`
	Size int    `json:"size"`
}

// Shard returns the first two hex characters of the hash. It is the name
// of the sub directory the object is stored in.
func (a *AssetObject) Shard() string {
	if len(a.Hash) < 2 {
		return a.Hash
	}
	return a.Hash[:2]
}

// UnixPath returns the path including the folder
// example: fe/fe32f3b8…
func (a *AssetObject) UnixPath() string {
	return a.Shard() + "/" + a.Hash
}

// DownloadURL returns the download url for this asset on the given asset host
func (a *AssetObject) DownloadURL(host string) string {
	return trimSlash(host) + "/" + a.UnixPath()
}

func trimSlash(s string) string {
	for len(s) != 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
