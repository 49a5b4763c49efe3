package minecraft

import "runtime"

// Platform tags as they are used in version descriptors
const (
	OSLinux   = "linux"
	OSMacOS   = "osx"
	OSWindows = "windows"
)

// PlatformTag converts a GOOS value into the os tag used by version
// descriptors. Values that already are os tags are returned unchanged.
func PlatformTag(goos string) string {
	if goos == "darwin" {
		return OSMacOS
	}
	return goos
}

// CurrentPlatform returns the os tag of the running system
func CurrentPlatform() string {
	return PlatformTag(runtime.GOOS)
}

// archTag converts a GOARCH value into the arch names used in rules
func archTag(arch string) string {
	switch arch {
	case "amd64", "x86_64":
		return "x64"
	case "386", "i386":
		return "x86"
	case "arm":
		return "arm32"
	}
	// note: we don't know how other platforms are named
	return arch
}

// archBits returns the value for "${arch}" placeholders in native classifiers
func archBits(arch string) string {
	switch archTag(arch) {
	case "x86", "arm32":
		return "32"
	}
	return "64"
}
