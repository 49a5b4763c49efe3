package minecraft

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// Coordinate is a maven coordinate like "org.lwjgl:lwjgl:3.3.1" or
// "org.lwjgl:lwjgl:3.3.1:natives-linux"
type Coordinate struct {
	Group      string
	Artifact   string
	Version    string
	Classifier string
}

// ParseCoordinate parses a "group:artifact:version[:classifier]" string
func ParseCoordinate(name string) (Coordinate, error) {
	parts := strings.Split(name, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return Coordinate{}, fmt.Errorf("invalid maven coordinate %q", name)
	}
	for _, p := range parts {
		if !validPart(p) {
			return Coordinate{}, fmt.Errorf("invalid maven coordinate %q", name)
		}
	}
	// the group becomes a directory per segment
	for _, segment := range strings.Split(parts[0], ".") {
		if segment == "" {
			return Coordinate{}, fmt.Errorf("invalid maven coordinate %q", name)
		}
	}
	c := Coordinate{Group: parts[0], Artifact: parts[1], Version: parts[2]}
	if len(parts) == 4 {
		c.Classifier = parts[3]
	}
	return c, nil
}

// validPart reports if p can be used as a single path element
func validPart(p string) bool {
	return p != "" && p != "." && p != ".." && !strings.ContainsAny(p, `/\`)
}

// FileName returns the jar name, for example "lwjgl-3.3.1.jar"
func (c Coordinate) FileName() string {
	if c.Classifier != "" {
		return c.Artifact + "-" + c.Version + "-" + c.Classifier + ".jar"
	}
	return c.Artifact + "-" + c.Version + ".jar"
}

// Dir returns the slash separated directory of the jar relative to a repository root
func (c Coordinate) Dir() string {
	return path.Join(strings.ReplaceAll(c.Group, ".", "/"), c.Artifact, c.Version)
}

// Path returns the slash separated jar path relative to a repository root
func (c Coordinate) Path() string {
	return c.Dir() + "/" + c.FileName()
}

// LocalDir returns Dir() inside the given libraries directory
func (c Coordinate) LocalDir(librariesDir string) string {
	return filepath.Join(librariesDir, filepath.FromSlash(c.Dir()))
}

// URL returns the download url of the jar in the given maven repository
func (c Coordinate) URL(repoRoot string) string {
	return trimSlash(repoRoot) + "/" + c.Path()
}

func (c Coordinate) String() string {
	s := c.Group + ":" + c.Artifact + ":" + c.Version
	if c.Classifier != "" {
		s += ":" + c.Classifier
	}
	return s
}
