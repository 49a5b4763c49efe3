// Package java locates the java binary the rendered launch command uses
package java

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// DefaultBin is used if no java installation could be found
const DefaultBin = "java"

// Bin returns the path of the java binary inside the java home dir
func Bin(home string) string {
	return filepath.Join(home, binPath(runtime.GOOS))
}

func binPath(goos string) string {
	switch goos {
	case "windows":
		return filepath.Join("bin", "java.exe")
	case "darwin": // macOS
		return filepath.Join("Contents", "Home", "bin", "java")
	default:
		return filepath.Join("bin", "java")
	}
}

// Find returns the java binary of $JAVA_HOME, the one in $PATH or DefaultBin
func Find() string {
	if home := os.Getenv("JAVA_HOME"); home != "" {
		// JAVA_HOME usually points to Contents/Home on macOS already
		for _, bin := range []string{filepath.Join(home, "bin", exe()), Bin(home)} {
			if info, err := os.Stat(bin); err == nil && !info.IsDir() {
				return bin
			}
		}
	}
	if bin, err := exec.LookPath(DefaultBin); err == nil {
		return bin
	}
	return DefaultBin
}

func exe() string {
	if runtime.GOOS == "windows" {
		return "java.exe"
	}
	return "java"
}
