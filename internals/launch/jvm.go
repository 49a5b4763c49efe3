package launch

import (
	"fmt"
	"math"
	"strings"

	"github.com/minepkg/launchkit/internals/minecraft"
	"github.com/pbnjay/memory"
)

// ClasspathSeparator returns the separator for classpath entries on the given os tag
func ClasspathSeparator(osTag string) string {
	if minecraft.PlatformTag(osTag) == minecraft.OSWindows {
		return ";"
	}
	return ":"
}

// platformFlag returns the jvm flag every client on that os needs
func platformFlag(osTag string) string {
	switch minecraft.PlatformTag(osTag) {
	case minecraft.OSWindows:
		return "-XX:HeapDumpPath=MojangTricksIntelDriversForPerformance_javaw.exe_minecraft.exe.heapdump"
	case minecraft.OSMacOS:
		// lwjgl crashes on macOS otherwise
		return "-XstartOnFirstThread"
	case minecraft.OSLinux:
		return "-Xss1M"
	}
	return ""
}

// MaxMemoryMiB returns the default heap size: 1 GiB or a quarter of the
// system memory (whatever is more) but never more than 85% of it
func MaxMemoryMiB() int {
	return maxMemoryMiB(memory.TotalMemory())
}

func maxMemoryMiB(total uint64) int {
	if total == 0 {
		// unknown system memory
		return 1024
	}
	sysMemMiB := float64(total) / 1024 / 1024
	maxRamMiB := math.Max(1024, sysMemMiB/4)
	return int(math.Min(maxRamMiB, sysMemMiB*0.85))
}

// MainClass returns the main class of overlay if set, the one of version otherwise
func MainClass(version *minecraft.LaunchManifest, overlay *minecraft.LaunchManifest) string {
	if overlay != nil && overlay.MainClass != "" {
		return overlay.MainClass
	}
	return version.MainClass
}

// JVMArgs returns the jvm arguments including the main class
func JVMArgs(version *minecraft.LaunchManifest, overlay *minecraft.LaunchManifest, opts *Options) []string {
	osTag := opts.os()
	args := make([]string, 0, 6)

	if flag := platformFlag(osTag); flag != "" {
		args = append(args, flag)
	}

	mem := opts.MemoryMiB
	if mem == 0 {
		mem = MaxMemoryMiB()
	}
	args = append(args, fmt.Sprintf("-Xmx%dM", mem))

	if opts.NativesDir != "" {
		args = append(args, "-Djava.library.path="+opts.NativesDir)
	}
	if len(opts.Classpath) != 0 {
		args = append(args, "-cp", strings.Join(opts.Classpath, ClasspathSeparator(osTag)))
	}

	return append(args, MainClass(version, overlay))
}

// Command returns the full command: java binary, jvm arguments, main class and game arguments.
// java defaults to "java".
func Command(java string, version *minecraft.LaunchManifest, overlay *minecraft.LaunchManifest, opts *Options) []string {
	if java == "" {
		java = "java"
	}
	cmd := []string{java}
	cmd = append(cmd, JVMArgs(version, overlay, opts)...)
	return append(cmd, BuildArguments(version, overlay, opts)...)
}
