package minecraft

// Rule is a rule that can be applied to an argument or library.
// It can be used to determine if the argument or library should be applied to a specific OS.
type Rule struct {
	Action   string          `json:"action"`
	OS       OS              `json:"os"`
	Features map[string]bool `json:"features"`
}

// OS defines the feature of an OS that can be used in a [Rule] to determine if it should be applied.
type OS struct {
	Name string `json:"name"`
	// Version of the os (can be a regex string)
	Version string `json:"version"`
	// Arch of the system
	Arch string `json:"arch"`
}

func (r Rule) appliesFor(os string, arch string) bool {
	os = PlatformTag(os)
	arch = archTag(arch)

	// Features are launcher options (demo mode, custom resolution). we never enable them
	if len(r.Features) != 0 {
		return false
	}

	switch r.Action {
	case "allow":
		if r.OS.Name != "" && r.OS.Name != os {
			return false
		}
		// TODO: match OS.Version as a regex against the kernel version, it is denied for now
		if r.OS.Version != "" {
			return false
		}
		if r.OS.Arch != "" && r.OS.Arch != arch {
			return false
		}
		return true
	case "disallow":
		if r.OS.Name != "" && r.OS.Name == os {
			return false
		}
		if r.OS.Arch != "" && r.OS.Arch == arch {
			return false
		}
		if r.OS.Name == os && r.OS.Version != "" {
			return false
		}
		return true
	}

	// unknown action
	return true
}
