// Package version reports the lovetest build.
package version

import "runtime/debug"

// Set at build time via ldflags:
//
//	-X github.com/rnwolfe/lovetest/internal/version.Version=v1.2.3
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Full returns "version (commit) date".
func Full() string {
	return Version + " (" + Commit + ") " + Date
}

// Short returns the bare version.
func Short() string {
	return Version
}

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fromBuildInfo(info)
	}
}

// fromBuildInfo fills whichever of Version, Commit and Date still hold their
// ldflags default, so `go install` builds report something useful.
func fromBuildInfo(info *debug.BuildInfo) {
	if info == nil {
		return
	}

	// "(devel)" means built from a checkout without a tag.
	if v := info.Main.Version; Version == "dev" && v != "" && v != "(devel)" {
		Version = v
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	if rev := settings["vcs.revision"]; Commit == "none" && rev != "" {
		if len(rev) > 7 {
			rev = rev[:7]
		}
		Commit = rev
	}
	if t := settings["vcs.time"]; Date == "unknown" && t != "" {
		Date = t
	}
}
