package version

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/dendrascience/tagfs/version.Version=..." at
// release time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info describes the running tagfs binary.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Package string `json:"package"`
}

// GetVersion returns the release version, falling back to the module
// version recorded in the build info.
func GetVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "development"
}

// GetInfo returns the version together with the VCS revision and time of the
// build.
func GetInfo() Info {
	info := Info{
		Version: GetVersion(),
		Commit:  Commit,
		Date:    Date,
		Package: "tagfs",
	}
	if info.Commit == "unknown" || info.Commit == "" {
		info.Commit = buildSetting("vcs.revision")
	}
	if info.Date == "unknown" || info.Date == "" {
		info.Date = buildSetting("vcs.time")
	}
	return info
}

func buildSetting(key string) string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == key && setting.Value != "" {
				return setting.Value
			}
		}
	}
	return "unknown"
}

// GetFullVersion returns the version followed by the short commit and build
// date when they are known, e.g. "v0.3.0 (1a2b3c4, built 2026-01-02T15:04:05Z)".
func GetFullVersion() string {
	return GetInfo().String()
}

func (i Info) String() string {
	if i.Commit == "unknown" || len(i.Commit) <= 7 {
		return i.Version
	}
	short := i.Commit[:7]
	if i.Date == "unknown" {
		return fmt.Sprintf("%s (%s)", i.Version, short)
	}
	return fmt.Sprintf("%s (%s, built %s)", i.Version, short, i.Date)
}
