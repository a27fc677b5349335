package version

import (
	"runtime/debug"
	"strings"
)

// Set at build time via -ldflags. Builds without stamping fall back to the
// module build info recorded by the Go toolchain.
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
	GoVersion = ""
)

// Info is the build information surfaced on the /version endpoint.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	IsRelease bool   `json:"is_release"`
	IsDirty   bool   `json:"is_dirty"`
}

// GetVersionInfo resolves build information, preferring ldflags-stamped
// values and filling gaps from debug.ReadBuildInfo.
func GetVersionInfo() *Info {
	info := &Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		IsRelease: Version != "dev" && !strings.Contains(Version, "dirty"),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	if info.GoVersion == "" {
		info.GoVersion = bi.GoVersion
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = shortCommit(setting.Value)
			}
		case "vcs.modified":
			info.IsDirty = setting.Value == "true"
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = setting.Value
			}
		}
	}

	return info
}

// GetShortVersion returns the one-line version string logged at startup:
// "<version>-<commit>", with a dirty marker for builds from a modified tree.
func GetShortVersion() string {
	info := GetVersionInfo()
	if info.GitCommit == "" {
		return info.Version
	}
	if info.IsDirty {
		return info.Version + "-" + info.GitCommit + "-dirty"
	}
	return info.Version + "-" + info.GitCommit
}

func shortCommit(revision string) string {
	if len(revision) > 7 {
		return revision[:7]
	}
	return revision
}
