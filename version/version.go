// Package version exposes the gateway build metadata, stamped at build
// time with -ldflags or recovered from the embedded VCS information.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Set at build time:
	//   go build -ldflags "-X .../version.Version=v1.2.0 -X .../version.Commit=abc1234"
	Version = "dev"
	Commit  = ""
)

// Info describes the running build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
	Dirty     bool   `json:"dirty"`
}

// Get assembles build information, preferring ldflags values over the
// VCS metadata Go embeds into the binary.
func Get() Info {
	info := Info{
		Version: Version,
		Commit:  Commit,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
				if len(info.Commit) > 7 {
					info.Commit = info.Commit[:7]
				}
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// Short returns a compact version string such as "dev-abc1234".
func Short() string {
	info := Get()
	switch {
	case info.Commit == "":
		return info.Version
	case info.Dirty:
		return fmt.Sprintf("%s-%s-dirty", info.Version, info.Commit)
	default:
		return fmt.Sprintf("%s-%s", info.Version, info.Commit)
	}
}
