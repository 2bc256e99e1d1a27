// Package version reports which newbranch build is running.
package version

import (
	"runtime/debug"
	"strings"
	"sync"

	"github.com/crazywolf132/fstr"
)

// Version is stamped by release builds:
//
//	go build -ldflags "-X github.com/crazywolf132/newbranch/internal/version.Version=v1.0.0"
var Version string

const unknown = "0.0.0-dev"

var (
	once          sync.Once
	versionString string

	readBuildInfo = debug.ReadBuildInfo
)

// Get resolves the version once and caches it for the life of the process.
func Get() string {
	once.Do(func() {
		versionString = resolve()
	})
	return versionString
}

func resolve() string {
	if Version != "" {
		return strings.TrimPrefix(Version, "v")
	}
	info, ok := readBuildInfo()
	if !ok {
		return unknown
	}
	return fromBuildInfo(info)
}

// fromBuildInfo prefers the module version recorded by `go install` and
// falls back to the VCS stamp of a local checkout build.
func fromBuildInfo(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return strings.TrimPrefix(v, "v")
	}

	vcs := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		vcs[s.Key] = s.Value
	}
	rev, stamp := vcs["vcs.revision"], vcs["vcs.time"]
	if rev == "" || stamp == "" {
		return unknown
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}

	v := fstr.F("dev-{}-{}", rev, stamp)
	if vcs["vcs.modified"] == "true" {
		v += "-dirty"
	}
	return v
}
