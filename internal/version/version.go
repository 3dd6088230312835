// Package version exposes the build identifier baked into the binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set at build time using -ldflags
var (
	// Version is the semantic version of the service
	Version = "dev"

	// GitCommit is the git commit hash when the binary was built
	GitCommit = "unknown"
)

// BuildVersion returns the identifier rendered into pages by the
// docsrv_version template function, e.g. "0.6.0 (a1b2c3d)".
func BuildVersion() string {
	if GitCommit != "unknown" && GitCommit != "" {
		return fmt.Sprintf("%s (%s)", GetVersion(), shortCommit(GitCommit))
	}
	return GetVersion()
}

// GetVersion returns the service version
func GetVersion() string {
	if Version != "" && Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}

	return "dev"
}

// Platform returns the os/arch pair the binary was built for.
func Platform() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
