package version

import (
	"fmt"
	"runtime"
)

// These variables are set at build time via -ldflags
var (
	Version   = "dev"     // Set via: -ldflags "-X folio/internal/version.Version=v1.0.0"
	BuildTime = "unknown" // Set via: -ldflags "-X folio/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
	GitCommit = "unknown" // Set via: -ldflags "-X folio/internal/version.GitCommit=$(git rev-parse HEAD)"
)

// BuildInfo contains build information
type BuildInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build info of the running binary
func Get() BuildInfo {
	return BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a single-line description of the build
func (b BuildInfo) String() string {
	return fmt.Sprintf("folio %s (%s, built %s, %s)", b.Version, b.GitCommit, b.BuildTime, b.Platform)
}
