package handler

import (
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version        string `json:"version"`
	GoVersion      string `json:"go_version"`
	BuildTime      string `json:"build_time,omitempty"`
	GitCommit      string `json:"git_commit,omitempty"`
	CatalogVersion string `json:"catalog_version,omitempty"`
}

// Build-time variables (injected via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HandleVersion returns version information about the running binary and its mission catalog
func HandleVersion(catalogVersion string) http.HandlerFunc {
	info := VersionInfo{
		Version:        resolveVersion(),
		GoVersion:      runtime.Version(),
		BuildTime:      BuildTime,
		GitCommit:      resolveCommit(),
		CatalogVersion: catalogVersion,
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

// resolveVersion prefers the ldflags value, then $VERSION
func resolveVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if envVersion := os.Getenv("VERSION"); envVersion != "" {
		return envVersion
	}
	return "dev"
}

// resolveCommit falls back to the VCS revision stamped by the go tool
func resolveCommit() string {
	if GitCommit != "unset" && GitCommit != "" {
		return GitCommit
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return GitCommit
}
