package types

import "runtime"

// Version information for the meta-oxide library.
const (
	Version = "0.4.0"
	Name    = "meta-oxide"
)

// BuildInfo contains version and build information for the meta-oxide library.
// It includes the version number, name, and Go version used to build the library.
type BuildInfo struct {
	Version   string `json:"version" yaml:"version"`
	Name      string `json:"name" yaml:"name"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// GetBuildInfo returns the current version information for the meta-oxide library.
// This is useful for displaying version information in logs or help output.
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Name:      Name,
		GoVersion: runtime.Version(),
	}
}
