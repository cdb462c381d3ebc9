package version

import "fmt"

// These variables are set via ldflags during build:
//
//	-X github.com/philipparndt/objview/version.Version=v1.2.0
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersion returns the version string
func GetVersion() string {
	return Version
}

// GetFullVersion adds commit and build date to release versions
func GetFullVersion() string {
	if Version == "dev" {
		return "dev"
	}
	if GitCommit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (%s, %s)", Version, GitCommit, BuildDate)
}
