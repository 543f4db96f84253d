package app

import "fmt"

// Set with -ldflags "-X github.com/hyperifyio/lineclip/internal/app.BuildVersion=..." in release builds.
var (
	BuildVersion = "0.0.0-dev"
	BuildCommit  = "unknown"
	BuildDate    = "unknown"
)

// VersionString formats the build information for -version output.
func VersionString() string {
	return fmt.Sprintf("lineclip %s (commit %s, built %s)", BuildVersion, BuildCommit, BuildDate)
}
