// Package version provides build-time version information.
package version

import "fmt"

// These variables are set at build time via ldflags, e.g.
// -X github.com/open-cli-collective/spotlight-md/internal/version.Version=v1.2.0
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info formats the build information shown by --version.
func Info() string {
	return fmt.Sprintf("spotmd version %s (commit: %s, built: %s)", Version, Commit, Date)
}
