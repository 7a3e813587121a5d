// Package version provides build-time version information for mds.
package version

// These variables are set at build time via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String formats the version line printed by mds --version.
func String() string {
	return "mds version " + Version + " (commit: " + Commit + ", built: " + Date + ")"
}
