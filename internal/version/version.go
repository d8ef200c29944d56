// Package version holds build information stamped via -ldflags.
package version

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "unknown"
)
