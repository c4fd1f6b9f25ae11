// Package version records build metadata for the pathfang binary.
package version

// Set at build time via -ldflags "-X github.com/Sumatoshi-tech/pathfang/pkg/version.Version=...".
var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "unknown"

	// Date is the build timestamp.
	Date = "unknown"
)
