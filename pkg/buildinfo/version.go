// Package buildinfo holds build-time version metadata for crossgrid.
package buildinfo

// These values are injected at build time via ldflags:
//
//	go build -ldflags "-X github.com/pmeier/crossgrid/pkg/buildinfo.Version=v1.2.3"
var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"
	// Commit is the git commit SHA the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
