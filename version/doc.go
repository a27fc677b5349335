// Package version exposes the build information stamped into the binary,
// reported on the /version endpoint and in the startup log.
//
// Version, git commit, and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/telar-labs/authguard/version.Version=1.0.0"
package version
