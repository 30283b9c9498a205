// Package version holds the build-time version string for paneforge.
package version

// Version is the current release version.
const Version = "0.1.0"

// GitRef is injected at build time via -ldflags -X for dev builds.
var GitRef = "unknown"
