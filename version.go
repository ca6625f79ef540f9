// Package plotmcp provides the version information for plotmcp.
package plotmcp

// Version is the current version of plotmcp.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
