// Package rewriteengine is an umbrella over this module's core packages
// (perm, term, termmap, pattern, rewrite, eqclass, rule): it exposes no
// types of its own beyond version metadata, and exists so cmd/rewriter
// and any embedder have one place to report what they are running.
//
// Version: 0.1.0
package rewriteengine

// Version is this module's current release line.
const Version = "0.1.0"

// VersionInfo carries version metadata in a form suitable for a --format
// json report or a structured log field.
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetVersionInfo returns detailed version information.
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GoVersion: "1.25+",
	}
}
