package version

import "fmt"

// Version is the current version of fleet.
var Version = "1.0.0"

// Commit is set at build time with -ldflags "-X ...version.Commit=..."
var Commit = ""

// String returns the version, followed by the commit when known
func String() string {
	if Commit == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, Commit)
}
