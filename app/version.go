package app

import (
	"fmt"
	"io"
)

// Set with -ldflags "-X linkpad/app.Version=..." at build time
var (
	Version = "dev"
	Dev     = ""
	Commit  = ""
)

// FullVersion returns the version string including dev and commit infos
func FullVersion() string {
	version := Version

	if Dev != "" {
		version += "-dev." + Commit
	}

	if Commit != "" && Dev == "" {
		version += " (" + Commit + ")"
	}

	return version
}

// PrintVersion writes the name of the build and its version to w
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", ModuleName(), FullVersion())
}
