// Package build describes the running binary.
package build

import "fmt"

const repoURL = "https://github.com/bnema/dumbed"

// Info is injected through ldflags by the release build.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// IsDev reports whether the binary was built without release ldflags.
func (i Info) IsDev() bool {
	return i.Version == "" || i.Version == "dev"
}

// ShortCommit returns the first seven characters of the commit hash.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

// String formats the version line printed by --version.
func (i Info) String() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	if c := i.ShortCommit(); c != "" && c != "unknown" {
		return fmt.Sprintf("%s (%s)", version, c)
	}
	return version
}

// RepoURL returns the project repository URL.
func RepoURL() string {
	return repoURL
}
