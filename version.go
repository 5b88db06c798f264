package musicxml

import (
	"fmt"
	"runtime"
)

// Version of the parser. musicxml-dump prints it with the build details.
const Version = "0.1.0"

// GetVersion returns Version.
func GetVersion() string {
	return Version
}

// VersionInfo describes the build of the parser.
type VersionInfo struct {
	Version   string
	GitCommit string // "unknown" unless stamped by the linker
	BuildTime string // UTC, "unknown" unless stamped by the linker
	GoVersion string
}

// GetVersionInfo reports the library version and the build stamp of the
// running binary. Release builds of musicxml-dump set the stamp with
//
//	-ldflags "-X github.com/simonhull/musicxml.gitCommit=... -X github.com/simonhull/musicxml.buildTime=..."
//
// GoVersion falls back to the toolchain the binary was built with.
func GetVersionInfo() VersionInfo {
	goVer := goVersion
	if goVer == "unknown" {
		goVer = runtime.Version()
	}
	return VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: goVer,
	}
}

// String formats the information on one line, as printed by
// musicxml-dump version.
func (v VersionInfo) String() string {
	return fmt.Sprintf("musicxml %s (commit %s, built %s, %s)", v.Version, v.GitCommit, v.BuildTime, v.GoVersion)
}

// Build stamp, overridden with -ldflags -X.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)
