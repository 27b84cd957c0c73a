// Package build provides domain entities for build information.
package build

import "fmt"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String renders the info on a single line.
func (i Info) String() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf("tabs %s (commit %s, built %s, %s)", version, orUnknown(i.Commit), orUnknown(i.BuildDate), orUnknown(i.GoVersion))
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
