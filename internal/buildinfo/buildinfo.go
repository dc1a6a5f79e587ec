// Package buildinfo carries the version stamped in by the linker:
//
//	go build -ldflags "-X pongos/internal/buildinfo.Version=v0.3.0 -X pongos/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version if one was stamped, else the commit, else "dev".
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	}
	return "dev"
}

// String describes the build for the boot log.
func String() string {
	return Short() + " (commit " + Commit + ", built " + Date + ")"
}
