package buildinfo

import "fmt"

// Stamped at release time, e.g.
//
//	go build -ldflags "-X github.com/cleared-dev/budget/internal/buildinfo.Version=v1.2.0"
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String describes the running binary for --version.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
