// Package buildinfo carries the version stamped in at link time:
//
//	go build -ldflags "-X bootsplash/internal/buildinfo.Version=v1.2.0 \
//	  -X bootsplash/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import "strings"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version, else the commit, else "dev".
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Banner returns the one-line identification logged at start and printed
// by -version, such as "bootsplash v1.2.0 (commit 1a2b3c4, built 2026-05-01)".
func Banner(name string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" ")
	b.WriteString(Short())

	var extra []string
	if Commit != "" && Commit != "unknown" && Commit != Short() {
		extra = append(extra, "commit "+Commit)
	}
	if Date != "" && Date != "unknown" {
		extra = append(extra, "built "+Date)
	}
	if len(extra) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(extra, ", "))
		b.WriteString(")")
	}
	return b.String()
}
