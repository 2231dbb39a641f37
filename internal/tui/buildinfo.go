package tui

import "fmt"

// BuildInfo holds build-time metadata shown in the help overlay.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

func (b BuildInfo) String() string {
	switch {
	case b.Version == "":
		return ""
	case b.Commit == "":
		return "contactform " + b.Version
	default:
		return fmt.Sprintf("contactform %s (%s)", b.Version, b.Commit)
	}
}
