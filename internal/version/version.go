package version

import "fmt"

// Set at build time through -ldflags "-X ...".
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

func String() string {
	return fmt.Sprintf("Version: %s - Commit: %s - Date: %s", Version, GitCommit, BuildDate)
}
