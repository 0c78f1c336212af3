package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("quickcode", displayVersion(version))
	},
}

// displayVersion canonicalizes release versions ("1.2" -> "v1.2.0") and
// leaves development builds alone.
func displayVersion(v string) string {
	if !semver.IsValid(v) && semver.IsValid("v"+v) {
		v = "v" + v
	}
	if c := semver.Canonical(v); c != "" {
		return c
	}
	return v
}
