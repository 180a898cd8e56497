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
		fmt.Fprintln(cmd.OutOrStdout(), "blockhint", displayVersion(version))
	},
}

// displayVersion canonicalizes release tags ("1.2" becomes "v1.2.0") and
// marks anything else as a development build.
func displayVersion(v string) string {
	tagged := v
	if tagged != "" && tagged[0] != 'v' {
		tagged = "v" + tagged
	}
	if !semver.IsValid(tagged) {
		return "(devel)"
	}
	return semver.Canonical(tagged)
}
