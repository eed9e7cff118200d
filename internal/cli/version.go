package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mrz1836/addrgen/internal/output"
)

// BuildInfo holds the values stamped in at link time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

//nolint:gochecknoglobals // set once by Execute
var buildInfo BuildInfo

func formatVersion(info BuildInfo) string {
	version, commit, date := info.Version, info.Commit, info.Date
	if version == "" {
		version = "dev"
	}
	if commit == "" {
		commit = "unknown"
	}
	if date == "" {
		date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}

// versionCmd prints build information.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the addrgen version, commit and build date along with the Go runtime.`,
	Example: `  addrgen version
  addrgen version -o json`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if !formatter.IsJSON() {
			return formatter.Emit("addrgen "+formatVersion(buildInfo), nil)
		}
		return formatter.EmitFields(output.NewFields().
			Add("version", formatVersion(buildInfo)).
			Add("go", runtime.Version()).
			Add("platform", runtime.GOOS+"/"+runtime.GOARCH))
	},
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.GroupID = groupConfig
}
