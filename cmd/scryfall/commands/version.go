package commands

import (
	"runtime"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the Scryfall CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			type VersionInfo struct {
				Version   string `json:"version"    yaml:"version"`
				Commit    string `json:"commit"     yaml:"commit"`
				Built     string `json:"built"      yaml:"built"`
				GoVersion string `json:"go_version" yaml:"go_version"`
			}

			info := VersionInfo{Version: version, Commit: commit, Built: date, GoVersion: runtime.Version()}

			return writeResult(cmd.OutOrStdout(), info, tableView{
				header: []string{"Property", "Value"},
				rows: [][]string{
					{"Version", info.Version},
					{"Commit", info.Commit},
					{"Built", info.Built},
					{"Go", info.GoVersion},
				},
			})
		},
	}
}
