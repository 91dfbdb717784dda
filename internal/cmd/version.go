package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/expressforge/cli/internal/output"
	"github.com/expressforge/cli/internal/version"
)

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show expressforge version information.

Displays:
  - CLI version, commit, and build date
  - Detected node and git binaries`,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.GetInfo()

	output.Println(fmt.Sprintf("expressforge version %s", info.Version))
	output.Println(fmt.Sprintf("  Commit:    %s", info.GitCommit))
	output.Println(fmt.Sprintf("  Built:     %s", info.BuildDate))
	output.Println(fmt.Sprintf("  Go:        %s", info.GoVersion))
	output.Println(fmt.Sprintf("  Platform:  %s", info.Platform))

	for _, tool := range []string{"node", "git"} {
		bin := version.DetectBinary(tool)
		if bin.Found {
			output.Println(fmt.Sprintf("  %-9s  %s (%s)", tool+":", bin.Version, bin.Path))
		} else {
			output.Println(fmt.Sprintf("  %-9s  not found", tool+":"))
		}
	}

	return nil
}
