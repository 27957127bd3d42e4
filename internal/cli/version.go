package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/claude-notify/claude-notify/internal/build"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Display version information",
		Long:    "Display version, commit, build date, and Go version information for claude-notify",
		GroupID: GroupDiagnostics,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if build.IsDevBuild() {
				fmt.Fprintln(out, "claude-notify version dev (development build)")
			} else {
				fmt.Fprintf(out, "claude-notify version %s\n", build.Version)
			}
			fmt.Fprintf(out, "Built from commit: %s\n", build.Commit)
			fmt.Fprintf(out, "Build date: %s\n", build.BuildDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
		},
	}
}
