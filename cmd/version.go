package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the lintfix build version, VCS revision and the Go version used to build it.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				info = nil
			}

			writeVersion(cmd.OutOrStdout(), info)
		},
	}
}

// writeVersion prints the module version, the VCS revision (marked dirty
// when the tree had local modifications) and the Go toolchain version.
func writeVersion(w io.Writer, info *debug.BuildInfo) {
	if info == nil || info.Main.Version == "" {
		_, _ = fmt.Fprintln(w, "version: unknown")
		return
	}

	_, _ = fmt.Fprintf(w, "lintfix version\t %s\n", info.Main.Version)

	var revision string

	dirty := false

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if revision != "" {
		if dirty {
			revision += " (dirty)"
		}

		_, _ = fmt.Fprintf(w, "revision\t %s\n", revision)
	}

	_, _ = fmt.Fprintf(w, "go version\t %s\n", info.GoVersion)
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
