package cmd

import (
	"github.com/spf13/cobra"
	"lintfix.dev/pkg/lintfix/internal/domain"
	m "lintfix.dev/pkg/lintfix/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <report>",
		Short: "View a saved run report",
		Long:  "View a run report previously written with --report.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := getWorkflow(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			return wf.View(cmd.Context(), domain.ViewArgs{Report: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
