package cmd

import (
	"github.com/spf13/cobra"
	"lintfix.dev/pkg/lintfix/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the changed files that would be linted",
		Long:  "Resolve the pull request's changed files and print the ones a run would lint.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pr, err := loadPullRequest()
			if err != nil {
				return err
			}

			wf, err := getWorkflow(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			return wf.List(cmd.Context(), domain.ListArgs{PullRequest: pr})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
