package cmd

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"lintfix.dev/pkg/lintfix/internal/domain"
	m "lintfix.dev/pkg/lintfix/internal/model"
)

var dryRunFlag bool

const runLongDescription = `Lint the files changed by the pull request, print the findings and commit
ESLint's proposed fixes to the pull request branch.

The command fails when any file has lint errors or when ESLint's output
cannot be read. Warnings never fail the run. With --dry-run the fixes are
computed and reported but nothing is committed.`

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Lint changed files and commit automatic fixes",
		Long:  runLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runID := newRunID()
			slog.SetDefault(slog.Default().With("run_id", runID))

			pr, err := loadPullRequest()
			if err != nil {
				return err
			}

			wf, err := getWorkflow(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			return wf.Run(cmd.Context(), domain.RunArgs{
				PullRequest: pr,
				DryRun:      viper.GetBool(dryRunFlagName),
				Report:      m.Path(viper.GetString(reportFlagName)),
				RunID:       runID,
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&dryRunFlag, dryRunFlagName, viper.GetBool(dryRunFlagName), "report fixes without committing them")
	bindFlagToConfig(cmd.Flags().Lookup(dryRunFlagName), dryRunFlagName)
}

// newRunID prefers the CI run id so logs and reports can be matched to the job.
func newRunID() string {
	if id := viper.GetString(githubRunIDKey); id != "" {
		return id
	}

	return uuid.NewString()
}
