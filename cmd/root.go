// Package cmd provides the root command and CLI setup for lintfix.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"lintfix.dev/pkg/lintfix/internal/adapter"
	"lintfix.dev/pkg/lintfix/internal/controller"
	"lintfix.dev/pkg/lintfix/internal/domain"
	m "lintfix.dev/pkg/lintfix/internal/model"
)

// workflow is built on first use; tests replace it with a mock.
var workflow domain.Workflow

// reportFlag is a root-level flag shared by commands that write or read a run report.
var reportFlag string

var logFileFlag string

var verboseFlag bool

const rootLongDescription = `lintfix lints the JavaScript and TypeScript files a pull request changed,
reports the findings in ESLint's stylish format and commits ESLint's
automatic fixes back to the pull request branch.

It reads the pull request from the GitHub Actions environment
(GITHUB_EVENT_PATH, GITHUB_REPOSITORY, GITHUB_HEAD_REF) and authenticates
with GITHUB_TOKEN.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "lintfix",
		Short:        "Lint pull request changes and commit automatic fixes",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey), cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&reportFlag, reportFlagName, viper.GetString(reportFlagName), "path of the YAML run report")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportFlagName), reportFlagName)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), `log file ("-" for stderr)`)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		if viper.GetBool(githubActionsKey) {
			writeWorkflowError(os.Stdout, err)
		}

		os.Exit(1)
	}
}

// writeWorkflowError emits an ::error:: workflow command so the failure is
// annotated on the GitHub Actions run.
func writeWorkflowError(w io.Writer, err error) {
	escaper := strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")
	_, _ = fmt.Fprintf(w, "::error::%s\n", escaper.Replace(err.Error()))
}

// getWorkflow returns the shared workflow, building it from configuration on first use.
func getWorkflow(ctx context.Context, cmd *cobra.Command) (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	wf, err := newWorkflow(ctx, cmd)
	if err != nil {
		return nil, err
	}

	workflow = wf

	return workflow, nil
}

func newWorkflow(ctx context.Context, cmd *cobra.Command) (domain.Workflow, error) {
	workspace, err := workspacePath()
	if err != nil {
		return nil, err
	}

	client, err := adapter.NewGitHubClient(ctx, viper.GetString(githubTokenKey), viper.GetString(githubAPIURLKey))
	if err != nil {
		return nil, fmt.Errorf("create github client: %w", err)
	}

	var lister adapter.ChangeLister

	switch source := viper.GetString(changesSourceKey); source {
	case changesSourceAPI, "":
		lister = adapter.NewGitHubChangeLister(client)
	case changesSourceGit:
		lister = adapter.NewGitChangeLister(workspace)
	default:
		return nil, fmt.Errorf("unknown %s %q (want %q or %q)", changesSourceKey, source, changesSourceAPI, changesSourceGit)
	}

	runner := adapter.NewLocalLintRunnerAdapter(
		viper.GetStringSlice(lintCommandKey),
		viper.GetStringSlice(lintArgsKey),
		time.Duration(viper.GetInt64(lintTimeoutKey))*time.Second,
	)

	minInterval := time.Duration(viper.GetFloat64(commitMinIntervalKey) * float64(time.Second))
	store := adapter.NewGitHubContentStore(client, minInterval)

	return domain.NewWorkflow(
		domain.NewChangeResolver(lister),
		domain.NewLinter(runner, workspace),
		domain.NewInterpreter(),
		domain.NewFixCommitter(store, workspace, viper.GetString(commitMessageKey)),
		adapter.NewReportStore(),
		controller.NewUI(cmd, controller.IsTTY(os.Stdout)),
	), nil
}

func workspacePath() (m.Path, error) {
	workspace := viper.GetString(githubWorkspaceKey)
	if strings.TrimSpace(workspace) == "" {
		workspace = defaultWorkspace
	}

	abs, err := filepath.Abs(workspace)
	if err != nil {
		return "", fmt.Errorf("resolve workspace %q: %w", workspace, err)
	}

	return m.Path(abs), nil
}

// loadPullRequest reads the pull request the job was triggered for. A nil
// context means the job was not triggered by a pull request.
func loadPullRequest() (*m.PullRequestContext, error) {
	pr, err := adapter.ReadPullRequestEvent(
		viper.GetString(githubEventPathKey),
		viper.GetString(githubRepositoryKey),
		viper.GetString(githubHeadRefKey),
	)
	if err != nil {
		return nil, fmt.Errorf("load pull request event: %w", err)
	}

	return pr, nil
}
