package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainmocks "lintfix.dev/pkg/lintfix/internal/domain/mocks"
	m "lintfix.dev/pkg/lintfix/internal/model"
)

const testEventPayload = `{
  "action": "opened",
  "number": 7,
  "pull_request": {
    "number": 7,
    "base": {"ref": "main", "sha": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"},
    "head": {"ref": "feature", "sha": "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"}
  },
  "repository": {"name": "app", "full_name": "octo/app", "owner": {"login": "octo"}}
}`

// useMockWorkflow swaps the shared workflow for a mock and isolates the
// environment a CI runner would otherwise leak into the test.
func useMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	for _, envs := range envBindings {
		for _, env := range envs {
			t.Setenv(env, "")
		}
	}

	t.Setenv("LINTFIX_LOG_FILENAME", "-")

	return mockWorkflow
}

func setPullRequestEnv(t *testing.T) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "event.json")
	require.NoError(t, os.WriteFile(path, []byte(testEventPayload), 0o600))

	t.Setenv("GITHUB_EVENT_PATH", path)
	t.Setenv("GITHUB_REPOSITORY", "octo/app")
	t.Setenv("GITHUB_HEAD_REF", "feature")
}

func expectedPullRequest() *m.PullRequestContext {
	return &m.PullRequestContext{
		Owner:   "octo",
		Repo:    "app",
		Number:  7,
		BaseSHA: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		HeadSHA: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		HeadRef: "feature",
	}
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "lintfix", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
	assert.True(t, cmd.SilenceUsage)

	for _, name := range []string{reportFlagName, logFileFlagName, verboseFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	useMockWorkflow(t)

	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "GITHUB_EVENT_PATH")
}

func TestInit(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"run", "list", "view", "init", "version"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}

func TestWriteWorkflowError(t *testing.T) {
	out := &bytes.Buffer{}
	writeWorkflowError(out, errors.New("eslint completed with errors\n100% broken"))

	assert.Equal(t, "::error::eslint completed with errors%0A100%25 broken\n", out.String())
}

func TestWorkspacePath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GITHUB_WORKSPACE", dir)
	t.Setenv("LINTFIX_GITHUB_WORKSPACE", "")

	got, err := workspacePath()
	require.NoError(t, err)
	assert.Equal(t, m.Path(dir), got)
}

func TestNewWorkflow_ChangeSources(t *testing.T) {
	useMockWorkflow(t)

	for _, source := range []string{changesSourceAPI, changesSourceGit} {
		t.Run(source, func(t *testing.T) {
			t.Setenv("LINTFIX_CHANGES_SOURCE", source)

			wf, err := newWorkflow(context.Background(), newRootCmd())
			require.NoError(t, err)
			assert.NotNil(t, wf)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		t.Setenv("LINTFIX_CHANGES_SOURCE", "svn")

		_, err := newWorkflow(context.Background(), newRootCmd())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "svn")
	})
}

func TestLoadPullRequest(t *testing.T) {
	useMockWorkflow(t)

	pr, err := loadPullRequest()
	require.NoError(t, err)
	assert.Nil(t, pr)

	setPullRequestEnv(t)

	pr, err = loadPullRequest()
	require.NoError(t, err)
	assert.Equal(t, expectedPullRequest(), pr)
}

func TestConfigureLogger_Stderr(t *testing.T) {
	stderr := &bytes.Buffer{}

	configureLogger(stderrLogFilename, true, stderr)
	globalLogger.Debug("probe", "key", "value")

	assert.Contains(t, stderr.String(), "msg=probe")
	assert.Contains(t, stderr.String(), "key=value")
}

func TestConfigureLogger_File(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "lintfix.log")
	viper.Set(logLevelKey, "warn")
	t.Cleanup(func() { viper.Set(logLevelKey, defaultLogLevel) })

	configureLogger(logPath, false, &bytes.Buffer{})
	globalLogger.Info("dropped")
	globalLogger.Warn("kept")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept")
}

func TestExecute_WithError(t *testing.T) {
	// Save original rootCmd
	originalRootCmd := rootCmd
	defer func() {
		rootCmd = originalRootCmd
	}()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("command failed")
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})

	rootCmd = mockCmd

	// Execute would call os.Exit(1), so only the command error is checked here.
	err := rootCmd.Execute()
	require.Error(t, err)
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Println("success")
				return nil
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "success")
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				return fmt.Errorf("eslint completed with errors")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute() // This should call os.Exit(1)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1", "GITHUB_ACTIONS=true")
	output, err := cmd.CombinedOutput()

	require.Error(t, err)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		assert.Equal(t, 1, exitErr.ExitCode())
	} else {
		assert.Fail(t, "expected exec.ExitError", "got %T", err)
	}

	assert.Contains(t, string(output), "::error::eslint completed with errors")
}
