package cmd

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"lintfix.dev/pkg/lintfix/internal/adapter"
	"lintfix.dev/pkg/lintfix/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "lintfix"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	dryRunFlagName  = "dry-run"
	reportFlagName  = "report"
	logFileFlagName = "log-file"
	verboseFlagName = "verbose"

	githubTokenKey      = "github.token"
	githubRepositoryKey = "github.repository"
	githubEventPathKey  = "github.event_path"
	githubHeadRefKey    = "github.head_ref"
	githubWorkspaceKey  = "github.workspace"
	githubAPIURLKey     = "github.api_url"
	githubRunIDKey      = "github.run_id"
	githubActionsKey    = "github.actions"

	lintCommandKey = "lint.command"
	lintArgsKey    = "lint.args"
	lintTimeoutKey = "lint.timeout"

	changesSourceKey = "changes.source"
	changesSourceAPI = "api"
	changesSourceGit = "git"

	commitMessageKey     = "commit.message"
	commitMinIntervalKey = "commit.min_interval"

	defaultAPIURL            = "https://api.github.com"
	defaultWorkspace         = "."
	defaultLintTimeout       = 0
	defaultCommitMinInterval = 1.0
	defaultReport            = ""
	defaultDryRun            = false

	envPrefix = "LINTFIX"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	// stderrLogFilename sends logs to stderr instead of a rotated file.
	stderrLogFilename = "-"

	defaultLogFilename   = ".lintfix.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// envBindings maps config keys to the environment variables a CI runner
// exposes, in lookup order. Keys not listed here use the LINTFIX_ prefix only.
var envBindings = map[string][]string{
	githubTokenKey:      {"LINTFIX_GITHUB_TOKEN", "INPUT_GITHUB_TOKEN", "GITHUB_TOKEN"},
	githubRepositoryKey: {"LINTFIX_GITHUB_REPOSITORY", "GITHUB_REPOSITORY"},
	githubEventPathKey:  {"LINTFIX_GITHUB_EVENT_PATH", "GITHUB_EVENT_PATH"},
	githubHeadRefKey:    {"LINTFIX_GITHUB_HEAD_REF", "GITHUB_HEAD_REF"},
	githubWorkspaceKey:  {"LINTFIX_GITHUB_WORKSPACE", "GITHUB_WORKSPACE"},
	githubAPIURLKey:     {"LINTFIX_GITHUB_API_URL", "GITHUB_API_URL"},
	githubRunIDKey:      {"LINTFIX_GITHUB_RUN_ID", "GITHUB_RUN_ID"},
	githubActionsKey:    {"LINTFIX_GITHUB_ACTIONS", "GITHUB_ACTIONS"},
	dryRunFlagName:      {"LINTFIX_DRY_RUN", "INPUT_DRY_RUN"},
}

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	for key, envs := range envBindings {
		bindEnv(viper.GetViper(), key, envs...)
	}

	setConfigDefaults(viper.GetViper())

	// Environment-only keys are not written by init but still need defaults.
	viper.SetDefault(githubAPIURLKey, defaultAPIURL)
	viper.SetDefault(githubWorkspaceKey, defaultWorkspace)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return
		}

		slog.Warn("Failed to read config file", "file", configFileName, "error", err)
	}
}

func bindEnv(v *viper.Viper, key string, envs ...string) {
	input := append([]string{key}, envs...)
	if err := v.BindEnv(input...); err != nil {
		slog.Warn("Failed to bind environment", "key", key, "error", err)
	}
}

// setConfigDefaults sets every key that belongs in a lintfix.yaml file.
// Credentials and runner-provided values are deliberately absent.
func setConfigDefaults(v *viper.Viper) {
	v.SetDefault(configVersionKey, currentConfigVersion)
	v.SetDefault(dryRunFlagName, defaultDryRun)
	v.SetDefault(reportFlagName, defaultReport)

	v.SetDefault(lintCommandKey, adapter.DefaultLintCommand)
	v.SetDefault(lintArgsKey, []string{})
	v.SetDefault(lintTimeoutKey, defaultLintTimeout)

	v.SetDefault(changesSourceKey, changesSourceAPI)

	v.SetDefault(commitMessageKey, domain.DefaultCommitMessage)
	v.SetDefault(commitMinIntervalKey, defaultCommitMinInterval)

	// Logging defaults (used by config/env and as fallbacks for flags).
	v.SetDefault(logFilenameKey, defaultLogFilename)
	v.SetDefault(logLevelKey, defaultLogLevel)
	v.SetDefault(logVerboseKey, defaultLogVerbose)
	v.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(logCompressKey, defaultLogCompress)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug. A log path
// of "-" writes to stderr, which is what CI logs usually want.
func configureLogger(logPath string, verbose bool, stderr io.Writer) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	var logWriter io.Writer = stderr
	if logPath != stderrLogFilename {
		logWriter = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		}
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
