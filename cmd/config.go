package cmd

import (
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "fixtures"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName      = "output"
	anchorFlagName      = "anchor"
	skipHiddenFlagName  = "skip-hidden"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"
	scanParallelFlag    = "parallel"
	anchorConfigKey     = "anchor.name"
	skipHiddenConfigKey = "resolve.skip_hidden"
	scanParallelKey     = "scan.parallel"

	defaultAnchorName   = "RusticFourier"
	defaultReportsDir   = ".fixtures-reports"
	defaultSkipHidden   = false
	defaultScanParallel = 1

	envPrefix = "FIXTURES"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".fixtures.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(anchorConfigKey, defaultAnchorName)
	viper.SetDefault(skipHiddenConfigKey, defaultSkipHidden)
	viper.SetDefault(scanParallelKey, defaultScanParallel)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	// A missing fixtures.yaml is normal; an unreadable one leaves the
	// defaults in place.
	_ = viper.ReadInConfig()
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

// logConfig is the resolved logging section of the configuration.
type logConfig struct {
	path       string
	level      slog.Level
	maxSize    int
	maxBackups int
	maxAge     int
	compress   bool
}

// readLogConfig merges the log flags with the log.* keys. An empty path
// falls back to log.filename and then to the default file; verbose forces
// Debug regardless of log.level.
func readLogConfig(logPath string, verbose bool) logConfig {
	cfg := logConfig{
		path:       strings.TrimSpace(logPath),
		level:      parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo),
		maxSize:    viper.GetInt(logMaxSizeKey),
		maxBackups: viper.GetInt(logMaxBackupsKey),
		maxAge:     viper.GetInt(logMaxAgeKey),
		compress:   viper.GetBool(logCompressKey),
	}

	if cfg.path == "" {
		cfg.path = strings.TrimSpace(viper.GetString(logFilenameKey))
	}

	if cfg.path == "" {
		cfg.path = defaultLogFilename
	}

	if verbose {
		cfg.level = slog.LevelDebug
	}

	return cfg
}

// configureLogger points the default slog logger at a rotated log file.
func configureLogger(logPath string, verbose bool) {
	cfg := readLogConfig(logPath, verbose)

	writer := &lumberjack.Logger{
		Filename:   cfg.path,
		MaxSize:    cfg.maxSize,
		MaxBackups: cfg.maxBackups,
		MaxAge:     cfg.maxAge,
		Compress:   cfg.compress,
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		AddSource: true,
		Level:     cfg.level,
	})))
}
