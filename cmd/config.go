package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	m "github.com/maxport/maxcensus/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "maxcensus"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName  = "output"
	verboseFlagName = "verbose"
	logFileFlagName = "log-file"

	classifySectionKey      = "classify"
	classifySentinelKey     = "classify.sentinel"
	classifyMaxDepthKey     = "classify.max_depth"
	classifyMultichannelKey = "classify.multichannel_prefix"
	classifyNamespacedKey   = "classify.namespaced_prefix"
	classifyAudioIOKey      = "classify.audio_io"
	classifySpatialKey      = "classify.spatial"
	classifyRoutingKey      = "classify.routing"

	defaultOutputDir = "analysis_output"

	envPrefix = "MAXCENSUS"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".maxcensus.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultOutputDir)

	// Classification defaults. The memberships are configuration, not
	// logic: a config file may override any of them.
	tables := m.DefaultTables()
	viper.SetDefault(classifySentinelKey, tables.Sentinel)
	viper.SetDefault(classifyMaxDepthKey, tables.MaxDepth)
	viper.SetDefault(classifyMultichannelKey, tables.MultichannelPrefix)
	viper.SetDefault(classifyNamespacedKey, tables.NamespacedPrefix)
	viper.SetDefault(classifyAudioIOKey, tables.AudioIO)
	viper.SetDefault(classifySpatialKey, tables.Spatial)
	viper.SetDefault(classifyRoutingKey, tables.Routing)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// loadTables resolves the classification tables from config, env and defaults.
func loadTables() m.Tables {
	tables := m.DefaultTables()
	if err := viper.UnmarshalKey(classifySectionKey, &tables); err != nil {
		slog.Warn("invalid classify configuration, using defaults", "error", err)

		return m.DefaultTables()
	}

	return tables
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
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
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

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
