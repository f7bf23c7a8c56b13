package constants

// Directory names used by clockface.
const (
	// ClockfaceHome is the hidden directory name where clockface keeps its config and logs.
	// This directory is created in the user's home directory.
	ClockfaceHome = ".clockface"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"
)

// File names.
const (
	// CLILogFileName is the name of the global CLI log file.
	// This file is located in ~/.clockface/logs/clockface.log
	CLILogFileName = "clockface.log"

	// ConfigFileName is the name of both the global and the project config file.
	ConfigFileName = "config.yaml"
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the size at which the log file is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated files kept.
	LogMaxBackups = 3

	// LogMaxAgeDays is the number of days rotated files are kept.
	LogMaxAgeDays = 14

	// LogCompress gzips rotated files.
	LogCompress = true
)

// Environment variables.
const (
	// HomeEnvVar overrides the location of the clockface home directory.
	HomeEnvVar = "CLOCKFACE_HOME"

	// EnvPrefix is the prefix of configuration environment variables.
	EnvPrefix = "CLOCKFACE"
)
