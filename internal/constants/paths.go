package constants

// Log file names.
const (
	// CLILogFileName is the name of the rotating application log file.
	// This file is located in ~/.worldclock/logs/worldclock.log
	CLILogFileName = "worldclock.log"

	// LogMaxSizeMB is the maximum size in megabytes before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated files kept.
	LogMaxBackups = 3

	// LogMaxAgeDays is the number of days rotated files are kept.
	LogMaxAgeDays = 14

	// LogCompress enables gzip compression of rotated files.
	LogCompress = true
)

// Configuration file names.
const (
	// GlobalConfigName is the name of the global configuration file.
	// This file is located in the worldclock home directory.
	GlobalConfigName = "config.yaml"
)
