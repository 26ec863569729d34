package config

import (
	"os"
	"path/filepath"

	"github.com/mrz1836/worldclock/internal/constants"
	"github.com/mrz1836/worldclock/internal/errors"
)

// HomeDir returns the worldclock home directory.
// WORLDCLOCK_HOME takes precedence over ~/.worldclock.
func HomeDir() (string, error) {
	if home := os.Getenv(constants.HomeEnvVar); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.AppHome), nil
}

// GlobalConfigPath returns the full path to the default configuration file,
// typically ~/.worldclock/config.yaml.
func GlobalConfigPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", errors.Wrap(err, "get global config path")
	}
	return filepath.Join(dir, constants.GlobalConfigName), nil
}

// LogFilePath returns the path of the rotating log file.
func LogFilePath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.LogsDir, constants.CLILogFileName), nil
}
