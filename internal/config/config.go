// Package config provides configuration management for worldclock with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (applied by the caller after Load)
//  2. Environment variables (WORLDCLOCK_* prefix)
//  3. Config file (--config, or ~/.worldclock/config.yaml)
//  4. Built-in defaults
//
// The selected timezone itself is never configured or persisted; every
// process starts on the local timezone.
//
// IMPORTANT: This package may import internal/constants, internal/errors and
// internal/zone, but MUST NOT import the display or tui packages.
package config

import "time"

// Config is the root configuration structure for worldclock.
type Config struct {
	// Clock contains settings for the display refresh loop.
	Clock ClockConfig `yaml:"clock" mapstructure:"clock"`

	// Modal contains settings for the timezone selection modal.
	Modal ModalConfig `yaml:"modal" mapstructure:"modal"`

	// Notifications contains settings for toasts shown after a commit.
	Notifications NotificationsConfig `yaml:"notifications" mapstructure:"notifications"`

	// Zones is the option list offered by the selection modal.
	// It must contain the "local" sentinel.
	Zones []string `yaml:"zones" mapstructure:"zones"`
}

// ClockConfig contains settings for the display refresh loop.
type ClockConfig struct {
	// RefreshInterval is the period of the display refresh.
	// Default: 1s
	RefreshInterval time.Duration `yaml:"refresh_interval" mapstructure:"refresh_interval"`

	// PulseDuration is how long the time region is emphasized after a refresh.
	// Default: 300ms
	PulseDuration time.Duration `yaml:"pulse_duration" mapstructure:"pulse_duration"`
}

// ModalConfig contains settings for the timezone selection modal.
type ModalConfig struct {
	// OpenFlash is how long the modal frame is highlighted after opening.
	// Default: 500ms
	OpenFlash time.Duration `yaml:"open_flash" mapstructure:"open_flash"`

	// CommitDelay is the simulated commit latency after confirm.
	// Default: 500ms
	CommitDelay time.Duration `yaml:"commit_delay" mapstructure:"commit_delay"`

	// ConfirmReset is how long the success affordance stays on the confirm button.
	// Default: 1.5s
	ConfirmReset time.Duration `yaml:"confirm_reset" mapstructure:"confirm_reset"`

	// Rows is the number of options visible at once.
	// Default: 8
	Rows int `yaml:"rows" mapstructure:"rows"`
}

// NotificationsConfig contains settings for toasts.
type NotificationsConfig struct {
	// Enabled raises a toast after each commit.
	// Default: true
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// Bell rings the terminal bell alongside each toast.
	// Default: false
	Bell bool `yaml:"bell" mapstructure:"bell"`

	// EnterDelay is the delay before a new toast becomes visible.
	// Default: 10ms
	EnterDelay time.Duration `yaml:"enter_delay" mapstructure:"enter_delay"`

	// VisibleFor is how long a toast stays fully visible.
	// Default: 3s
	VisibleFor time.Duration `yaml:"visible_for" mapstructure:"visible_for"`

	// ExitDuration is how long a leaving toast stays on screen before removal.
	// Default: 300ms
	ExitDuration time.Duration `yaml:"exit_duration" mapstructure:"exit_duration"`
}
