// Package constants provides centralized constant values used throughout worldclock.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Directory names and paths used by worldclock for organizing data.
const (
	// AppHome is the hidden directory name where worldclock stores its config and logs.
	// This directory is created in the user's home directory.
	AppHome = ".worldclock"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// EnvPrefix is the prefix for environment variable overrides (WORLDCLOCK_*).
	EnvPrefix = "WORLDCLOCK"

	// HomeEnvVar overrides the AppHome location when set.
	HomeEnvVar = "WORLDCLOCK_HOME"
)

// Display timing defaults.
const (
	// RefreshInterval is the period of the repeating display refresh.
	RefreshInterval = 1000 * time.Millisecond

	// PulseDuration is how long the "just updated" marker stays on the time region.
	PulseDuration = 300 * time.Millisecond
)

// Modal timing defaults.
const (
	// OpenFlashDuration is the length of the confirmation flash applied on open.
	OpenFlashDuration = 500 * time.Millisecond

	// CommitDelay is the simulated commit latency after confirm.
	CommitDelay = 500 * time.Millisecond

	// ConfirmResetDelay is how long the confirm control shows its success state.
	ConfirmResetDelay = 1500 * time.Millisecond
)

// Notification timing defaults. Both the enter delay and the visible period
// start at insertion, so a toast lives NotificationVisibleFor +
// NotificationExitDuration in total.
const (
	// NotificationEnterDelay is the pause between insertion and the slide-in.
	NotificationEnterDelay = 10 * time.Millisecond

	// NotificationVisibleFor is measured from insertion to the start of the slide-out.
	NotificationVisibleFor = 3000 * time.Millisecond

	// NotificationExitDuration is the slide-out time before removal.
	NotificationExitDuration = 300 * time.Millisecond
)

// Display patterns.
const (
	// TimeLayout renders 24-hour HH:MM:SS.
	TimeLayout = "15:04:05"

	// DateLayout renders "<full weekday>, <full month> <day>, <year>".
	DateLayout = "Monday, January 2, 2006"
)
