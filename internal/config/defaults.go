package config

import (
	"github.com/mrz1836/worldclock/internal/constants"
	"github.com/mrz1836/worldclock/internal/zone"
)

// DefaultZones is the stock option list: the local sentinel followed by one
// city for every flag rule and a handful of unflagged zones.
//
//nolint:gochecknoglobals // Read-only default option list
var DefaultZones = []string{
	zone.Local,
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"Europe/London",
	"Europe/Paris",
	"Europe/Berlin",
	"Asia/Tokyo",
	"Asia/Shanghai",
	"Asia/Dubai",
	"Asia/Kolkata",
	"Australia/Sydney",
	"Pacific/Auckland",
	"Africa/Cairo",
	"Asia/Singapore",
}

// DefaultConfig returns a new Config with the built-in default values.
func DefaultConfig() *Config {
	return &Config{
		Clock: ClockConfig{
			RefreshInterval: constants.RefreshInterval,
			PulseDuration:   constants.PulseDuration,
		},
		Modal: ModalConfig{
			OpenFlash:    constants.OpenFlashDuration,
			CommitDelay:  constants.CommitDelay,
			ConfirmReset: constants.ConfirmResetDelay,
			Rows:         8,
		},
		Notifications: NotificationsConfig{
			Enabled:      true,
			Bell:         false,
			EnterDelay:   constants.NotificationEnterDelay,
			VisibleFor:   constants.NotificationVisibleFor,
			ExitDuration: constants.NotificationExitDuration,
		},
		Zones: append([]string(nil), DefaultZones...),
	}
}
