package config

import (
	"time"
	_ "time/tzdata" // zone validation must not depend on the host zoneinfo

	"github.com/mrz1836/worldclock/internal/errors"
	"github.com/mrz1836/worldclock/internal/zone"
)

// Bounds for configured durations.
const (
	minRefreshInterval = 100 * time.Millisecond
	maxRefreshInterval = time.Minute
	maxEffectDuration  = 10 * time.Second
	maxModalRows       = 50
)

// ZoneLoader resolves a timezone identifier. time.LoadLocation satisfies it.
type ZoneLoader func(name string) (*time.Location, error)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - clock.refresh_interval must be between 100ms and 1m
//   - every effect duration must be positive and at most 10s
//   - modal.rows must be between 1 and 50
//   - zones must contain "local" and only loadable Region/City identifiers
func Validate(cfg *Config) error {
	return ValidateWith(cfg, time.LoadLocation)
}

// ValidateWith is Validate with an injectable zone loader.
func ValidateWith(cfg *Config, load ZoneLoader) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}
	if err := validateClockConfig(&cfg.Clock); err != nil {
		return err
	}
	if err := validateModalConfig(&cfg.Modal); err != nil {
		return err
	}
	if err := validateNotificationsConfig(&cfg.Notifications); err != nil {
		return err
	}
	return validateZones(cfg.Zones, load)
}

func validateClockConfig(cfg *ClockConfig) error {
	if cfg.RefreshInterval < minRefreshInterval || cfg.RefreshInterval > maxRefreshInterval {
		return errors.Wrapf(errors.ErrConfigInvalidClock,
			"clock.refresh_interval must be between %s and %s, got %s",
			minRefreshInterval, maxRefreshInterval, cfg.RefreshInterval)
	}
	return checkEffect(errors.ErrConfigInvalidClock, "clock.pulse_duration", cfg.PulseDuration)
}

func validateModalConfig(cfg *ModalConfig) error {
	if err := checkEffect(errors.ErrConfigInvalidModal, "modal.open_flash", cfg.OpenFlash); err != nil {
		return err
	}
	if err := checkEffect(errors.ErrConfigInvalidModal, "modal.commit_delay", cfg.CommitDelay); err != nil {
		return err
	}
	if err := checkEffect(errors.ErrConfigInvalidModal, "modal.confirm_reset", cfg.ConfirmReset); err != nil {
		return err
	}
	if cfg.Rows < 1 || cfg.Rows > maxModalRows {
		return errors.Wrapf(errors.ErrConfigInvalidModal,
			"modal.rows must be between 1 and %d, got %d", maxModalRows, cfg.Rows)
	}
	return nil
}

func validateNotificationsConfig(cfg *NotificationsConfig) error {
	sentinel := errors.ErrConfigInvalidNotifications
	if err := checkEffect(sentinel, "notifications.enter_delay", cfg.EnterDelay); err != nil {
		return err
	}
	if err := checkEffect(sentinel, "notifications.visible_for", cfg.VisibleFor); err != nil {
		return err
	}
	return checkEffect(sentinel, "notifications.exit_duration", cfg.ExitDuration)
}

func checkEffect(sentinel error, key string, d time.Duration) error {
	if d <= 0 || d > maxEffectDuration {
		return errors.Wrapf(sentinel, "%s must be positive and at most %s, got %s", key, maxEffectDuration, d)
	}
	return nil
}

func validateZones(zones []string, load ZoneLoader) error {
	if len(zones) == 0 {
		return errors.Wrap(errors.ErrConfigInvalidZones, "zones must not be empty")
	}

	seen := make(map[string]bool, len(zones))
	hasLocal := false
	for _, id := range zones {
		if seen[id] {
			return errors.Wrapf(errors.ErrConfigInvalidZones, "duplicate zone %q", id)
		}
		seen[id] = true

		if id == zone.Local {
			hasLocal = true
			continue
		}
		if !zone.IsValidID(id) {
			return errors.Wrapf(errors.ErrConfigInvalidZones, "zone %q is not a Region/City identifier", id)
		}
		if _, err := load(id); err != nil {
			return errors.Wrapf(errors.ErrConfigInvalidZones, "zone %q cannot be loaded: %v", id, err)
		}
	}

	if !hasLocal {
		return errors.Wrapf(errors.ErrConfigInvalidZones, "zones must include %q", zone.Local)
	}
	return nil
}
