package config

import (
	"context"
	stderrors "errors"
	"os"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/worldclock/internal/constants"
	"github.com/mrz1836/worldclock/internal/errors"
)

// newViperInstance creates a Viper instance with defaults and WORLDCLOCK_ env binding.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults configures all default values on the Viper instance.
// Keys must match the mapstructure tag names exactly.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("clock.refresh_interval", d.Clock.RefreshInterval.String())
	v.SetDefault("clock.pulse_duration", d.Clock.PulseDuration.String())

	v.SetDefault("modal.open_flash", d.Modal.OpenFlash.String())
	v.SetDefault("modal.commit_delay", d.Modal.CommitDelay.String())
	v.SetDefault("modal.confirm_reset", d.Modal.ConfirmReset.String())
	v.SetDefault("modal.rows", d.Modal.Rows)

	v.SetDefault("notifications.enabled", d.Notifications.Enabled)
	v.SetDefault("notifications.bell", d.Notifications.Bell)
	v.SetDefault("notifications.enter_delay", d.Notifications.EnterDelay.String())
	v.SetDefault("notifications.visible_for", d.Notifications.VisibleFor.String())
	v.SetDefault("notifications.exit_duration", d.Notifications.ExitDuration.String())

	v.SetDefault("zones", d.Zones)
}

// viperDecoderOption decodes duration strings ("1s", "300ms") into time.Duration
// and comma separated env values into the zones slice.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	)
}

// isConfigNotFoundError returns true if the error is a viper config file not found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// unmarshalAndValidate unmarshals viper config into Config struct and validates it.
func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration from all available sources with proper precedence.
//
// When path is empty the global config (~/.worldclock/config.yaml) is read if
// it exists; a missing global file is not an error. An explicit path that does
// not exist fails with ErrConfigNotFound.
func Load(ctx context.Context, path string) (*Config, error) {
	v, err := loadViper(path)
	if err != nil {
		return nil, err
	}

	cfg, err := unmarshalAndValidate(v)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("file", v.ConfigFileUsed()).
		Dur("clock.refresh_interval", cfg.Clock.RefreshInterval).
		Int("zones", len(cfg.Zones)).
		Msg("configuration loaded")

	return cfg, nil
}

func loadViper(path string) (*viper.Viper, error) {
	v := newViperInstance()

	if path != "" {
		if !fileExists(path) {
			return nil, errors.Wrapf(errors.ErrConfigNotFound, "%s", path)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file: %s", path)
		}
		return v, nil
	}

	globalPath, err := GlobalConfigPath()
	if err != nil || !fileExists(globalPath) {
		return v, nil
	}
	v.SetConfigFile(globalPath)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return nil, errors.Wrap(err, "failed to read global config file")
	}
	return v, nil
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Source is where an effective configuration value came from.
type Source string

// Configuration sources, lowest precedence first.
const (
	SourceDefault Source = "default"
	SourceFile    Source = "file"
	SourceEnv     Source = "env"
)

// Setting is one effective configuration key with its origin.
type Setting struct {
	Key    string `json:"key" yaml:"key"`
	Value  any    `json:"value" yaml:"value"`
	Source Source `json:"source" yaml:"source"`
}

// Describe loads configuration like Load and reports every key with the
// layer that supplied it, sorted by key.
func Describe(path string) (*Config, []Setting, error) {
	v, err := loadViper(path)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := unmarshalAndValidate(v)
	if err != nil {
		return nil, nil, err
	}

	file := viper.New()
	if used := v.ConfigFileUsed(); used != "" {
		file.SetConfigFile(used)
		_ = file.ReadInConfig()
	}

	keys := v.AllKeys()
	sort.Strings(keys)
	settings := make([]Setting, 0, len(keys))
	for _, k := range keys {
		src := SourceDefault
		switch {
		case envSet(k):
			src = SourceEnv
		case file.IsSet(k):
			src = SourceFile
		}
		settings = append(settings, Setting{Key: k, Value: v.Get(k), Source: src})
	}
	return cfg, settings, nil
}

// EnvName returns the environment variable that overrides key.
func EnvName(key string) string {
	return constants.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func envSet(key string) bool {
	_, ok := os.LookupEnv(EnvName(key))
	return ok
}
