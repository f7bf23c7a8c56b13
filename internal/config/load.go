package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/clockface/internal/constants"
	"github.com/mrz1836/clockface/internal/errors"
)

// newViperInstance creates a new Viper instance with the CLOCKFACE_ env
// prefix, the key replacer and the defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
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
// Configuration is loaded in the following order (highest precedence first):
//  1. Environment variables (CLOCKFACE_* prefix)
//  2. Project config (.clockface/config.yaml)
//  3. Global config (~/.clockface/config.yaml)
//  4. Built-in defaults
//
// Missing config files are not an error.
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}
	if err := loadProjectConfig(v); err != nil {
		return nil, err
	}

	cfg, err := unmarshalAndValidate(v)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Float64("clock.radius", cfg.Clock.Radius).
		Dur("clock.interval", cfg.Clock.Interval).
		Str("clock.timezone", cfg.Clock.Timezone).
		Msg("configuration loaded")

	return cfg, nil
}

// loadGlobalConfig reads ~/.clockface/config.yaml if it exists.
func loadGlobalConfig(v *viper.Viper) error {
	globalConfigPath, err := GlobalConfigPath()
	if err != nil || !fileExists(globalConfigPath) {
		return nil //nolint:nilerr // no home directory means no global config
	}

	v.SetConfigFile(globalConfigPath)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read global config file")
	}
	return nil
}

// loadProjectConfig merges .clockface/config.yaml if it exists.
func loadProjectConfig(v *viper.Viper) error {
	projectConfigPath := ProjectConfigPath()
	if !fileExists(projectConfigPath) {
		return nil
	}

	v.SetConfigFile(projectConfigPath)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read project config file")
	}
	return nil
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadWithOverrides loads configuration and applies CLI flag overrides,
// which have the highest precedence. Only non-zero override values apply.
func LoadWithOverrides(ctx context.Context, overrides *Config) (*Config, error) {
	cfg, err := Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := ApplyOverrides(cfg, overrides); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPaths loads configuration from specific file paths.
//
// projectConfigPath is the path to project-level config (higher priority).
// globalConfigPath is the path to global config (lower priority).
// Either path can be empty to skip that level.
func LoadFromPaths(_ context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if globalConfigPath != "" {
		v.SetConfigFile(globalConfigPath)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read global config: %s", globalConfigPath)
		}
	}

	if projectConfigPath != "" {
		v.SetConfigFile(projectConfigPath)
		if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read project config: %s", projectConfigPath)
		}
	}

	return unmarshalAndValidate(v)
}

// setDefaults configures all default values on the Viper instance.
// Keys must match the mapstructure tag names exactly.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("clock.radius", d.Clock.Radius)
	v.SetDefault("clock.interval", d.Clock.Interval.String())
	v.SetDefault("clock.timezone", d.Clock.Timezone)
	v.SetDefault("clock.error_policy", d.Clock.ErrorPolicy)

	v.SetDefault("surface.width", d.Surface.Width)
	v.SetDefault("surface.height", d.Surface.Height)
	v.SetDefault("surface.cell_width", d.Surface.CellWidth)
	v.SetDefault("surface.cell_height", d.Surface.CellHeight)

	v.SetDefault("style.ink", d.Style.Ink)
	v.SetDefault("style.accent", d.Style.Accent)
	v.SetDefault("style.background", d.Style.Background)
	v.SetDefault("style.font_size", d.Style.FontSize)
}

// ApplyOverrides merges non-zero override values into cfg and validates
// the result. A nil overrides is a no-op apart from validation.
func ApplyOverrides(cfg, overrides *Config) error {
	if overrides != nil {
		applyClockOverrides(&cfg.Clock, &overrides.Clock)
		applySurfaceOverrides(&cfg.Surface, &overrides.Surface)
		applyStyleOverrides(&cfg.Style, &overrides.Style)
	}
	if err := Validate(cfg); err != nil {
		return errors.Wrap(err, "invalid configuration after overrides")
	}
	return nil
}

func applyClockOverrides(cfg, o *ClockConfig) {
	if o.Radius != 0 {
		cfg.Radius = o.Radius
	}
	if o.Interval != 0 {
		cfg.Interval = o.Interval
	}
	if o.Timezone != "" {
		cfg.Timezone = o.Timezone
	}
	if o.ErrorPolicy != "" {
		cfg.ErrorPolicy = o.ErrorPolicy
	}
}

func applySurfaceOverrides(cfg, o *SurfaceConfig) {
	if o.Width != 0 {
		cfg.Width = o.Width
	}
	if o.Height != 0 {
		cfg.Height = o.Height
	}
	if o.CellWidth != 0 {
		cfg.CellWidth = o.CellWidth
	}
	if o.CellHeight != 0 {
		cfg.CellHeight = o.CellHeight
	}
}

func applyStyleOverrides(cfg, o *StyleConfig) {
	if o.Ink != "" {
		cfg.Ink = o.Ink
	}
	if o.Accent != "" {
		cfg.Accent = o.Accent
	}
	if o.Background != "" {
		cfg.Background = o.Background
	}
	if o.FontSize != 0 {
		cfg.FontSize = o.FontSize
	}
}

// viperDecoderOption configures mapstructure to decode durations from strings.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}
