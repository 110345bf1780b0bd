// Package config loads the dropdown, theme and logging settings from a YAML
// file, TUIKIT_* environment variables and built-in defaults, in increasing
// order of precedence: defaults, file, environment.
package config

import (
	"io"
	"time"

	"github.com/alexisbeaulieu97/tuikit/internal/logger"
)

// EnvPrefix prefixes every environment override, e.g. TUIKIT_DROPDOWN_SIDE.
const EnvPrefix = "TUIKIT"

// Config is the complete application configuration.
type Config struct {
	Dropdown DropdownConfig `mapstructure:"dropdown" yaml:"dropdown"`
	Theme    string         `mapstructure:"theme" yaml:"theme" validate:"theme"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// DropdownConfig holds placement and timing for dropdown controllers.
type DropdownConfig struct {
	Side             string        `mapstructure:"side" yaml:"side" validate:"side"`
	Align            string        `mapstructure:"align" yaml:"align" validate:"align"`
	SideOffset       int           `mapstructure:"side_offset" yaml:"side_offset" validate:"gte=0"`
	Padding          int           `mapstructure:"padding" yaml:"padding" validate:"gte=0"`
	FrameInterval    time.Duration `mapstructure:"frame_interval" yaml:"frame_interval" validate:"gt=0"`
	SettleDelay      time.Duration `mapstructure:"settle_delay" yaml:"settle_delay" validate:"gte=0"`
	ThrottleInterval time.Duration `mapstructure:"throttle_interval" yaml:"throttle_interval" validate:"gte=0"`
	FocusDelay       time.Duration `mapstructure:"focus_delay" yaml:"focus_delay" validate:"gte=0"`
	CloseOnEscape    bool          `mapstructure:"close_on_escape" yaml:"close_on_escape"`
}

// LogConfig controls diagnostics output.
type LogConfig struct {
	Level         string `mapstructure:"level" yaml:"level" validate:"oneof=trace debug info warn error disabled"`
	HumanReadable bool   `mapstructure:"human_readable" yaml:"human_readable"`
	// File receives log output. Empty discards logs, since stderr belongs to
	// the terminal UI.
	File string `mapstructure:"file" yaml:"file"`
}

// LoggerOptions converts the settings into logger options writing to w.
func (l LogConfig) LoggerOptions(w io.Writer) logger.Options {
	return logger.Options{
		Level:         l.Level,
		HumanReadable: l.HumanReadable,
		Writer:        w,
	}
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Dropdown: DropdownConfig{
			Side:             "bottom",
			Align:            "start",
			SideOffset:       1,
			Padding:          1,
			FrameInterval:    time.Second / 60,
			SettleDelay:      16 * time.Millisecond,
			ThrottleInterval: 16 * time.Millisecond,
			FocusDelay:       50 * time.Millisecond,
			CloseOnEscape:    true,
		},
		Theme: "default",
		Log: LogConfig{
			Level: "info",
		},
	}
}
