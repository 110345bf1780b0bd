package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	tuikiterrors "github.com/alexisbeaulieu97/tuikit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads the configuration. An empty path skips the file and uses only
// defaults and environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, tuikiterrors.NewParseError(path, extractLine(err), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, tuikiterrors.NewParseError(sourceName(path), 0, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("dropdown.side", d.Dropdown.Side)
	v.SetDefault("dropdown.align", d.Dropdown.Align)
	v.SetDefault("dropdown.side_offset", d.Dropdown.SideOffset)
	v.SetDefault("dropdown.padding", d.Dropdown.Padding)
	v.SetDefault("dropdown.frame_interval", d.Dropdown.FrameInterval)
	v.SetDefault("dropdown.settle_delay", d.Dropdown.SettleDelay)
	v.SetDefault("dropdown.throttle_interval", d.Dropdown.ThrottleInterval)
	v.SetDefault("dropdown.focus_delay", d.Dropdown.FocusDelay)
	v.SetDefault("dropdown.close_on_escape", d.Dropdown.CloseOnEscape)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.human_readable", d.Log.HumanReadable)
	v.SetDefault("log.file", d.Log.File)
}

func sourceName(path string) string {
	if path == "" {
		return "environment"
	}
	return path
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
