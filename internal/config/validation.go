package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	tuikiterrors "github.com/alexisbeaulieu97/tuikit/pkg/errors"
)

// Validate checks every field of cfg.
func Validate(cfg *Config) error {
	if cfg == nil {
		return tuikiterrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError normalizes validator errors into ValidationError,
// reporting the first failing field by its YAML key.
func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlFieldName(ve)
		return tuikiterrors.NewValidationError(field, fmt.Sprintf("%v failed validation for tag '%s'", ve.Value(), ve.Tag()), err)
	}
	return tuikiterrors.NewValidationError("config", err.Error(), err)
}

var fieldKeys = map[string]string{
	"SideOffset":       "side_offset",
	"FrameInterval":    "frame_interval",
	"SettleDelay":      "settle_delay",
	"ThrottleInterval": "throttle_interval",
	"FocusDelay":       "focus_delay",
	"CloseOnEscape":    "close_on_escape",
	"HumanReadable":    "human_readable",
}

func yamlFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		if key, ok := fieldKeys[part]; ok {
			parts[i] = key
			continue
		}
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
