package config

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/geom"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("side", func(fl validator.FieldLevel) bool {
			_, ok := geom.ParseSide(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("align", func(fl validator.FieldLevel) bool {
			_, ok := geom.ParseAlign(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			_, err := components.ThemeByName(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}
