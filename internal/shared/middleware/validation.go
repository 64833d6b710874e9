package middleware

import (
	"hallbook/internal/shared/utils/clock"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators installs domain validators on gin's binding
// engine. "clocktime" validates HH:MM time-of-day strings carried by
// booking and pricing payloads.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("clocktime", func(fl validator.FieldLevel) bool {
			return clock.IsValid(fl.Field().String())
		})
	}
}
