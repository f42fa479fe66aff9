package handlers

import (
	"sync"

	"github.com/SscSPs/sacco_ledger/internal/core/services"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the request DTOs to
// gin's validator engine.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("accountcode", func(fl validator.FieldLevel) bool {
			return services.AccountCodePattern.MatchString(fl.Field().String())
		})
	})
}
