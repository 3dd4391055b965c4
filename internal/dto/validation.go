package dto

import (
	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by the request DTOs to gin's validator.
//   - currency: ARS or USD, case-insensitive
//   - slotrole: prof_1, prof_2, prof_3 or anestesista
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("currency", validateCurrency); err != nil {
		return err
	}
	return v.RegisterValidation("slotrole", validateSlotRole)
}

func validateCurrency(fl validator.FieldLevel) bool {
	_, ok := domain.ParseCurrency(fl.Field().String())
	return ok
}

func validateSlotRole(fl validator.FieldLevel) bool {
	return domain.SlotRole(fl.Field().String()).Valid()
}
