package dto

import (
	"delivery-api/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs the custom tags used by the request structs on
// gin's validator engine. Call once before serving requests.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("role", validRole)
}

func validRole(fl validator.FieldLevel) bool {
	return models.Role(fl.Field().String()).Valid()
}
