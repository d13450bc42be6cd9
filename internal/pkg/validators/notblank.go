package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// NotBlankTag is the struct tag registered for NotBlankValidation
const NotBlankTag = "notblank"

// NotBlankValidation rejects strings made only of whitespace.
func NotBlankValidation(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// New returns a validator with the custom validations of this package registered.
func New() (*validator.Validate, error) {
	validate := validator.New()

	if err := validate.RegisterValidation(NotBlankTag, NotBlankValidation); err != nil {
		return nil, err
	}
	if err := validate.RegisterValidation(UserNameTag, UserNameValidation); err != nil {
		return nil, err
	}
	return validate, nil
}
