package validators

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

// UserNameTag is the struct tag registered for UserNameValidation
const UserNameTag = "username"

// UserNameValidation accepts letters, digits and the characters . _ -
func UserNameValidation(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	for _, r := range value {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		switch r {
		case '.', '_', '-':
			continue
		}
		return false
	}
	return true
}
