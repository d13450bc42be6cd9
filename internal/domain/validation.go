package domain

import (
	"errors"
	"fmt"

	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// ValidateStruct validates s with the project's custom validations and wraps
// failures in ErrInvalidInput, listing field and tag of each violation.
func ValidateStruct(s interface{}) error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err = validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: validation failed: %v", ErrInvalidInput, messages)
	}
	return fmt.Errorf("%w: validation error: %v", ErrInvalidInput, err)
}
