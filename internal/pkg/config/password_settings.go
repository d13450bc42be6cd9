package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PasswordSettings is the policy enforced on registration and password changes.
type PasswordSettings struct {
	RequireDigit           bool `mapstructure:"require_digit"`
	RequireLowercase       bool `mapstructure:"require_lowercase"`
	RequireUppercase       bool `mapstructure:"require_uppercase"`
	RequireNonAlphanumeric bool `mapstructure:"require_non_alphanumeric"`
	RequiredLength         int  `mapstructure:"required_length" validate:"min=1,max=128"`
}

// DefaultPasswordSettings requires a digit and at least 8 characters.
func DefaultPasswordSettings() PasswordSettings {
	return PasswordSettings{
		RequireDigit:           true,
		RequireLowercase:       false,
		RequireUppercase:       false,
		RequireNonAlphanumeric: false,
		RequiredLength:         8,
	}
}

// Validate checks that all fields in PasswordSettings are valid
func (s *PasswordSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for PasswordSettings: %w", err)
	}
	return nil
}
