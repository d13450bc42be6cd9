package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// AdminSettings describes the default administrator created at startup
type AdminSettings struct {
	UserName string `mapstructure:"username" validate:"required,min=3,max=64"`
	Email    string `mapstructure:"email" validate:"required,email"`
	Password string `mapstructure:"password" validate:"required"`
}

// SeedSettings controls startup data seeding
type SeedSettings struct {
	Admin         AdminSettings `mapstructure:"admin"`
	DataOnStartup bool          `mapstructure:"data_on_startup"`
}

// Validate checks that all fields in SeedSettings are valid
func (s *SeedSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SeedSettings: %w", err)
	}
	return nil
}
