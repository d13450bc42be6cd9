package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultTokenExpiration is used when jwt_token.expiration is not set
const DefaultTokenExpiration = 24 * time.Hour

// JwtTokenSettings holds the symmetric signing key for bearer tokens.
// Issuer and audience are intentionally not configurable since they are not validated.
type JwtTokenSettings struct {
	SecretKey  string        `mapstructure:"secret_key" validate:"required,min=16"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// Validate checks that all fields in JwtTokenSettings are valid
func (s *JwtTokenSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for JwtTokenSettings: %w", err)
	}

	if s.Expiration < 0 {
		return fmt.Errorf("token expiration must not be negative")
	}

	return nil
}

// TokenLifetime returns the configured expiration or the default one
func (s *JwtTokenSettings) TokenLifetime() time.Duration {
	if s.Expiration == 0 {
		return DefaultTokenExpiration
	}
	return s.Expiration
}
