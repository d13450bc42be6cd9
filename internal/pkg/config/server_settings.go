package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Environment names
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// TLSSettings enables HTTPS and the HTTP to HTTPS redirect
type TLSSettings struct {
	Enabled  bool   `mapstructure:"enabled"`
	Port     string `mapstructure:"port"`
	CertFile string `mapstructure:"cert_file"`
	KeyFile  string `mapstructure:"key_file"`
}

// RateLimitSettings limits anonymous account endpoints per client
type RateLimitSettings struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gte=0"`
	Burst             int     `mapstructure:"burst" validate:"gte=0"`
}

// ServerSettings holds HTTP listener settings
type ServerSettings struct {
	Port      string            `mapstructure:"port" validate:"required,numeric"`
	StaticDir string            `mapstructure:"static_dir"`
	TLS       TLSSettings       `mapstructure:"tls"`
	RateLimit RateLimitSettings `mapstructure:"rate_limit"`
}

// Validate checks that all fields in ServerSettings are valid
func (s *ServerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ServerSettings: %w", err)
	}

	if s.TLS.Enabled {
		if s.TLS.Port == "" || s.TLS.CertFile == "" || s.TLS.KeyFile == "" {
			return fmt.Errorf("tls port, cert file and key file are required when tls is enabled")
		}
		if s.TLS.Port == s.Port {
			return fmt.Errorf("tls port must differ from http port")
		}
	}

	return nil
}
