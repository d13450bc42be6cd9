package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Cache types backing token revocation
const (
	MemoryCacheType = "memory"
	RedisCacheType  = "redis"
)

// RedisSettings holds redis connection settings
type RedisSettings struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
}

// CacheSettings selects the token revocation store
type CacheSettings struct {
	Type  string        `mapstructure:"type" validate:"required,oneof=memory redis"`
	Redis RedisSettings `mapstructure:"redis"`
}

// Validate checks that all fields in CacheSettings are valid
func (s *CacheSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CacheSettings: %w", err)
	}

	if s.Type == RedisCacheType && s.Redis.Addr == "" {
		return fmt.Errorf("redis address is required for redis cache")
	}

	return nil
}
