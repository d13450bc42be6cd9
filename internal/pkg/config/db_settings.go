package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Database types
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DatabaseSettings holds the connection settings of the application database.
// Name, when set for postgres, is created if missing and appended to the DSN.
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN  string `mapstructure:"dsn"`
	Name string `mapstructure:"name"`

	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.Type == PostgresDbType && s.DSN == "" {
		return fmt.Errorf("dsn is required for postgres")
	}

	return nil
}
