package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables overriding file settings, e.g. VIDEOSHARE_JWT_TOKEN_SECRET_KEY
const EnvPrefix = "VIDEOSHARE"

// RestConfig is the root configuration of the REST service and the CLI
type RestConfig struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerSettings   `mapstructure:"server"`
	Database    DatabaseSettings `mapstructure:"database"`
	JwtToken    JwtTokenSettings `mapstructure:"jwt_token"`
	Password    PasswordSettings `mapstructure:"password"`
	Storage     StorageSettings  `mapstructure:"storage"`
	Cache       CacheSettings    `mapstructure:"cache"`
	Seed        SeedSettings     `mapstructure:"seed"`
	Logger      LoggerSettings   `mapstructure:"logger"`
}

// IsDevelopment reports whether the detailed exception page should be served
func (c *RestConfig) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, EnvironmentDevelopment)
}

// Validate checks every settings section
func (c *RestConfig) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.JwtToken.Validate(); err != nil {
		return err
	}
	if err := c.Password.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Seed.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeRestConfig reads the YAML file at path (optional when empty), applies
// VIDEOSHARE_* environment overrides and validates the result.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys missing from the file
func setDefaults(v *viper.Viper) {
	passwords := DefaultPasswordSettings()

	v.SetDefault("environment", EnvironmentProduction)

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.static_dir", "./wwwroot")
	v.SetDefault("server.tls.enabled", false)
	v.SetDefault("server.tls.port", "8443")
	v.SetDefault("server.tls.cert_file", "")
	v.SetDefault("server.tls.key_file", "")
	v.SetDefault("server.rate_limit.requests_per_second", 5)
	v.SetDefault("server.rate_limit.burst", 10)

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "videoshare.db")
	v.SetDefault("database.name", "")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")

	v.SetDefault("jwt_token.secret_key", "")
	v.SetDefault("jwt_token.expiration", DefaultTokenExpiration)

	v.SetDefault("password.require_digit", passwords.RequireDigit)
	v.SetDefault("password.require_lowercase", passwords.RequireLowercase)
	v.SetDefault("password.require_uppercase", passwords.RequireUppercase)
	v.SetDefault("password.require_non_alphanumeric", passwords.RequireNonAlphanumeric)
	v.SetDefault("password.required_length", passwords.RequiredLength)

	v.SetDefault("storage.type", LocalStorageType)
	v.SetDefault("storage.local_path", "./data/videos")
	v.SetDefault("storage.connection_string", "")
	v.SetDefault("storage.container_name", "")
	v.SetDefault("storage.max_upload_size", 512<<20)

	v.SetDefault("cache.type", MemoryCacheType)
	v.SetDefault("cache.redis.addr", "")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)

	v.SetDefault("seed.admin.username", "admin")
	v.SetDefault("seed.admin.email", "admin@videoshare.local")
	v.SetDefault("seed.admin.password", "")
	v.SetDefault("seed.data_on_startup", false)

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.format", "")
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
}
