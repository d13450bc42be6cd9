package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Storage types for uploaded video files
const (
	LocalStorageType = "local"
	AzureStorageType = "azure"
)

// StorageSettings selects where uploaded video files are kept
type StorageSettings struct {
	Type             string `mapstructure:"type" validate:"required,oneof=local azure"`
	LocalPath        string `mapstructure:"local_path"`
	ConnectionString string `mapstructure:"connection_string"`
	ContainerName    string `mapstructure:"container_name"`
	MaxUploadSize    int64  `mapstructure:"max_upload_size" validate:"gte=0"`
}

// Validate checks that all fields in StorageSettings are valid
func (s *StorageSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for StorageSettings: %w", err)
	}

	switch s.Type {
	case LocalStorageType:
		if s.LocalPath == "" {
			return fmt.Errorf("local path is required for local storage")
		}
	case AzureStorageType:
		if s.ConnectionString == "" || s.ContainerName == "" {
			return fmt.Errorf("connection string and container name are required for azure storage")
		}
	}

	return nil
}
