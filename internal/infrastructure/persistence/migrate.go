package persistence

import (
	"fmt"

	"github.com/Justyn-98/Video-upload-web-service/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema of every model
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
