package commands

import (
	"fmt"

	"github.com/Justyn-98/Video-upload-web-service/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// MigrateCommandHandler applies the database schema
type MigrateCommandHandler struct{}

// MigrateCmd connects to the configured database and migrates every table
func (commandHandler *MigrateCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := setupLogger(&cfg.Logger)
	if err != nil {
		return err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			log.Error("Failed to close database: ", err)
		}
	}()

	if err := persistence.Migrate(db); err != nil {
		return err
	}

	log.Info("Database migrations completed successfully")
	return nil
}

// InitMigrateCommands registers the migrate command
func InitMigrateCommands(rootCmd *cobra.Command) error {
	handler := &MigrateCommandHandler{}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE:  handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	return nil
}
