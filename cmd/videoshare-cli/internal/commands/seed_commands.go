package commands

import (
	"context"
	"fmt"

	"github.com/Justyn-98/Video-upload-web-service/internal/bootstrap"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// SeedCommandHandler runs the idempotent seeding steps
type SeedCommandHandler struct{}

// SeedRolesCmd creates the missing built-in roles
func (commandHandler *SeedCommandHandler) SeedRolesCmd(cmd *cobra.Command, _ []string) error {
	return withContainer(cmd, func(ctx context.Context, c *bootstrap.Container, log logger.Logger) error {
		if err := c.Services.Roles.EnsureRoles(ctx); err != nil {
			return fmt.Errorf("failed to ensure roles: %w", err)
		}
		log.Info("Built-in roles are present")
		return nil
	})
}

// SeedAdminCmd creates the configured administrator unless the user name is taken
func (commandHandler *SeedCommandHandler) SeedAdminCmd(cmd *cobra.Command, _ []string) error {
	return withContainer(cmd, func(ctx context.Context, c *bootstrap.Container, log logger.Logger) error {
		if err := c.Services.Roles.EnsureRoles(ctx); err != nil {
			return fmt.Errorf("failed to ensure roles: %w", err)
		}
		created, err := c.Services.DefaultAdmin.EnsureDefaultAdmin(ctx)
		if err != nil {
			return fmt.Errorf("failed to ensure default admin: %w", err)
		}
		if created {
			log.Info("Default administrator created")
		} else {
			log.Info("Default administrator already exists")
		}
		return nil
	})
}

// SeedDataCmd runs the full startup seeding including sample categories and videos
func (commandHandler *SeedCommandHandler) SeedDataCmd(cmd *cobra.Command, _ []string) error {
	return withContainer(cmd, func(ctx context.Context, c *bootstrap.Container, _ logger.Logger) error {
		return c.Seed(ctx, true)
	})
}

// InitSeedCommands registers the seed command group
func InitSeedCommands(rootCmd *cobra.Command) error {
	handler := &SeedCommandHandler{}

	var seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Seed roles, the default administrator or sample data",
	}

	var seedRolesCmd = &cobra.Command{
		Use:   "roles",
		Short: "Create the built-in Admin and User roles",
		RunE:  handler.SeedRolesCmd,
	}
	seedCmd.AddCommand(seedRolesCmd)

	var seedAdminCmd = &cobra.Command{
		Use:   "admin",
		Short: "Create the default administrator from seed.admin",
		RunE:  handler.SeedAdminCmd,
	}
	seedCmd.AddCommand(seedAdminCmd)

	var seedDataCmd = &cobra.Command{
		Use:   "data",
		Short: "Create roles, the administrator, default categories and sample videos",
		RunE:  handler.SeedDataCmd,
	}
	seedCmd.AddCommand(seedDataCmd)

	rootCmd.AddCommand(seedCmd)
	return nil
}
