// Package main is the entry point for the videoshare-cli application.
// It registers maintenance commands (migrate, seed, users) on the root command
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/Justyn-98/Video-upload-web-service/cmd/videoshare-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "videoshare-cli",
		Short: "Video sharing service maintenance tool",
		Long: `videoshare-cli runs maintenance tasks against the video sharing database.
It migrates the schema, seeds roles, the default administrator and sample data,
and manages user accounts and their roles.

The configuration file is taken from --config, then CONFIG_PATH. Any setting can be
overridden with VIDEOSHARE_* environment variables, e.g. VIDEOSHARE_DATABASE_DSN.`,
		SilenceUsage: true,
	}
	commands.AddConfigFlag(rootCmd)

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitMigrateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	if err := commands.InitSeedCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize seed commands: %w", err)
	}

	if err := commands.InitUserCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize user commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
