package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/Justyn-98/Video-upload-web-service/internal/bootstrap"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ConfigFlag names the persistent flag holding the configuration file path
const ConfigFlag = "config"

// AddConfigFlag registers --config on the root command
func AddConfigFlag(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringP(ConfigFlag, "c", "", "Path to the YAML configuration file")
}

// configPath resolves the configuration file from --config, then CONFIG_PATH
func configPath(cmd *cobra.Command) string {
	if path, err := cmd.Flags().GetString(ConfigFlag); err == nil && path != "" {
		return path
	}
	return os.Getenv("CONFIG_PATH")
}

func loadConfig(cmd *cobra.Command) (*config.RestConfig, error) {
	cfg, err := config.InitializeRestConfig(configPath(cmd))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	return cfg, nil
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// withContainer loads the configuration, builds the application container and
// runs fn against it, closing the database afterwards.
func withContainer(cmd *cobra.Command, fn func(ctx context.Context, c *bootstrap.Container, log logger.Logger) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := setupLogger(&cfg.Logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	container, err := bootstrap.NewContainer(ctx, cfg, nil, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Error("Failed to release resources: ", err)
		}
	}()

	return fn(ctx, container, log)
}
