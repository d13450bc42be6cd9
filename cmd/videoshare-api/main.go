// cmd/videoshare-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/api/rest"
	"github.com/Justyn-98/Video-upload-web-service/internal/api/rest/middleware"
	"github.com/Justyn-98/Video-upload-web-service/internal/bootstrap"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const (
	rateLimiterCleanupInterval = time.Minute
	shutdownTimeout            = 15 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	if !restConfig.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	appMetrics := metrics.New()

	container, err := bootstrap.NewContainer(ctx, restConfig, appMetrics, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Error("Failed to close database: ", err)
		}
	}()

	if err := container.Seed(ctx, restConfig.Seed.DataOnStartup); err != nil {
		return err
	}

	return startServerWithGracefulShutdown(restConfig, container, appMetrics, log)
}

// startServerWithGracefulShutdown serves HTTP, plus HTTPS when TLS is enabled, until SIGINT or SIGTERM
func startServerWithGracefulShutdown(cfg *config.RestConfig, container *bootstrap.Container, appMetrics *metrics.Metrics, log logger.Logger) error {
	limiter := middleware.NewRateLimiter(cfg.Server.RateLimit, log)
	done := make(chan struct{})
	defer close(done)
	limiter.StartCleanup(rateLimiterCleanupInterval, done)

	r := rest.NewEngine(&rest.Options{
		Config:        cfg,
		Authenticator: container.Services.TokenAuthenticator,
		RateLimiter:   limiter,
		Metrics:       appMetrics,
		Logger:        log,
	}, container.RouteServices())

	servers := []*http.Server{{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}}
	if cfg.Server.TLS.Enabled {
		servers = append(servers, &http.Server{
			Addr:              ":" + cfg.Server.TLS.Port,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		})
	}

	serverErrors := make(chan error, len(servers))

	go func() {
		log.Info("Starting server on port ", cfg.Server.Port)
		if err := servers[0].ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	if cfg.Server.TLS.Enabled {
		go func() {
			log.Info("Starting TLS server on port ", cfg.Server.TLS.Port)
			err := servers[1].ListenAndServeTLS(cfg.Server.TLS.CertFile, cfg.Server.TLS.KeyFile)
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErrors <- fmt.Errorf("tls server failed to start: %w", err)
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case runErr = <-serverErrors:
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("Shutting down server...")
	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil && runErr == nil {
			runErr = fmt.Errorf("server forced to shutdown: %w", err)
		}
	}

	if runErr == nil {
		log.Info("Server stopped gracefully")
	}
	return runErr
}
