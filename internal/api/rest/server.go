// Package rest assembles the HTTP pipeline of the video sharing API.
package rest

import (
	"net/http"

	"github.com/Justyn-98/Video-upload-web-service/internal/api/rest/middleware"
	v1 "github.com/Justyn-98/Video-upload-web-service/internal/api/rest/v1"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Options carries what the pipeline needs besides the route services
type Options struct {
	Config        *config.RestConfig
	Authenticator users.TokenAuthenticator
	RateLimiter   *middleware.RateLimiter
	Metrics       *metrics.Metrics
	Logger        logger.Logger
}

// NewEngine builds the gin engine. Request metrics and logging wrap the pipeline,
// which then runs CORS, exception handling, HTTPS redirection, authentication,
// static files and finally routing with per-route guards.
func NewEngine(opts *Options, services *v1.Services) *gin.Engine {
	cfg := opts.Config
	r := gin.New()
	r.MaxMultipartMemory = 32 << 20

	r.Use(middleware.Metrics(opts.Metrics))
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Exception(cfg.IsDevelopment(), opts.Logger))
	if cfg.Server.TLS.Enabled {
		r.Use(middleware.HTTPSRedirect(cfg.Server.TLS.Port))
	}
	r.Use(middleware.Authenticate(opts.Authenticator, opts.Logger))
	r.Use(middleware.StaticFiles(cfg.Server.StaticDir))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))

	var authLimiter gin.HandlerFunc
	if opts.RateLimiter != nil {
		authLimiter = opts.RateLimiter.Handler()
	}
	v1.SetupRoutes(r, services, authLimiter)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, v1.ErrorResponse{Message: "resource not found"})
	})

	return r
}
