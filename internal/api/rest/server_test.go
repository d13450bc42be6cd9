//go:build unit
// +build unit

package rest

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Justyn-98/Video-upload-web-service/internal/api/rest/middleware"
	v1 "github.com/Justyn-98/Video-upload-web-service/internal/api/rest/v1"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/videos"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/metrics"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	engine        *gin.Engine
	authenticator *middleware.MockTokenAuthenticator
	accounts      *v1.MockAccountService
	videos        *v1.MockVideosService
}

func newTestServer(t *testing.T, cfg *config.RestConfig) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := testutil.SetupTestLogger(t)

	s := &testServer{
		authenticator: new(middleware.MockTokenAuthenticator),
		accounts:      new(v1.MockAccountService),
		videos:        new(v1.MockVideosService),
	}
	services := &v1.Services{
		Accounts:       s.accounts,
		AccountDetails: new(v1.MockAccountDetailsService),
		Categories:     new(v1.MockVideoCategoryService),
		Videos:         s.videos,
		Comments:       new(v1.MockCommentsService),
		Likes:          new(v1.MockLikesService),
		Playlists:      new(v1.MockPlaylistService),
	}

	s.engine = NewEngine(&Options{
		Config:        cfg,
		Authenticator: s.authenticator,
		RateLimiter:   middleware.NewRateLimiter(cfg.Server.RateLimit, log),
		Metrics:       metrics.New(),
		Logger:        log,
	}, services)
	return s
}

func (s *testServer) do(method, url string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func productionConfig() *config.RestConfig {
	return &config.RestConfig{
		Environment: config.EnvironmentProduction,
		Server:      config.ServerSettings{Port: "8080"},
	}
}

func TestNewEngine_HealthAndMetrics(t *testing.T) {
	s := newTestServer(t, productionConfig())

	w := s.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = s.do(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `videoshare_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestNewEngine_CORSOnEveryResponse(t *testing.T) {
	s := newTestServer(t, productionConfig())
	s.videos.On("List", mock.Anything, mock.Anything).Return([]*videos.Video{}, nil)

	for _, url := range []string{"/api/v1/videos", "/api/v1/accounts/me", "/nowhere"} {
		w := s.do(http.MethodGet, url, map[string]string{"Origin": "https://client.example.org"})
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), url)
	}
}

func TestNewEngine_Authentication(t *testing.T) {
	s := newTestServer(t, productionConfig())
	principal := &users.Principal{UserID: "user-id", UserName: "alice", Roles: []string{users.RoleUser}, TokenID: "jti"}
	s.authenticator.On("Authenticate", mock.Anything, "valid").Return(principal, nil)
	s.authenticator.On("Authenticate", mock.Anything, "revoked").Return(nil, errors.New("token has been revoked"))
	s.accounts.On("Logout", mock.Anything, principal).Return(nil)

	w := s.do(http.MethodPost, "/api/v1/accounts/logout", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))

	w = s.do(http.MethodPost, "/api/v1/accounts/logout", map[string]string{"Authorization": "Bearer revoked"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/v1/accounts/logout", map[string]string{"Authorization": "Bearer valid"})
	assert.Equal(t, http.StatusNoContent, w.Code)

	s.accounts.AssertExpectations(t)
}

func TestNewEngine_StaticFilesAndNotFound(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>videoshare</html>"), 0o600))

	cfg := productionConfig()
	cfg.Server.StaticDir = dir
	s := newTestServer(t, cfg)

	w := s.do(http.MethodGet, "/index.html", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "videoshare")

	w = s.do(http.MethodGet, "/missing.html", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"resource not found"}`, w.Body.String())
}

func TestNewEngine_HTTPSRedirect(t *testing.T) {
	cfg := productionConfig()
	cfg.Server.TLS = config.TLSSettings{Enabled: true, Port: "8443"}
	s := newTestServer(t, cfg)

	w := s.do(http.MethodGet, "http://localhost:8080/api/v1/videos", nil)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "https://localhost:8443/api/v1/videos", w.Header().Get("Location"))
}

func TestNewEngine_RateLimitedLogin(t *testing.T) {
	cfg := productionConfig()
	cfg.Server.RateLimit = config.RateLimitSettings{RequestsPerSecond: 0.001, Burst: 1}
	s := newTestServer(t, cfg)
	s.accounts.On("Login", mock.Anything, mock.Anything).Return(nil, errors.New("unexpected"))

	// The first request spends the burst, whatever the outcome
	s.do(http.MethodPost, "/api/v1/accounts/login", nil)

	w := s.do(http.MethodPost, "/api/v1/accounts/login", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
