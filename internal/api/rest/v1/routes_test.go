//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Justyn-98/Video-upload-web-service/internal/api/rest/middleware"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/categories"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/likes"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/videos"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// fakeAuthentication turns "Authorization: user" and "Authorization: admin" into principals
func fakeAuthentication(c *gin.Context) {
	switch c.GetHeader("Authorization") {
	case "user":
		middleware.SetPrincipal(c, testPrincipal(users.RoleUser))
	case "admin":
		middleware.SetPrincipal(c, testPrincipal(users.RoleUser, users.RoleAdmin))
	}
	c.Next()
}

func newRoutedEngine(services *Services, authLimiter gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(fakeAuthentication)
	SetupRoutes(r, services, authLimiter)
	return r
}

func TestSetupRoutes_Guards(t *testing.T) {
	services, mocks := newMockServices()
	mocks.videos.On("List", mock.Anything, mock.Anything).Return([]*videos.Video{}, nil)
	mocks.categories.On("List", mock.Anything).Return([]*categories.Category{}, nil)
	mocks.categories.On("Create", mock.Anything, mock.Anything).Return(&categories.Category{ID: "c"}, nil)
	mocks.accountDetails.On("List", mock.Anything, mock.Anything).Return([]*users.User{}, nil)
	mocks.accountDetails.On("GetByID", mock.Anything, mock.Anything).Return(&users.User{ID: testUserID}, nil)
	mocks.likes.On("Summary", mock.Anything, mock.Anything, mock.Anything).Return(&likes.Summary{}, nil)
	r := newRoutedEngine(services, nil)

	tests := []struct {
		method string
		url    string
		body   string
		as     string
		status int
	}{
		{http.MethodGet, "/api/v1/videos", "", "", http.StatusOK},
		{http.MethodGet, "/api/v1/categories", "", "", http.StatusOK},
		{http.MethodGet, "/api/v1/videos/" + testVideoID + "/likes", "", "", http.StatusOK},
		{http.MethodPost, "/api/v1/videos", "{}", "", http.StatusUnauthorized},
		{http.MethodPut, "/api/v1/videos/" + testVideoID, "{}", "", http.StatusUnauthorized},
		{http.MethodPost, "/api/v1/videos/" + testVideoID + "/file", "", "", http.StatusUnauthorized},
		{http.MethodPost, "/api/v1/videos/" + testVideoID + "/comments", "{}", "", http.StatusUnauthorized},
		{http.MethodPost, "/api/v1/videos/" + testVideoID + "/likes", "", "", http.StatusUnauthorized},
		{http.MethodPost, "/api/v1/playlists", "{}", "", http.StatusUnauthorized},
		{http.MethodDelete, "/api/v1/comments/x", "", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/accounts/me", "", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/accounts/me", "", "user", http.StatusOK},
		{http.MethodGet, "/api/v1/accounts", "", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/accounts", "", "user", http.StatusForbidden},
		{http.MethodGet, "/api/v1/accounts", "", "admin", http.StatusOK},
		{http.MethodPost, "/api/v1/categories", `{"name":"Music"}`, "user", http.StatusForbidden},
		{http.MethodPost, "/api/v1/categories", `{"name":"Music"}`, "admin", http.StatusCreated},
		{http.MethodDelete, "/api/v1/accounts/" + testUserID, "", "user", http.StatusForbidden},
		{http.MethodPut, "/api/v1/accounts/" + testUserID + "/roles", "{}", "user", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" as "+tt.as, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.url, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.url, nil)
			}
			if tt.as != "" {
				req.Header.Set("Authorization", tt.as)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.status == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestSetupRoutes_AuthLimiter(t *testing.T) {
	services, mocks := newMockServices()
	limiter := func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Message: "too many requests"})
	}
	r := newRoutedEngine(services, limiter)

	for _, url := range []string{"/api/v1/accounts/register", "/api/v1/accounts/login"} {
		req := httptest.NewRequest(http.MethodPost, url, strings.NewReader("{}"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	}
	mocks.accounts.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	mocks.accounts.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}
