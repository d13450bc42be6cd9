//go:build unit
// +build unit

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAuthEngine(t *testing.T, authenticator users.TokenAuthenticator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Authenticate(authenticator, testutil.SetupTestLogger(t)))
	r.GET("/anonymous", func(c *gin.Context) {
		if principal := PrincipalFromContext(c); principal != nil {
			c.String(http.StatusOK, principal.UserName)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	r.GET("/private", RequireAuthenticated(), func(c *gin.Context) {
		c.String(http.StatusOK, PrincipalFromContext(c).UserName)
	})
	r.GET("/admin", RequireRole(users.RoleAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, "admin area")
	})
	return r
}

func serve(r http.Handler, method, url, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_ValidToken(t *testing.T) {
	authenticator := new(MockTokenAuthenticator)
	authenticator.On("Authenticate", mock.Anything, "good-token").
		Return(&users.Principal{UserID: "user-id", UserName: "alice", Roles: []string{users.RoleUser}}, nil)
	r := newAuthEngine(t, authenticator)

	w := serve(r, http.MethodGet, "/private", "Bearer good-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())

	w = serve(r, http.MethodGet, "/anonymous", "bearer good-token")
	assert.Equal(t, "alice", w.Body.String())

	authenticator.AssertExpectations(t)
}

func TestAuthenticate_InvalidTokenIsIgnored(t *testing.T) {
	authenticator := new(MockTokenAuthenticator)
	authenticator.On("Authenticate", mock.Anything, "bad-token").Return(nil, errors.New("signature is invalid"))
	r := newAuthEngine(t, authenticator)

	w := serve(r, http.MethodGet, "/anonymous", "Bearer bad-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())

	w = serve(r, http.MethodGet, "/private", "Bearer bad-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthenticated_MissingToken(t *testing.T) {
	authenticator := new(MockTokenAuthenticator)
	r := newAuthEngine(t, authenticator)

	for _, header := range []string{"", "Basic dXNlcjpwYXNz", "Bearer ", "Bearer"} {
		w := serve(r, http.MethodGet, "/private", header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		assert.Contains(t, w.Body.String(), "authentication required")
	}
	authenticator.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestRequireRole(t *testing.T) {
	authenticator := new(MockTokenAuthenticator)
	authenticator.On("Authenticate", mock.Anything, "user-token").
		Return(&users.Principal{UserID: "user-id", Roles: []string{users.RoleUser}}, nil)
	authenticator.On("Authenticate", mock.Anything, "admin-token").
		Return(&users.Principal{UserID: "admin-id", Roles: []string{users.RoleUser, users.RoleAdmin}}, nil)
	r := newAuthEngine(t, authenticator)

	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/admin", "").Code)
	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodGet, "/admin", "Bearer user-token").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/admin", "Bearer admin-token").Code)
}
