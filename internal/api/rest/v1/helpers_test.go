//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/Justyn-98/Video-upload-web-service/internal/api/rest/middleware"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  = "7f1c1f64-35a5-4e1f-9d3e-7a3cfa7f1c11"
	testVideoID = "0d2b7c3e-6a0f-4c5e-8f7b-2a1d9e4c6b22"
)

func testPrincipal(roles ...string) *users.Principal {
	if len(roles) == 0 {
		roles = []string{users.RoleUser}
	}
	return &users.Principal{UserID: testUserID, UserName: "alice", Roles: roles}
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

// newTestContext creates a gin context for method and url, optionally authenticated as principal
func newTestContext(method, url string, body io.Reader, principal *users.Principal, params ...gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, url, body)
	if body != nil {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	c.Params = params
	if principal != nil {
		middleware.SetPrincipal(c, principal)
	}
	return c, w
}

func idParam(id string) gin.Param {
	return gin.Param{Key: "id", Value: id}
}
