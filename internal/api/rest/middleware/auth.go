package middleware

import (
	"net/http"
	"strings"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	principalKey = "videoshare.principal"
	bearerPrefix = "bearer "
)

// Authenticate attaches the principal of a valid bearer token to the request.
// Missing or invalid tokens leave the request anonymous; route guards decide what that means.
func Authenticate(authenticator users.TokenAuthenticator, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		principal, err := authenticator.Authenticate(c.Request.Context(), rawToken)
		if err != nil {
			log.Debug("Ignoring bearer token: ", err)
			c.Next()
			return
		}

		SetPrincipal(c, principal)
		c.Next()
	}
}

// RequireAuthenticated rejects anonymous requests with 401.
func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if PrincipalFromContext(c) == nil {
			challenge(c)
			return
		}
		c.Next()
	}
}

// RequireRole rejects anonymous requests with 401 and principals without role with 403.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := PrincipalFromContext(c)
		if principal == nil {
			challenge(c)
			return
		}
		if !principal.HasRole(role) {
			abortWithMessage(c, http.StatusForbidden, "role "+role+" required")
			return
		}
		c.Next()
	}
}

// SetPrincipal attaches principal to the request.
func SetPrincipal(c *gin.Context, principal *users.Principal) {
	c.Set(principalKey, principal)
}

// PrincipalFromContext returns the authenticated principal, or nil for anonymous requests.
func PrincipalFromContext(c *gin.Context) *users.Principal {
	value, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	principal, _ := value.(*users.Principal)
	return principal
}

func challenge(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	abortWithMessage(c, http.StatusUnauthorized, "authentication required")
}

func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
