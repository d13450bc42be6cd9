package middleware

import (
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPSRedirect answers plain HTTP requests with a temporary redirect to the TLS listener on tlsPort.
func HTTPSRedirect(tlsPort string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.TLS != nil {
			c.Next()
			return
		}

		host := c.Request.Host
		if h, _, err := net.SplitHostPort(host); err == nil {
			host = h
		}
		if tlsPort != "" && tlsPort != "443" {
			host = net.JoinHostPort(host, tlsPort)
		}

		c.Redirect(http.StatusTemporaryRedirect, "https://"+host+c.Request.URL.RequestURI())
		c.Abort()
	}
}
