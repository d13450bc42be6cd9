package middleware

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// StaticFiles serves GET and HEAD requests from dir when a matching file exists.
// Other requests continue down the pipeline. An empty dir disables the middleware.
func StaticFiles(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if dir == "" || (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
			c.Next()
			return
		}

		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+c.Request.URL.Path)))
		info, err := os.Stat(name)
		if err != nil || info.IsDir() {
			c.Next()
			return
		}

		c.File(name)
		c.Abort()
	}
}
