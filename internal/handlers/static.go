package handlers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// SPAFallback serves files out of staticDir and answers index.html for
// anything else, including unmatched /api paths. Routing beyond that is the
// client's job.
func SPAFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqPath := strings.TrimPrefix(c.Request.URL.Path, "/")
		if reqPath != "" {
			// Clean against the root so ".." cannot escape staticDir.
			full := filepath.Join(staticDir, filepath.Clean("/"+reqPath))
			if info, err := os.Stat(full); err == nil && !info.IsDir() {
				c.File(full)
				return
			}
		}
		c.File(filepath.Join(staticDir, "index.html"))
	}
}
