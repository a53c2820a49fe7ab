package handlers

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// DownloadDB godoc
// @Summary      Download the raw database file
// @Tags         system
// @Produce      octet-stream
// @Success      200  {file}    file
// @Failure      500  {object}  map[string]string
// @Router       /download_db [get]
//
// DownloadDB streams the live database file as a dated attachment. A write
// racing the read can yield a torn copy; the caller gets whatever bytes are
// on disk.
func DownloadDB(dbPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := os.Stat(dbPath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to download database"})
			return
		}
		name := fmt.Sprintf("scheduler_%s.db", time.Now().Format("20060102"))
		c.FileAttachment(dbPath, name)
	}
}
