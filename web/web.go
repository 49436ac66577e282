// Package web serves the embedded browser chat client.
package web

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed index.html
var content embed.FS

// Index serves the single-page chat client.
func Index(c *gin.Context) {
	page, err := content.ReadFile("index.html")
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
