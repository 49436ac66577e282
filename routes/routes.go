package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tailortalk/handlers"
	"tailortalk/web"
)

// RegisterChatRoutes registers the chat endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/chat", hb.HandleChat)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
}

// RegisterWebRoutes serves the embedded browser chat client.
func RegisterWebRoutes(r *gin.Engine) {
	r.GET("/", web.Index)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here. Restrict origins in production.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterWebRoutes(r)
}
