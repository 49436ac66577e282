package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates all route handlers for registration.
type HandlerBundle struct {
	HandleChat gin.HandlerFunc
}
