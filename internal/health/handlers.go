package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"contactqr/internal/app"
)

// Version is the reported service version.
const Version = "1.0.0"

// Handlers contains HTTP handlers for health checks
type Handlers struct {
	app *app.App
}

// NewHandlers creates a new health handlers instance
func NewHandlers(app *app.App) *Handlers {
	return &Handlers{app: app}
}

// RootHandler handles the root endpoint for Docker health checks
func (h *Handlers) RootHandler(c *gin.Context) {
	uptime := time.Since(h.app.StartTime).String()

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"uptime":  uptime,
		"version": Version,
	})
}

// HealthCheckHandler handles the health check endpoint
func (h *Handlers) HealthCheckHandler(c *gin.Context) {
	uptime := time.Since(h.app.StartTime).String()

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"uptime":    uptime,
		"version":   Version,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// HealthCheckHandlerWithSlash handles the health check endpoint with trailing slash
func (h *Handlers) HealthCheckHandlerWithSlash(c *gin.Context) {
	h.HealthCheckHandler(c)
}
