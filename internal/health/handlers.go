package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anniehayho/contactlist/internal/app"
)

// Handlers contains HTTP handlers for health checks
type Handlers struct {
	app *app.App
}

// NewHandlers creates a new health handlers instance
func NewHandlers(app *app.App) *Handlers {
	return &Handlers{app: app}
}

// RootHandler handles the root endpoint for liveness probes
func (h *Handlers) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// HealthCheckHandler handles GET /health
func (h *Handlers) HealthCheckHandler(c *gin.Context) {
	uptime := time.Since(h.app.StartTime).String()

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"uptime":  uptime,
		"version": "1.0.0",
	})
}
