package directory

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anniehayho/contactlist/internal/app"
)

// Handlers contains HTTP handlers for the directory API
type Handlers struct {
	app     *app.App
	service *Service
}

// NewHandlers creates a new directory handlers instance
func NewHandlers(app *app.App) *Handlers {
	return &Handlers{
		app:     app,
		service: NewService(),
	}
}

// ListContactsHandler handles GET /contacts - returns the full directory
// as a JSON array
func (h *Handlers) ListContactsHandler(c *gin.Context) {
	entries := h.service.List()
	h.app.Logger.Printf("Serving %d contacts", len(entries))
	c.JSON(http.StatusOK, entries)
}
