package server

import (
	"github.com/anniehayho/contactlist/internal/directory"
	"github.com/anniehayho/contactlist/internal/health"
)

// SetupRoutes configures all the routes for the directory API
func (s *Server) SetupRoutes() {
	// Register health check handlers
	healthHandlers := health.NewHandlers(s.app)
	s.router.GET("/", healthHandlers.RootHandler)
	s.router.GET("/health", healthHandlers.HealthCheckHandler)

	// Register directory handlers
	directoryHandlers := directory.NewHandlers(s.app)
	s.router.GET("/contacts", directoryHandlers.ListContactsHandler)
}
