package app

import (
	"log"
	"time"
)

// App holds shared application state and resources
type App struct {
	Logger    *log.Logger
	StartTime time.Time // Track startup time for health checks
}

// NewApp creates a new App instance with initialized resources
func NewApp(logger *log.Logger) *App {
	return &App{
		Logger:    logger,
		StartTime: time.Now(),
	}
}
