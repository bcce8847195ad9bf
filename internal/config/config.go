package config

import (
	"time"

	"github.com/gin-contrib/cors"
)

// Config holds application configuration
type Config struct {
	ServerPort       string // Port the directory API listens on
	ContactsEndpoint string // URL the list view fetches contacts from
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		ServerPort:       "3000",
		ContactsEndpoint: "http://localhost:3000/contacts",
	}
}

// GetCorsConfig returns CORS configuration for the directory API
func (c *Config) GetCorsConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsConfig.ExposeHeaders = []string{"Content-Length", "Content-Type"}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}
