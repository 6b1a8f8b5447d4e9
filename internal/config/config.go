package config

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
)

// Config holds application configuration
type Config struct {
	ServerPort string
	// BaseURL is the public origin used when building share links.
	BaseURL string
}

// NewConfig creates a new configuration with default values,
// overridable through the PORT and BASE_URL environment variables.
func NewConfig() *Config {
	cfg := &Config{
		ServerPort: "3000",
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.ServerPort = port
	}
	if base := os.Getenv("BASE_URL"); base != "" {
		cfg.BaseURL = strings.TrimRight(base, "/")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + cfg.ServerPort
	}
	return cfg
}

// ShareURL builds the stable preview link for an encoded payload token.
// The token alphabet is already URL-safe, so no escaping is needed.
func (c *Config) ShareURL(token string) string {
	return c.BaseURL + "/qr?p=" + token
}

// GetCorsConfig returns CORS configuration for the application
func (c *Config) GetCorsConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Requested-With"}
	corsConfig.ExposeHeaders = []string{"Content-Length", "Content-Type", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}
