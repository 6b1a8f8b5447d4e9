package server

import (
	"contactqr/internal/generate"
	"contactqr/internal/health"
	"contactqr/internal/preview"
)

// SetupRoutes configures all the routes for the application
func (s *Server) SetupRoutes() {
	// Register health check handlers
	healthHandlers := health.NewHandlers(s.app)
	s.router.GET("/", healthHandlers.RootHandler)
	s.router.GET("/health", healthHandlers.HealthCheckHandler)
	s.router.GET("/health/", healthHandlers.HealthCheckHandlerWithSlash)

	// Register generator handlers
	generateHandlers := generate.NewHandlers(s.app, s.config)
	s.router.POST("/generate", generateHandlers.GenerateHandler)
	s.router.GET("/generate", generateHandlers.PrefillHandler)
	s.router.GET("/generate/qr.png", generateHandlers.DownloadHandler)

	// Register preview handlers
	previewHandlers := preview.NewHandlers(s.app)
	s.router.GET("/qr", previewHandlers.QRHandler)
	s.router.GET("/qr.png", previewHandlers.DownloadHandler)
}
