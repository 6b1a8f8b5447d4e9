package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contactqr/internal/app"
	"contactqr/internal/config"
	"contactqr/internal/server"
	"contactqr/pkg/logger"
)

func main() {
	appLogger, err := logger.SetupLogging()
	if err != nil {
		appLogger = logger.SetupFallbackLogger()
	}
	defer logger.CloseLogger()

	cfg := config.NewConfig()
	application := app.NewApp(appLogger)

	srv := server.NewServer(application, cfg)
	srv.SetupRoutes()

	if err := srv.Start(); err != nil {
		appLogger.Fatalf("Failed to start server: %v", err)
	}

	// Wait for interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Printf("Shutdown error: %v", err)
	}
}
