// Package main implements the entry point for the Gradebook API server,
// which stores course and semester records in memory and computes GPA
// aggregates over them.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/gradebook-api/internal/config"
	"github.com/phrazzld/gradebook-api/internal/platform/logger"
	"github.com/phrazzld/gradebook-api/internal/platform/memory"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the wired application and any initialization error.
func initializeApp() (*application, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set up structured logging using the configured log level
	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	// The record store is constructed once here and passed by handle to
	// the handlers; it seeds the default semester before anything else can
	// observe it.
	recordStore := memory.New(appLogger)

	return newApplication(cfg, appLogger, recordStore), nil
}
