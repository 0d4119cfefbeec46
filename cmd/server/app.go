package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/gradebook-api/internal/api"
	apiMiddleware "github.com/phrazzld/gradebook-api/internal/api/middleware"
	"github.com/phrazzld/gradebook-api/internal/config"
	"github.com/phrazzld/gradebook-api/internal/platform/memory"
)

// shutdownTimeout bounds how long in-flight requests may run during a
// graceful shutdown.
const shutdownTimeout = 10 * time.Second

// application holds the shared dependencies for the server: configuration,
// the root logger, and the record store.
type application struct {
	config *config.Config
	logger *slog.Logger
	store  *memory.Store
}

// newApplication wires the application dependencies together.
func newApplication(cfg *config.Config, logger *slog.Logger, store *memory.Store) *application {
	return &application{
		config: cfg,
		logger: logger,
		store:  store,
	}
}

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	// Create API handlers over the shared record store
	courseHandler := api.NewCourseHandler(app.store, app.logger)
	semesterHandler := api.NewSemesterHandler(app.store, app.store, app.logger)
	gpaHandler := api.NewGPAHandler(app.store, app.store, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/grades", gpaHandler.GetGradeScale)
		r.Get("/gpa", gpaHandler.GetGPA)

		r.Route("/courses", func(r chi.Router) {
			r.Get("/", courseHandler.ListCourses)
			r.Post("/", courseHandler.CreateCourse)
			r.Delete("/", courseHandler.DeleteAllCourses)
			r.Delete("/{id}", courseHandler.DeleteCourse)
		})

		r.Route("/semesters", func(r chi.Router) {
			r.Get("/", semesterHandler.ListSemesters)
			r.Post("/", semesterHandler.CreateSemester)

			r.Route("/{semesterID}", func(r chi.Router) {
				r.Get("/", semesterHandler.GetSemester)
				r.Delete("/", semesterHandler.DeleteSemester)
				r.Get("/courses", semesterHandler.ListSemesterCourses)
				r.Get("/gpa", gpaHandler.GetSemesterGPA)
			})
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

// startHTTPServer starts the HTTP server with graceful shutdown support.
// It takes a context that can be used to signal cancellation and the router.
// Returns an error if the server fails to start or encounters problems.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.config.Server.Port),
		Handler: router,
	}

	serverCtx, cancelServer := context.WithCancel(ctx)
	defer cancelServer()

	// Set up graceful shutdown with signal handling
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine to allow for graceful shutdown
	go func() {
		app.logger.Info("Starting server", "port", app.config.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.logger.Error("Server failed", "error", err)
			cancelServer()
		}
	}()

	// Wait for shutdown signal or context cancellation
	select {
	case <-shutdownCh:
		app.logger.Info("Shutting down server...")
	case <-serverCtx.Done():
		app.logger.Info("Server context canceled, shutting down...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.logger.Info("Server shutdown completed")
	return nil
}
