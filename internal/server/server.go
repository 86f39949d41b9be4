// Package server exposes the categorization pipeline and expense store over
// HTTP. It is a thin transport wrapper: all semantics live in the categorize
// and storage packages.
package server

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/spendlens/spendlens/internal/service"
)

// Server wires the HTTP routes to the application services.
type Server struct {
	app         *fiber.App
	categorizer service.Categorizer
	store       service.Storage
	logger      *slog.Logger
}

// New creates a Server with all routes registered.
func New(categorizer service.Categorizer, store service.Storage, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	app := fiber.New(fiber.Config{
		AppName:               "spendlens",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	s := &Server{
		app:         app,
		categorizer: categorizer,
		store:       store,
		logger:      logger,
	}
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	api := s.app.Group("/api")

	api.Get("/healthz", s.handleHealth)
	api.Post("/categorize", s.handleCategorize)

	api.Post("/expenses", s.handleCreateExpense)
	api.Get("/expenses", s.handleListExpenses)
	api.Delete("/expenses/:id", s.handleDeleteExpense)
	api.Get("/summary", s.handleSummary)
}

// Listen blocks serving HTTP until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.logger.Info("HTTP server listening", "addr", addr)
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
