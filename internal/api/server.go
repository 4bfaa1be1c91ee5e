// Package api exposes the taskboard over HTTP: JSON handlers in front of
// the task and category services, behind a small middleware chain.
package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"taskboard/internal/config"
	"taskboard/internal/service"
)

// Server is the HTTP API server.
type Server struct {
	router     *http.ServeMux
	server     *http.Server
	addr       string
	logger     *log.Logger
	tasks      *service.TaskService
	categories *service.CategoryService

	defaultPageSize int
	maxPageSize     int
}

// NewServer builds the server with routes registered and middleware
// applied.
func NewServer(cfg config.Config, tasks *service.TaskService, categories *service.CategoryService, logger *log.Logger) *Server {
	s := &Server{
		router:          http.NewServeMux(),
		addr:            cfg.ServerAddr,
		logger:          logger,
		tasks:           tasks,
		categories:      categories,
		defaultPageSize: cfg.DefaultPageSize,
		maxPageSize:     cfg.MaxPageSize,
	}

	s.registerRoutes()

	handler := s.applyMiddleware(s.router)
	s.server = &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Printf("listening on %s", s.addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("start server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

// ServeHTTP implements http.Handler for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.server.Handler.ServeHTTP(w, r)
}

// applyMiddleware wraps the router; the last wrap runs first.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	handler = RecoveryMiddleware(s.logger)(handler)
	handler = LoggingMiddleware(s.logger)(handler)
	handler = RequestIDMiddleware()(handler)
	handler = CORSMiddleware()(handler)
	return handler
}
