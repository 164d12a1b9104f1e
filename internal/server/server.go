// Package server provides the HTTP API for resume/job matching and
// keyword insight analysis.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/server/ratelimit"
)

// Config holds the HTTP server configuration.
type Config struct {
	Port      int
	RateLimit *ratelimit.Config
}

// Server wraps the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	engine     *pipeline.Engine
	logger     *zap.Logger
	limiter    *ratelimit.Limiter
}

// New creates a server with routes registered for the matching API.
func New(cfg *Config, engine *pipeline.Engine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		engine:  engine,
		logger:  logger,
		limiter: ratelimit.NewLimiter(cfg.RateLimit),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /compare", s.handleCompare)
	mux.HandleFunc("POST /keywords", s.handleKeywords)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)

	handler := s.withRequestID(s.withLogging(s.withRateLimit(s.withCORS(mux))))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// Start runs the server until an interrupt signal arrives, then shuts
// down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed to start: %w", err)
	case sig := <-quit:
		s.logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	s.limiter.Stop()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

// Handler exposes the configured handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
