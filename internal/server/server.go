// Package server exposes the monitoring probe over HTTP. Routing and
// middleware are handled by echo; each request is a fresh guard-then-collect
// pipeline with no shared mutable state.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/beycaCC/Server-Monitor/internal/auth"
	"github.com/beycaCC/Server-Monitor/internal/collector"
)

const (
	serviceName     = "Server Monitor API"
	shutdownTimeout = 10 * time.Second
)

// Server wires the access guard and snapshot collector behind the HTTP API.
type Server struct {
	echo      *echo.Echo
	logger    *zap.Logger
	guard     *auth.Guard
	collector *collector.Collector
	version   string
}

// New creates a Server. The guard and collector are the only collaborators;
// both are safe for concurrent use.
func New(logger *zap.Logger, guard *auth.Guard, coll *collector.Collector, version string) *Server {
	return &Server{
		echo:      echo.New(),
		logger:    logger,
		guard:     guard,
		collector: coll,
		version:   version,
	}
}

// Start runs the HTTP server on addr and blocks until SIGINT/SIGTERM,
// then shuts down gracefully.
func (s *Server) Start(addr string) error {
	s.setupRoutes()

	go func() {
		s.logger.Info("Starting server",
			zap.String("addr", addr),
			zap.String("version", s.version),
			zap.Bool("auth_enabled", s.guard.Enabled()))

		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Fatal("Server startup failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	return s.Shutdown()
}

// Shutdown stops the HTTP server, draining in-flight requests.
func (s *Server) Shutdown() error {
	s.logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server shutdown failed", zap.Error(err))
		return err
	}

	s.logger.Info("Server stopped")
	return nil
}

func (s *Server) setupRoutes() {
	s.echo.HideBanner = true
	s.echo.HidePort = true

	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info("Request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	}))

	s.echo.GET("/", s.getRoot)
	s.echo.GET("/api/health", s.getHealth)
	s.echo.GET("/api/metrics", s.getMetrics)
}
