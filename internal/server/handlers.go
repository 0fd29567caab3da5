package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/beycaCC/Server-Monitor/internal/models"
)

// getRoot handles GET / with a plain-text banner pointing at the real endpoints.
func (s *Server) getRoot(c echo.Context) error {
	return c.String(http.StatusOK,
		serviceName+" is running. Try GET /api/health or /api/metrics\n")
}

// getHealth handles GET /api/health. Always 200; no auth, no collection.
func (s *Server) getHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"ok": true,
		"ts": models.Timestamp(),
	})
}

// getMetrics handles GET /api/metrics: validate the optional bearer token,
// collect one fresh snapshot, and wrap the outcome in the response envelope.
// Auth failures map to 401, collection failures to 503.
func (s *Server) getMetrics(c echo.Context) error {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if err := s.guard.Check(header); err != nil {
		s.logger.Warn("Rejected metrics request", zap.Error(err))
		return c.JSON(http.StatusUnauthorized, models.Failure(err.Error()))
	}

	snapshot, err := s.collector.Collect(c.Request().Context())
	if err != nil {
		s.logger.Error("Metrics collection failed", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, models.Failure(err.Error()))
	}

	return c.JSON(http.StatusOK, models.Success(snapshot))
}
