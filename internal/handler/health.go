package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/cats-api/internal/middleware"
	"github.com/deppfellow/cats-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HealthCheckTimeout bounds each dependency check.
const HealthCheckTimeout = 5 * time.Second

const (
	StatusHealthy       = "healthy"
	StatusUnhealthy     = "unhealthy"
	StatusNotConfigured = "not_configured"
)

// CheckResult is the outcome of one dependency check.
type CheckResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time,omitempty"`
	Error        string `json:"error,omitempty"`
}

// HealthResponse is the body of GET /status.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]CheckResult `json:"checks"`
}

// HealthHandler exposes GET /status for load balancers and uptime
// monitors. It is a system route, so no interceptors are declared.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns 200 when every check passes, 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	ctx, cancel := context.WithTimeout(c.Request().Context(), HealthCheckTimeout)
	defer cancel()

	response := HealthResponse{
		Status:      StatusHealthy,
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks: map[string]CheckResult{
			"database": h.checkDatabase(ctx, &logger),
		},
	}

	status := http.StatusOK
	for _, check := range response.Checks {
		if check.Status == StatusUnhealthy {
			response.Status = StatusUnhealthy
			status = http.StatusServiceUnavailable
		}
	}

	event := logger.Debug()
	if status != http.StatusOK {
		event = logger.Warn()
	}
	event.
		Dur("total_duration", time.Since(start)).
		Str("status", response.Status).
		Msg("health check completed")

	return c.JSON(status, response)
}

func (h *HealthHandler) checkDatabase(ctx context.Context, logger *zerolog.Logger) CheckResult {
	if h.server.DB == nil {
		return CheckResult{Status: StatusNotConfigured}
	}

	start := time.Now()
	err := h.server.DB.Ping(ctx)
	elapsed := time.Since(start)

	if err == nil {
		return CheckResult{Status: StatusHealthy, ResponseTime: elapsed.String()}
	}

	logger.Error().
		Err(err).
		Dur("response_time", elapsed).
		Msg("database health check failed")

	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
			"check_type":       "database",
			"operation":        "health_check",
			"error_type":       "database_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})
	}

	return CheckResult{
		Status:       StatusUnhealthy,
		ResponseTime: elapsed.String(),
		Error:        err.Error(),
	}
}
