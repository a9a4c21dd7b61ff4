package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/travelog/internal/middleware"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const defaultHealthTimeout = 5 * time.Second

// HealthHandler reports whether the API and its dependencies are reachable.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(h Handler) *HealthHandler {
	return &HealthHandler{Handler: h}
}

// dependency is one named connectivity probe.
type dependency struct {
	name     string
	required bool
	ping     func(ctx context.Context) error
}

// dependencies lists the probes enabled by observability.health_checks.
// Redis backs only the optional welcome email queue, so a Redis failure is
// reported without marking the service unhealthy.
func (h *HealthHandler) dependencies() []dependency {
	obs := h.server.Config.Observability
	enabled := func(name string) bool {
		return obs == nil || obs.ShouldCheck(name)
	}

	var deps []dependency

	if enabled("database") && h.server.DB != nil && h.server.DB.Pool != nil {
		deps = append(deps, dependency{name: "database", required: true, ping: h.server.DB.Pool.Ping})
	}

	if enabled("redis") && h.server.Redis != nil {
		deps = append(deps, dependency{name: "redis", ping: func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		}})
	}

	return deps
}

func (h *HealthHandler) timeout() time.Duration {
	if obs := h.server.Config.Observability; obs != nil && obs.HealthChecks.Timeout > 0 {
		return obs.HealthChecks.Timeout
	}
	return defaultHealthTimeout
}

func (h *HealthHandler) recordFailure(check string, attrs map[string]any) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}
	attrs["check_type"] = check
	attrs["operation"] = "health_check"
	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", attrs)
}

func (h *HealthHandler) probe(ctx context.Context, logger zerolog.Logger, dep dependency) (map[string]any, bool) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout())
	defer cancel()

	start := time.Now()
	err := dep.ping(ctx)
	elapsed := time.Since(start)

	if err != nil {
		logger.Error().
			Err(err).
			Str("check", dep.name).
			Dur("response_time", elapsed).
			Msg("health check failed")

		h.recordFailure(dep.name, map[string]any{
			"error_type":       dep.name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})

		return map[string]any{
			"status":        "unhealthy",
			"response_time": elapsed.String(),
			"error":         err.Error(),
		}, false
	}

	logger.Info().
		Str("check", dep.name).
		Dur("response_time", elapsed).
		Msg("health check passed")

	return map[string]any{
		"status":        "healthy",
		"response_time": elapsed.String(),
	}, true
}

// CheckHealth answers 200 when every required dependency responds and 503
// otherwise. Each probe's result is listed under "checks".
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := map[string]any{}
	healthy := true

	for _, dep := range h.dependencies() {
		result, ok := h.probe(c.Request().Context(), logger, dep)
		checks[dep.name] = result
		if !ok && dep.required {
			healthy = false
		}
	}

	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	if !healthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordFailure("overall", map[string]any{
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
