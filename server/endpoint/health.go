// Package endpoint provides the standard operational HTTP handlers
// registered by the server: health, liveness, readiness, version, and
// runtime metrics.
package endpoint

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Component health statuses.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// Health is the reported health of one dependency (key store, signing
// secret source, telemetry exporter, ...).
type Health struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthChecker returns health status for registered dependencies.
type HealthChecker func(ctx context.Context) []Health

// HealthHandler returns a handler that reports service health, aggregating
// the statuses returned by checker. Any unhealthy dependency makes the
// whole service unhealthy (503).
func HealthHandler(serviceName string, checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := StatusHealthy
		var components []Health

		if checker != nil {
			components = checker(c.Request.Context())
			for _, ch := range components {
				if ch.Status == StatusUnhealthy {
					status = StatusUnhealthy
					break
				}
				if ch.Status == StatusDegraded && status != StatusUnhealthy {
					status = StatusDegraded
				}
			}
		}

		httpStatus := http.StatusOK
		if status == StatusUnhealthy {
			httpStatus = http.StatusServiceUnavailable
		}

		c.JSON(httpStatus, gin.H{
			"status":     status,
			"service":    serviceName,
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"components": components,
		})
	}
}
