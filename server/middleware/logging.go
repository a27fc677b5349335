package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/telar-labs/authguard/logger"
)

// RequestLogger returns middleware that logs every request with method,
// path, status code, and duration. Health-check paths are silently skipped.
func RequestLogger(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isHealthEndpoint(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			duration := time.Since(start)

			fields := map[string]interface{}{
				"method":             r.Method,
				"path":               r.URL.Path,
				logger.FieldStatus:   sw.status,
				logger.FieldDuration: duration.Milliseconds(),
			}
			if id := r.Header.Get(RequestIDHeader); id != "" {
				fields[logger.FieldRequestID] = id
			}

			logByStatus(log, fields, sw.status)
		})
	}
}

// GinRequestLogger returns a Gin middleware for request logging on the engine
// directly. Prefer RequestLogger at the server handler level.
func GinRequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isHealthEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := map[string]interface{}{
			"method":             c.Request.Method,
			"path":               c.Request.URL.Path,
			logger.FieldStatus:   status,
			logger.FieldDuration: time.Since(start).Milliseconds(),
			"client":             c.ClientIP(),
		}
		if id := c.GetString(GinRequestIDKey); id != "" {
			fields[logger.FieldRequestID] = id
		}

		logByStatus(log, fields, status)
	}
}

func isHealthEndpoint(path string) bool {
	switch path {
	case "/health", "/alive", "/ready", "/metrics":
		return true
	}
	return false
}

// logByStatus logs request fields at the level matching the HTTP status.
// A nil log falls back to the global logger.
func logByStatus(log *logger.Logger, fields map[string]interface{}, status int) {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	switch {
	case status >= 500:
		log.Error("request completed", fields)
	case status >= 400:
		log.Warn("request completed", fields)
	default:
		log.Debug("request completed", fields)
	}
}

// statusWriter captures the response status for logging.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
