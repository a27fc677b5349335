package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/telar-labs/authguard/errors"
	"github.com/telar-labs/authguard/guard"
	"github.com/telar-labs/authguard/identity"
	"github.com/telar-labs/authguard/logger"
	"github.com/telar-labs/authguard/observability"
)

// GinIdentityKey is the default gin context key holding the authenticated
// identity. Override per-route group with WithIdentityKey when a service
// already uses the name for something else.
const GinIdentityKey = "identity"

// AuthOption customizes the Authenticate middleware.
type AuthOption func(*authOptions)

type authOptions struct {
	identityKey string
	metrics     *observability.AuthMetrics
	log         *logger.Logger
}

// WithIdentityKey overrides the gin context key the identity is stored under.
func WithIdentityKey(key string) AuthOption {
	return func(o *authOptions) { o.identityKey = key }
}

// WithAuthMetrics records authentication outcomes on the given instruments.
func WithAuthMetrics(m *observability.AuthMetrics) AuthOption {
	return func(o *authOptions) { o.metrics = m }
}

// WithAuthLogger sets the logger for denial logging.
func WithAuthLogger(log *logger.Logger) AuthOption {
	return func(o *authOptions) { o.log = log }
}

// Authenticate runs the gate and either attaches the resulting identity or
// terminates the request with 401 UNAUTHORIZED.
//
// The response body never carries the internal denial reason — forged-token
// detail, signature mismatches, and replay-window violations are logged
// server-side only.
func Authenticate(gate *guard.Gate, opts ...AuthOption) gin.HandlerFunc {
	o := authOptions{identityKey: GinIdentityKey}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.WithComponent("auth")
	}

	return func(c *gin.Context) {
		d := gate.Authenticate(c.Request)
		o.metrics.RecordAuthDecision(c.Request.Context(), d.Scheme, d.Status.String())

		if d.Status != guard.Granted {
			o.log.WithContext(c.Request.Context()).Warn("authentication denied", logger.Fields(
				logger.FieldScheme, d.Scheme,
				logger.FieldError, errString(d.Err),
				"path", c.Request.URL.Path,
			))
			abort(c, errors.Unauthorized(""))
			return
		}

		c.Set(o.identityKey, d.Identity)
		c.Request = c.Request.WithContext(
			identity.NewContext(c.Request.Context(), d.Identity))

		c.Next()
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
