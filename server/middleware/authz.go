package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/telar-labs/authguard/authz"
	"github.com/telar-labs/authguard/errors"
	"github.com/telar-labs/authguard/identity"
	"github.com/telar-labs/authguard/observability"
)

// AuthzOption customizes the Authorize middleware.
type AuthzOption func(*authzOptions)

type authzOptions struct {
	metrics *observability.AuthMetrics
}

// WithAuthzMetrics records authorization denials on the given instruments.
func WithAuthzMetrics(m *observability.AuthMetrics) AuthzOption {
	return func(o *authzOptions) { o.metrics = m }
}

// Authorize gates an already-authenticated request on a policy.
//
// It never authenticates: a request with no identity in context is denied
// 401 UNAUTHORIZED (we don't know who you are), while an authenticated
// identity the policy rejects is denied 403 FORBIDDEN (we know who you are
// and you may not do this). The distinction is a hard contract.
func Authorize(policy authz.Policy, opts ...AuthzOption) gin.HandlerFunc {
	var o authzOptions
	for _, opt := range opts {
		opt(&o)
	}

	return func(c *gin.Context) {
		id, ok := identity.FromContext(c.Request.Context())
		if !ok {
			abort(c, errors.Unauthorized("Missing identity."))
			return
		}

		if !policy.Decide(id) {
			o.metrics.RecordAuthzDenied(c.Request.Context(), id.Role)
			abort(c, errors.Forbidden(""))
			return
		}

		c.Next()
	}
}

// RequireRole is shorthand for Authorize(authz.RoleIs(role)).
func RequireRole(role string, opts ...AuthzOption) gin.HandlerFunc {
	return Authorize(authz.RoleIs(role), opts...)
}
