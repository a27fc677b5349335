// Package middleware contains the HTTP guard chain: request correlation,
// path-shape validation, dual-scheme authentication, and policy
// authorization, plus the ambient middleware every service mounts (recovery,
// CORS, request logging, body limits).
//
// Chain order matters and is enforced by convention: RequestID and
// RequireUUIDParam run earliest, Authenticate establishes identity, and
// Authorize consumes it last. A middleware that aborts stops the chain; later
// guards never run after a terminal denial.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/telar-labs/authguard/errors"
)

// Middleware wraps an http.Handler with additional behavior. This is the
// standard Go middleware signature; it works with any http.Handler, so the
// same chain can front Gin routes and plain handlers mounted beside them.
type Middleware func(http.Handler) http.Handler

// Chain composes multiple middleware. The first in the list is the outermost
// (runs first on a request, last on a response).
func Chain(middlewares ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}

// GinWrap adapts a standard Middleware for use in a Gin middleware chain.
func GinWrap(mw Middleware) gin.HandlerFunc {
	return func(c *gin.Context) {
		next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			// Propagate request modifications (added headers, derived
			// contexts) back to Gin.
			c.Request = r
			c.Next()
		})
		mw(next).ServeHTTP(c.Writer, c.Request)
	}
}

// abort terminates the request with the structured error envelope.
func abort(c *gin.Context, err *errors.AppError) {
	c.AbortWithStatusJSON(err.HTTPStatus, err.ToResponse())
}
