package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/telar-labs/authguard/errors"
)

// RequireUUIDParam rejects requests whose named path parameter is present but
// does not parse as a UUID, before any handler executes.
//
// The denial is a plain 404, byte-identical to the router's no-route
// response: a malformed identifier must be indistinguishable from a route
// that doesn't exist, so private endpoints leak nothing about the identifier
// shapes they expect. A missing parameter passes through — this guard checks
// shape, not presence.
func RequireUUIDParam(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value := c.Param(name)
		if value == "" {
			c.Next()
			return
		}
		if _, err := uuid.Parse(value); err != nil {
			abort(c, errors.NotFound(""))
			return
		}
		c.Next()
	}
}

// NoRoute is the handler services register with gin's NoRoute so unmatched
// paths and shape-invalid identifiers share one response.
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		abort(c, errors.NotFound(""))
	}
}
