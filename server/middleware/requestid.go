package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/telar-labs/authguard/errors"
	"github.com/telar-labs/authguard/identity"
)

// RequestIDHeader is the correlation header, echoed on every response.
const RequestIDHeader = "X-Request-ID"

// GinRequestIDKey is the gin context key holding the correlation id.
const GinRequestIDKey = "request_id"

// RequestID ensures every request carries exactly one correlation identifier.
//
// An inbound X-Request-ID is reused verbatim so traces survive service hops;
// otherwise a fresh UUID is generated. Either way the id is written to the
// response header, the gin context, and the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		// A request whose context is already done gets no correlation id
		// attached anywhere; the chain stops here.
		if c.Request.Context().Err() != nil {
			abort(c, errors.Timeout("request"))
			return
		}

		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(GinRequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(
			identity.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}
