package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/telar-labs/authguard/errors"
	"github.com/telar-labs/authguard/logger"
)

// Recovery returns a Gin middleware that recovers from panics, logs the
// stack, and responds with the structured internal-error envelope.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.WithComponent("recovery")
	}
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithContext(c.Request.Context()).Error("panic recovered", logger.Fields(
					logger.FieldError, fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				))
				abort(c, errors.Internal(fmt.Errorf("panic: %v", r)))
			}
		}()
		c.Next()
	}
}
