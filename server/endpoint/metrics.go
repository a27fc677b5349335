package endpoint

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// Metrics reports process runtime stats for quick operational checks.
// Per-request guard metrics go through the observability package; this
// endpoint is the zero-dependency fallback when no collector is wired.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		c.JSON(http.StatusOK, gin.H{
			"uptime":        time.Since(startTime).String(),
			"goroutines":    runtime.NumGoroutine(),
			"heap_alloc_mb": mem.HeapAlloc / 1024 / 1024,
			"heap_sys_mb":   mem.HeapSys / 1024 / 1024,
			"gc_runs":       mem.NumGC,
		})
	}
}
