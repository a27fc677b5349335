package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig declares which cross-origin callers may reach guarded routes.
// The configured allowed headers must include Authorization, or browsers
// will strip the bearer credential from cross-origin calls before the gate
// ever sees it.
type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods" mapstructure:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers" mapstructure:"allowed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials" mapstructure:"allow_credentials"`
}

// CORS answers preflight requests and stamps CORS headers on responses for
// allowed origins. Disallowed origins get no CORS headers at all; the
// browser enforces the denial.
func CORS(cfg *CORSConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeCORSHeaders(w.Header(), r.Header.Get("Origin"), cfg)
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GinCORS adapts CORS for a Gin engine.
func GinCORS(cfg *CORSConfig) gin.HandlerFunc {
	return GinWrap(CORS(cfg))
}

func writeCORSHeaders(h http.Header, origin string, cfg *CORSConfig) {
	if origin == "" || !originAllowed(origin, cfg.AllowedOrigins) {
		return
	}

	// The response differs per origin, so caches must key on it.
	h.Add("Vary", "Origin")

	h.Set("Access-Control-Allow-Origin", origin)
	if len(cfg.AllowedMethods) > 0 {
		h.Set("Access-Control-Allow-Methods", strings.Join(cfg.AllowedMethods, ", "))
	}
	if len(cfg.AllowedHeaders) > 0 {
		h.Set("Access-Control-Allow-Headers", strings.Join(cfg.AllowedHeaders, ", "))
	}
	if cfg.AllowCredentials {
		h.Set("Access-Control-Allow-Credentials", "true")
	}
}

func originAllowed(origin string, allowed []string) bool {
	for _, candidate := range allowed {
		if candidate == "*" || candidate == origin {
			return true
		}
	}
	return false
}
