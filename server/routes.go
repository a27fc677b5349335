package server

import (
	"sort"
	"strings"
)

// Operational route paths registered by RegisterDefaultEndpoints.
var systemPaths = map[string]bool{
	"/health":  true,
	"/alive":   true,
	"/ready":   true,
	"/version": true,
	"/metrics": true,
}

// LogRoutes logs every registered route once, API routes first, so the
// startup log shows exactly what the server exposes. Call it after all
// routes are registered.
func (s *Server) LogRoutes() {
	routes := s.engine.Routes()

	sort.Slice(routes, func(i, j int) bool {
		iSys := systemPaths[routes[i].Path]
		jSys := systemPaths[routes[j].Path]
		if iSys != jSys {
			return !iSys
		}
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return methodOrder(routes[i].Method) < methodOrder(routes[j].Method)
	})

	for _, r := range routes {
		s.log.Info("Route registered", map[string]interface{}{
			"method":  r.Method,
			"path":    r.Path,
			"handler": formatHandlerName(r.Handler),
			"system":  systemPaths[r.Path],
		})
	}
}

// formatHandlerName extracts a readable handler name from Gin's full
// handler path, e.g.
//
//	"github.com/telar-labs/authguard/server/endpoint.Liveness.func1"
//
// becomes "liveness".
func formatHandlerName(fullPath string) string {
	// Gin appends -fm to method values.
	name := strings.TrimSuffix(fullPath, "-fm")

	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}

	// "(*Handler).List" → "Handler.List"
	name = strings.ReplaceAll(name, "(*", "")
	name = strings.ReplaceAll(name, ")", "")

	// Closures: keep the last meaningful segment before funcN.
	if strings.Contains(name, ".func") {
		parts := strings.Split(name, ".")
		for i := len(parts) - 1; i >= 0; i-- {
			if !strings.HasPrefix(parts[i], "func") {
				name = strings.ToLower(parts[i])
				break
			}
		}
	}

	// Strip a leading package qualifier: "endpoint.Version" → "Version".
	parts := strings.SplitN(name, ".", 2)
	if len(parts) == 2 && parts[0] == strings.ToLower(parts[0]) && parts[1] != "" {
		name = parts[1]
	}

	return name
}

// methodOrder returns a sort key for HTTP methods (GET first, DELETE last).
func methodOrder(method string) int {
	switch method {
	case "GET":
		return 0
	case "POST":
		return 1
	case "PUT":
		return 2
	case "PATCH":
		return 3
	case "DELETE":
		return 4
	default:
		return 5
	}
}
