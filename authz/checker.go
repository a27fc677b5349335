package authz

// Checker answers whether a subject (typically a role) holds a permission.
// Deployments with richer needs implement this against their own store;
// MapChecker covers the static case.
type Checker interface {
	HasPermission(subject string, permission string) bool
}

// CheckerFunc is an adapter to use ordinary functions as Checker.
type CheckerFunc func(subject string, permission string) bool

// HasPermission implements Checker.
func (f CheckerFunc) HasPermission(subject string, permission string) bool {
	return f(subject, permission)
}

// MapChecker is an in-memory Checker backed by a map of role → permission
// patterns, with wildcard matching via MatchPattern.
type MapChecker struct {
	permissions map[string][]string
}

// NewMapChecker creates a Checker from a static role → patterns map.
//
// Example:
//
//	checker := authz.NewMapChecker(map[string][]string{
//	    "admin": {"*:*"},
//	    "user":  {"post:*", "bookmark:*", "profile:read"},
//	})
func NewMapChecker(permissions map[string][]string) *MapChecker {
	return &MapChecker{permissions: permissions}
}

// HasPermission implements Checker.
func (c *MapChecker) HasPermission(subject string, required string) bool {
	patterns, ok := c.permissions[subject]
	if !ok {
		return false
	}
	return MatchAny(patterns, required)
}
