package authz

import "strings"

// MatchPattern reports whether a permission pattern covers a required
// permission. Patterns use the "resource:action" form with "*" wildcards:
//
//   - "*:*"        covers everything
//   - "post:*"     covers "post:read", "post:write", ...
//   - "*:read"     covers "post:read", "profile:read", ...
//   - "post:read"  covers only itself
//
// Patterns without a ":" are compared as plain strings, still honoring "*".
func MatchPattern(pattern, required string) bool {
	if pattern == required || pattern == "*" || pattern == "*:*" {
		return true
	}

	pat := strings.SplitN(pattern, ":", 2)
	req := strings.SplitN(required, ":", 2)
	if len(pat) != len(req) || len(pat) == 1 {
		return wildcardEq(pattern, required)
	}
	return wildcardEq(pat[0], req[0]) && wildcardEq(pat[1], req[1])
}

// MatchAny reports whether any pattern covers the required permission.
func MatchAny(patterns []string, required string) bool {
	for _, p := range patterns {
		if MatchPattern(p, required) {
			return true
		}
	}
	return false
}

func wildcardEq(pattern, value string) bool {
	return pattern == "*" || pattern == value
}
