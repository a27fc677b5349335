package authz

import "github.com/telar-labs/authguard/identity"

// Policy decides whether an authenticated identity may proceed.
// Implementations must be side-effect free and safe for concurrent use.
type Policy interface {
	Decide(id identity.Identity) bool
}

// PolicyFunc is an adapter to use ordinary functions as Policy.
type PolicyFunc func(id identity.Identity) bool

// Decide implements Policy.
func (f PolicyFunc) Decide(id identity.Identity) bool {
	return f(id)
}

// RoleIs returns a policy granting identities whose role matches exactly.
func RoleIs(role string) Policy {
	return PolicyFunc(func(id identity.Identity) bool {
		return id.Role == role
	})
}

// AdminOnly grants only the admin role.
func AdminOnly() Policy {
	return RoleIs(identity.RoleAdmin)
}

// ServiceOnly grants only service principals authenticated through the
// signature channel.
func ServiceOnly() Policy {
	return PolicyFunc(identity.Identity.IsService)
}

// Any returns a policy granting when any of the given policies grants.
func Any(policies ...Policy) Policy {
	return PolicyFunc(func(id identity.Identity) bool {
		for _, p := range policies {
			if p.Decide(id) {
				return true
			}
		}
		return false
	})
}

// All returns a policy granting only when every given policy grants.
func All(policies ...Policy) Policy {
	return PolicyFunc(func(id identity.Identity) bool {
		for _, p := range policies {
			if !p.Decide(id) {
				return false
			}
		}
		return true
	})
}

// Permission returns a policy granting identities whose role holds the
// required permission according to checker.
func Permission(checker Checker, required string) Policy {
	return PolicyFunc(func(id identity.Identity) bool {
		return checker.HasPermission(id.Role, required)
	})
}
