// Package identity defines the authenticated principal attached to a request
// and its type-safe context propagation.
//
// A guard that grants access stores exactly one Identity in the request
// context; authorization middleware reads it back. Unexported context key
// types make collisions with other packages impossible and keep lookups
// typed end to end.
package identity

// System roles recognized by the pipeline. Role is free-form — these are the
// values the built-in guards produce.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	// RoleService is the principal role for callers authenticated through the
	// shared-secret signature channel.
	RoleService = "service"
)

// Identity is the authenticated principal for one request.
// It is read-only after creation and scoped to the request that produced it.
type Identity struct {
	// UserID is the subject identifier. For service principals it names the
	// calling system rather than a user.
	UserID string

	// Role is the system role used by authorization policies.
	Role string

	// Claims is the opaque claim payload carried by the credential. The
	// pipeline never interprets it; handlers may.
	Claims map[string]any
}

// IsService reports whether the identity represents an internal service
// principal rather than an end user.
func (id Identity) IsService() bool {
	return id.Role == RoleService
}
