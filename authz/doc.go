// Package authz provides the authorization policies evaluated after a guard
// has authenticated the caller.
//
// A Policy is a pure predicate over the authenticated identity — it performs
// no I/O and writes nothing, which keeps policies testable in isolation and
// composable. Built-in policies cover the common cases:
//
//	authz.RoleIs("admin")                    // exact role match
//	authz.Any(authz.RoleIs("admin"), ...)    // first grant wins
//	authz.Permission(checker, "post:write")  // wildcard permission patterns
//
// Projects plug in custom rules with PolicyFunc:
//
//	owns := authz.PolicyFunc(func(id identity.Identity) bool {
//	    return id.UserID == ownerID
//	})
//
// Policies never authenticate. The HTTP middleware denies with 401 when no
// identity is present and 403 when a policy rejects an authenticated one.
package authz
