package authz

import (
	"testing"

	"github.com/telar-labs/authguard/identity"
)

var (
	admin   = identity.Identity{UserID: "a-1", Role: identity.RoleAdmin}
	user    = identity.Identity{UserID: "u-1", Role: identity.RoleUser}
	service = identity.Identity{UserID: "internal", Role: identity.RoleService}
)

func TestRoleIs(t *testing.T) {
	p := RoleIs("admin")
	if !p.Decide(admin) {
		t.Error("expected admin to be granted")
	}
	if p.Decide(user) {
		t.Error("expected user to be denied")
	}
}

func TestAdminOnlyAndServiceOnly(t *testing.T) {
	if !AdminOnly().Decide(admin) || AdminOnly().Decide(user) {
		t.Error("AdminOnly misdecided")
	}
	if !ServiceOnly().Decide(service) || ServiceOnly().Decide(admin) {
		t.Error("ServiceOnly misdecided")
	}
}

func TestAnyAndAll(t *testing.T) {
	either := Any(RoleIs("admin"), ServiceOnly())
	if !either.Decide(admin) || !either.Decide(service) || either.Decide(user) {
		t.Error("Any misdecided")
	}

	both := All(RoleIs("admin"), PolicyFunc(func(id identity.Identity) bool {
		return id.UserID == "a-1"
	}))
	if !both.Decide(admin) {
		t.Error("expected All to grant admin a-1")
	}
	if both.Decide(identity.Identity{UserID: "a-2", Role: identity.RoleAdmin}) {
		t.Error("expected All to deny admin a-2")
	}
}

func TestPolicyFuncCustomPredicate(t *testing.T) {
	owns := PolicyFunc(func(id identity.Identity) bool {
		return id.UserID == "u-1"
	})
	if !owns.Decide(user) {
		t.Error("expected owner to be granted")
	}
	if owns.Decide(admin) {
		t.Error("expected non-owner to be denied")
	}
}

func TestPermissionPolicy(t *testing.T) {
	checker := NewMapChecker(map[string][]string{
		"admin": {"*:*"},
		"user":  {"post:*", "profile:read"},
	})

	if !Permission(checker, "member:delete").Decide(admin) {
		t.Error("expected admin to hold member:delete")
	}
	if !Permission(checker, "post:write").Decide(user) {
		t.Error("expected user to hold post:write")
	}
	if Permission(checker, "member:delete").Decide(user) {
		t.Error("expected user to lack member:delete")
	}
	if Permission(checker, "post:read").Decide(service) {
		t.Error("expected unknown role to lack everything")
	}
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern  string
		required string
		want     bool
	}{
		{"*:*", "post:delete", true},
		{"*", "anything", true},
		{"post:*", "post:read", true},
		{"post:*", "profile:read", false},
		{"*:read", "post:read", true},
		{"*:read", "post:write", false},
		{"post:read", "post:read", true},
		{"post:read", "post:write", false},
		{"admin", "admin", true},
		{"admin", "user", false},
		{"post:read", "post", false},
	}
	for _, tc := range tests {
		if got := MatchPattern(tc.pattern, tc.required); got != tc.want {
			t.Errorf("MatchPattern(%q, %q) = %v, want %v", tc.pattern, tc.required, got, tc.want)
		}
	}
}

func TestMatchAny(t *testing.T) {
	patterns := []string{"post:*", "profile:read"}
	if !MatchAny(patterns, "post:write") {
		t.Error("expected post:write to match")
	}
	if MatchAny(patterns, "member:delete") {
		t.Error("expected member:delete not to match")
	}
	if MatchAny(nil, "post:read") {
		t.Error("expected empty patterns to match nothing")
	}
}
