package identity

import (
	"context"
	"testing"
)

func TestContextRoundTrip(t *testing.T) {
	ctx := context.Background()

	if _, ok := FromContext(ctx); ok {
		t.Fatal("expected no identity in fresh context")
	}

	id := Identity{UserID: "user-1", Role: RoleUser, Claims: map[string]any{"email": "u@example.com"}}
	ctx = NewContext(ctx, id)

	got, ok := FromContext(ctx)
	if !ok {
		t.Fatal("expected identity in context")
	}
	if got.UserID != "user-1" || got.Role != RoleUser {
		t.Errorf("unexpected identity: %+v", got)
	}
}

func TestMustFromContextPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for missing identity")
		}
	}()
	MustFromContext(context.Background())
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Fatalf("expected empty request id, got %q", got)
	}
	ctx = WithRequestID(ctx, "abc-123")
	if got := RequestIDFromContext(ctx); got != "abc-123" {
		t.Fatalf("expected abc-123, got %q", got)
	}
}

func TestIsService(t *testing.T) {
	if (Identity{Role: RoleUser}).IsService() {
		t.Error("user identity reported as service")
	}
	if !(Identity{Role: RoleService}).IsService() {
		t.Error("service identity not reported as service")
	}
}
