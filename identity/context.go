package identity

import "context"

// identityKey is an unexported type to prevent collisions with other packages.
type identityKey struct{}

// requestIDKey carries the correlation identifier assigned by the request
// correlator middleware.
type requestIDKey struct{}

// NewContext returns a context carrying the authenticated identity.
func NewContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext retrieves the authenticated identity from the context.
// The second return is false when no guard has attached one.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// MustFromContext retrieves the authenticated identity or panics.
// Use only in handlers mounted behind authentication middleware.
func MustFromContext(ctx context.Context) Identity {
	id, ok := FromContext(ctx)
	if !ok {
		panic("identity: no identity in context")
	}
	return id
}

// WithRequestID returns a context carrying the request correlation identifier.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext retrieves the correlation identifier, or "" when the
// correlator middleware has not run.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
