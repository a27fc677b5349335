package guard

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/telar-labs/authguard/identity"
	"github.com/telar-labs/authguard/token"
)

const bearerPrefix = "Bearer "

// BearerScheme authenticates end users presenting a signed token in the
// Authorization header.
//
// A missing header, or one without the Bearer prefix, is NotApplicable. Once
// the prefix is present the caller has explicitly attempted bearer auth, so
// any verification failure is a terminal denial — an invalid token must never
// silently fall through to another scheme.
type BearerScheme struct {
	codec *token.Codec
}

// NewBearerScheme returns a bearer scheme verifying tokens with codec.
func NewBearerScheme(codec *token.Codec) *BearerScheme {
	return &BearerScheme{codec: codec}
}

// Name implements Scheme.
func (s *BearerScheme) Name() string { return "bearer" }

// Authenticate implements Scheme.
func (s *BearerScheme) Authenticate(r *http.Request) Decision {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, bearerPrefix) {
		return Skip()
	}

	claims, err := s.codec.Verify(strings.TrimPrefix(header, bearerPrefix))
	if err != nil {
		return Deny(fmt.Errorf("bearer: %w", err))
	}

	role := claims.Role
	if role == "" {
		role = identity.RoleUser
	}
	return Grant(identity.Identity{
		UserID: claims.Subject,
		Role:   role,
		Claims: claims.Payload,
	})
}
