// Package token issues and verifies the signed bearer tokens accepted by the
// guard pipeline.
//
// The codec pins a single elliptic-curve signing algorithm (ES256). Tokens
// that claim any other algorithm are rejected during verification —
// negotiable algorithms are a known downgrade-attack vector, so the scheme is
// fixed at construction and not per call.
//
// Usage:
//
//	codec, err := token.NewCodec(&token.Config{PublicKeyPEM: pubPEM})
//	claims, err := codec.Verify(tokenString)
package token

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signingMethod is the one algorithm the codec signs and accepts.
var signingMethod = jwt.SigningMethodES256

// Claims is the payload carried by issued tokens. Subject holds the user id;
// Role is the system role used for authorization; Payload carries opaque
// application claims (display name, avatar, ...) the pipeline never inspects.
type Claims struct {
	jwt.RegisteredClaims
	Role    string         `json:"role,omitempty"`
	Payload map[string]any `json:"claim,omitempty"`
}

// Codec signs and verifies tokens with a fixed ES256 key pair.
// It is immutable after construction and safe for concurrent use.
type Codec struct {
	cfg        Config
	privateKey *ecdsa.PrivateKey
	publicKey  *ecdsa.PublicKey
}

// NewCodec parses the configured PEM key material and returns a codec.
// A parse failure is returned as an error; callers treat it as fatal since a
// process without valid keys cannot serve authenticated traffic.
func NewCodec(cfg *Config) (*Codec, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Codec{cfg: *cfg}

	if cfg.PrivateKeyPEM != "" {
		key, err := jwt.ParseECPrivateKeyFromPEM([]byte(cfg.PrivateKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("token: parse private key: %w", err)
		}
		c.privateKey = key
		c.publicKey = &key.PublicKey
	}
	if cfg.PublicKeyPEM != "" {
		key, err := jwt.ParseECPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("token: parse public key: %w", err)
		}
		c.publicKey = key
	}

	return c, nil
}

// CanIssue reports whether the codec holds a private key.
func (c *Codec) CanIssue() bool {
	return c.privateKey != nil
}

// Issue signs claims into a token string. Zero-valued IssuedAt/ExpiresAt are
// stamped with now and now+ttl; a non-positive ttl uses the configured
// AccessTokenTTL.
func (c *Codec) Issue(claims *Claims, ttl time.Duration) (string, error) {
	if c.privateKey == nil {
		return "", errors.New("token: codec has no private key, cannot issue")
	}
	if ttl <= 0 {
		ttl = c.cfg.AccessTokenTTL
	}

	now := time.Now()
	if claims.IssuedAt == nil {
		claims.IssuedAt = jwt.NewNumericDate(now)
	}
	if claims.ExpiresAt == nil {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	if claims.Issuer == "" {
		claims.Issuer = c.cfg.Issuer
	}

	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString(c.privateKey)
	if err != nil {
		return "", fmt.Errorf("token: sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, structure, and time claims of a token string
// and returns its claims. Malformed, expired, or forged tokens are reported
// as errors, never as panics.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	if c.publicKey == nil {
		return nil, errors.New("token: codec has no public key, cannot verify")
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, c.keyFunc, c.parserOptions()...)
	if err != nil {
		return nil, fmt.Errorf("token: parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("token: invalid token")
	}
	return claims, nil
}

// keyFunc rejects any token whose header does not claim the pinned algorithm
// before the signature is checked.
func (c *Codec) keyFunc(t *jwt.Token) (interface{}, error) {
	if t.Method.Alg() != signingMethod.Alg() {
		return nil, fmt.Errorf("token: unexpected signing method: %s", t.Method.Alg())
	}
	return c.publicKey, nil
}

func (c *Codec) parserOptions() []jwt.ParserOption {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
	}
	if c.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.cfg.Issuer))
	}
	return opts
}
