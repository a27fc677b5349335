package token

import (
	"errors"
	"time"
)

// Config configures the token codec.
//
// Key material is PEM-encoded and supplied once at startup. Processes that
// only verify tokens (the common case for API services) set PublicKeyPEM and
// leave PrivateKeyPEM empty; processes that issue tokens set both or only
// PrivateKeyPEM.
type Config struct {
	// PrivateKeyPEM is the PEM-encoded ECDSA private key used for signing.
	// Optional: verify-only codecs omit it.
	PrivateKeyPEM string `yaml:"private_key" mapstructure:"private_key"`

	// PublicKeyPEM is the PEM-encoded ECDSA public key used for verification.
	// Optional when PrivateKeyPEM is set (derived from the private key).
	PublicKeyPEM string `yaml:"public_key" mapstructure:"public_key"`

	// Issuer is the "iss" claim stamped on issued tokens and, when non-empty,
	// required on verified tokens.
	Issuer string `yaml:"issuer" mapstructure:"issuer"`

	// AccessTokenTTL is the default lifetime of issued tokens (default: 15m).
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" mapstructure:"access_token_ttl"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.AccessTokenTTL == 0 {
		c.AccessTokenTTL = 15 * time.Minute
	}
}

// Validate checks that at least one side of the key pair is present.
func (c *Config) Validate() error {
	if c.PrivateKeyPEM == "" && c.PublicKeyPEM == "" {
		return errors.New("token: either private_key or public_key is required")
	}
	if c.AccessTokenTTL < 0 {
		return errors.New("token: access_token_ttl must be non-negative")
	}
	return nil
}
