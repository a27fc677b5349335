package guard

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/telar-labs/authguard/identity"
)

// Header names carried by signature-authenticated requests. These are part of
// the wire protocol shared with internal callers and must not change.
const (
	SignatureHeader = "X-Telar-Signature"
	TimestampHeader = "X-Timestamp"
)

// DefaultReplayWindow bounds how old (or how far skewed into the future) a
// signed timestamp may be. Five minutes tolerates clock drift between
// internal services while keeping the replay surface small; deployments with
// tighter requirements override it in SignatureConfig.
const DefaultReplayWindow = 5 * time.Minute

const signaturePrefix = "sha256="

// SignatureConfig configures the shared-secret signature scheme.
type SignatureConfig struct {
	// Secret is the pre-shared HMAC secret. Required.
	Secret string `yaml:"secret" mapstructure:"secret"`

	// Principal is the subject recorded on identities established through
	// this scheme (default: "internal").
	Principal string `yaml:"principal" mapstructure:"principal"`

	// ReplayWindow is the accepted timestamp skew (default: DefaultReplayWindow).
	ReplayWindow time.Duration `yaml:"replay_window" mapstructure:"replay_window"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *SignatureConfig) ApplyDefaults() {
	if c.Principal == "" {
		c.Principal = "internal"
	}
	if c.ReplayWindow == 0 {
		c.ReplayWindow = DefaultReplayWindow
	}
}

// Validate checks required fields.
func (c *SignatureConfig) Validate() error {
	if c.Secret == "" {
		return errors.New("guard: signature secret is required")
	}
	if c.ReplayWindow < 0 {
		return errors.New("guard: replay window must be non-negative")
	}
	return nil
}

// SignatureScheme authenticates trusted internal services by a shared-secret
// HMAC over the request line, without requiring them to hold a signing key.
//
// The signed string is "<timestamp>.<method>.<path>"; the signature header
// carries its hex HMAC-SHA256 with an optional "sha256=" prefix. The
// timestamp header bounds replay.
//
// This scheme trades asymmetric-crypto strength for operational simplicity
// and must only guard internal network paths — never a public user-facing
// endpoint on its own.
type SignatureScheme struct {
	cfg SignatureConfig

	// now is stubbed in tests.
	now func() time.Time
}

// NewSignatureScheme returns a signature scheme for the given config.
func NewSignatureScheme(cfg *SignatureConfig) (*SignatureScheme, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &SignatureScheme{cfg: *cfg, now: time.Now}, nil
}

// Name implements Scheme.
func (s *SignatureScheme) Name() string { return "signature" }

// Authenticate implements Scheme.
func (s *SignatureScheme) Authenticate(r *http.Request) Decision {
	presented := r.Header.Get(SignatureHeader)
	if presented == "" {
		return Skip()
	}

	ts := r.Header.Get(TimestampHeader)
	if ts == "" {
		return Deny(errors.New("signature: missing timestamp header"))
	}
	unix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return Deny(fmt.Errorf("signature: malformed timestamp: %w", err))
	}

	if skew := s.now().Sub(time.Unix(unix, 0)); skew > s.cfg.ReplayWindow || skew < -s.cfg.ReplayWindow {
		return Deny(fmt.Errorf("signature: timestamp outside replay window (skew %s)", skew))
	}

	expected := Sign(s.cfg.Secret, ts, r.Method, r.URL.Path)
	presented = strings.TrimPrefix(presented, signaturePrefix)
	if !hmac.Equal([]byte(expected), []byte(presented)) {
		return Deny(errors.New("signature: mismatch"))
	}

	return Grant(identity.Identity{
		UserID: s.cfg.Principal,
		Role:   identity.RoleService,
	})
}

// Sign computes the hex HMAC-SHA256 signature an internal caller must present
// for the given timestamp, method, and path. Exported so client code and
// tests build valid signatures the same way the scheme verifies them.
func Sign(secret, timestamp, method, path string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s.%s.%s", timestamp, method, path)
	return hex.EncodeToString(mac.Sum(nil))
}
