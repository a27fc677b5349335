package guard

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/telar-labs/authguard/token"
)

// ErrMissingCredentials is the denial reason when no scheme found a
// credential on the request.
var ErrMissingCredentials = errors.New("guard: missing credentials")

// Gate orchestrates an ordered list of authentication schemes into one
// decision per request.
//
// Ordering is the tie-break: the first scheme whose credential is present
// decides the request. Bearer tokens represent explicit user authentication
// and are listed first, so they are authoritative when present; the signature
// channel is the fallback transport-trust mechanism, not a parallel path to
// be raced.
type Gate struct {
	schemes []Scheme
}

// NewGate builds a gate over schemes, evaluated in order.
func NewGate(schemes ...Scheme) *Gate {
	return &Gate{schemes: schemes}
}

// NewDualGate builds the standard bearer-then-signature gate.
func NewDualGate(codec *token.Codec, sigCfg *SignatureConfig) (*Gate, error) {
	sig, err := NewSignatureScheme(sigCfg)
	if err != nil {
		return nil, fmt.Errorf("guard: %w", err)
	}
	return NewGate(NewBearerScheme(codec), sig), nil
}

// Authenticate runs the schemes in order and returns the first applicable
// decision. All schemes NotApplicable means the caller presented no
// credential at all: denied with ErrMissingCredentials.
//
// A request whose context is already done is denied without evaluating any
// scheme, so a cancelled request never gets an identity attached.
func (g *Gate) Authenticate(r *http.Request) Decision {
	if err := r.Context().Err(); err != nil {
		return Deny(fmt.Errorf("guard: request aborted: %w", err))
	}

	for _, s := range g.schemes {
		if d := s.Authenticate(r); d.Status != NotApplicable {
			d.Scheme = s.Name()
			return d
		}
	}
	return Deny(ErrMissingCredentials)
}
