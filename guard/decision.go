package guard

import (
	"net/http"

	"github.com/telar-labs/authguard/identity"
)

// Status is the outcome class of a scheme's authentication attempt.
type Status int

const (
	// NotApplicable means the request does not carry this scheme's credential.
	// The orchestrator may try the next scheme.
	NotApplicable Status = iota

	// Granted means the credential verified and an identity was established.
	Granted

	// Denied means the credential was presented but failed verification.
	// Terminal for the request.
	Denied
)

// String returns the status name for logs and metrics.
func (s Status) String() string {
	switch s {
	case Granted:
		return "granted"
	case Denied:
		return "denied"
	default:
		return "not_applicable"
	}
}

// Decision is the result of one authentication attempt. Identity is set only
// when Status is Granted; Err carries the internal denial reason and is for
// logging only — it must never be echoed to unauthenticated callers.
type Decision struct {
	Status   Status
	Identity identity.Identity
	Err      error

	// Scheme names the scheme that produced the decision. Filled in by Gate
	// for logs and metrics; empty when no scheme applied.
	Scheme string
}

// Grant builds a Granted decision carrying the authenticated identity.
func Grant(id identity.Identity) Decision {
	return Decision{Status: Granted, Identity: id}
}

// Deny builds a terminal Denied decision with an internal reason.
func Deny(err error) Decision {
	return Decision{Status: Denied, Err: err}
}

// Skip builds a NotApplicable decision.
func Skip() Decision {
	return Decision{Status: NotApplicable}
}

// Scheme authenticates a request against one credential type.
// Implementations must be stateless with respect to requests.
type Scheme interface {
	// Name identifies the scheme in logs and metrics (e.g. "bearer", "signature").
	Name() string

	// Authenticate inspects the request and returns a Decision. It must not
	// write to the response or block on network I/O.
	Authenticate(r *http.Request) Decision
}
