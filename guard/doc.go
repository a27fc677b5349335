// Package guard implements the request authentication schemes and their
// orchestration.
//
// A Scheme inspects a request and returns a three-valued Decision: Granted
// with an identity, Denied with a reason, or NotApplicable when the request
// does not carry that scheme's credential at all. NotApplicable is distinct
// from Denied — it lets an orchestrator try the next scheme, while Denied is
// terminal for the request.
//
// Gate composes schemes as a short-circuiting ordered list. The first scheme
// whose credential is present decides the request outright: a caller who
// presents an invalid bearer token is rejected immediately and never falls
// through to signature auth. When no scheme applies the gate denies with
// ErrMissingCredentials. Adding a third auth scheme is a matter of appending
// to the list.
//
// Schemes perform only local CPU work (signature checks, token parsing) and
// share no mutable state, so a Gate is safe for concurrent use across
// requests.
package guard
