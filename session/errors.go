package session

import "errors"

// Precondition errors: these fail closed, synchronously, before any network
// call is made.
var (
	ErrBackendUnconfigured = errors.New("session: backend route or instance id missing")
	ErrConfigInvalid       = errors.New("session: social-login configuration invalid")
)

// Token exchange errors. The caller sees a failed login either way; the
// distinct sentinels separate a transient exchange failure from a server-side
// identity-provider misconfiguration.
var (
	ErrTokenExchange      = errors.New("session: token exchange failed")
	ErrIdentityMissing    = errors.New("session: token exchange returned no identity")
	ErrIdentityIncomplete = errors.New("session: identity missing id or display name")
)

// ErrAuthInProgress is returned when Authenticate is called while a previous
// attempt is still in flight. Login attempts are not queued or superseded.
var ErrAuthInProgress = errors.New("session: authentication already in progress")
