package session

import "context"

// Identity is the user identity returned by a successful token exchange.
// Either field may be absent when the identity provider is misconfigured
// server side.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// Authorization is the result of a token exchange: the header value to use
// on subsequent calls plus the identity the backend resolved, if any.
type Authorization struct {
	Header   string    `json:"authorization"`
	Identity *Identity `json:"identity"`
}

// BackendClient is the mobile-backend collaborator. Route and InstanceID
// must both be non-empty before the coordinator attempts any network call.
type BackendClient interface {
	Route() string
	InstanceID() string

	// IsAuthenticated reports whether the backend session is already
	// established.
	IsAuthenticated(ctx context.Context) bool

	// Authenticate establishes the backend session.
	Authenticate(ctx context.Context) error
}

// Authorizer performs the token exchange: trading app and device credentials
// for an authorization header and the provider identity behind it.
type Authorizer interface {
	RequestAuthorizationHeader(ctx context.Context) (*Authorization, error)
}

// ProviderConfig exposes the social-login provider configuration the
// coordinator validates before attempting a login.
type ProviderConfig interface {
	AppID() string
	DisplayName() string
	// URLScheme returns the first registered callback URL scheme, or an
	// empty string when none is configured.
	URLScheme() string
}
