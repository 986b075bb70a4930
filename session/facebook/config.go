package facebook

import "github.com/appforge/sessionkit/session"

// Config holds the Facebook social-login configuration. The coordinator
// validates it before any login attempt: the zero-looking defaults below are
// the placeholders SDK templates ship with, and validation rejects them.
type Config struct {
	AppID        string   `env:"FACEBOOK_APP_ID"`
	DisplayName  string   `env:"FACEBOOK_DISPLAY_NAME"`
	URLSchemes   []string `env:"FACEBOOK_URL_SCHEMES" envSeparator:","`
	ClientSecret string   `env:"FACEBOOK_CLIENT_SECRET"`
	RedirectURL  string   `env:"FACEBOOK_REDIRECT_URL"`
}

// Provider adapts a Config to the session.ProviderConfig contract.
type Provider struct {
	cfg Config
}

// NewProvider wraps cfg for consumption by the session coordinator.
func NewProvider(cfg Config) Provider {
	return Provider{cfg: cfg}
}

func (p Provider) AppID() string {
	return p.cfg.AppID
}

func (p Provider) DisplayName() string {
	return p.cfg.DisplayName
}

// URLScheme returns the first registered callback URL scheme, matching how
// the platform resolves the scheme the provider SDK calls back on.
func (p Provider) URLScheme() string {
	if len(p.cfg.URLSchemes) == 0 {
		return ""
	}
	return p.cfg.URLSchemes[0]
}

var _ session.ProviderConfig = Provider{}
