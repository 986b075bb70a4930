package facebook

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	fboauth "golang.org/x/oauth2/facebook"

	"github.com/appforge/sessionkit/session"
)

const graphProfileURL = "https://graph.facebook.com/me"

// Adapter performs the Facebook OAuth flow directly, for deployments where
// the app exchanges the login code itself instead of delegating to the
// mobile backend.
type Adapter struct {
	conf       *oauth2.Config
	httpClient *http.Client
	profileURL string
}

// NewAdapter creates a Facebook OAuth adapter from cfg.
func NewAdapter(cfg Config) *Adapter {
	return &Adapter{
		conf: &oauth2.Config{
			ClientID:     cfg.AppID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"public_profile"},
			Endpoint:     fboauth.Endpoint,
		},
		httpClient: &http.Client{Timeout: 10 * time.Second},
		profileURL: graphProfileURL,
	}
}

// AuthURL builds the Facebook authorization URL with the given state token.
func (a *Adapter) AuthURL(state string) string {
	return a.conf.AuthCodeURL(state)
}

// ResolveIdentity exchanges the authorization code and fetches the user's id
// and display name from the Graph API.
func (a *Adapter) ResolveIdentity(ctx context.Context, code string) (*session.Identity, error) {
	tok, err := a.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange facebook code: %w", err)
	}
	return a.fetchIdentity(ctx, tok.AccessToken)
}

func (a *Adapter) fetchIdentity(ctx context.Context, accessToken string) (*session.Identity, error) {
	u := a.profileURL + "?fields=id,name&access_token=" + url.QueryEscape(accessToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch facebook profile: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("facebook graph api returned status %d", resp.StatusCode)
	}

	var profile struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}

	return &session.Identity{ID: profile.ID, DisplayName: profile.Name}, nil
}
