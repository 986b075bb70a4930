package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/appforge/sessionkit/pkg/logger"
	"github.com/appforge/sessionkit/session"
)

var (
	// ErrNotAuthenticated is returned when a call requiring a backend
	// session is made before Authenticate has succeeded.
	ErrNotAuthenticated = errors.New("backend: not authenticated")

	// ErrUnexpectedStatus is returned when the backend responds with a
	// non-success HTTP status.
	ErrUnexpectedStatus = errors.New("backend: unexpected response status")
)

// Client talks to the mobile backend over HTTP. It implements both the
// session.BackendClient and session.Authorizer contracts: establishing the
// backend session and performing the token exchange.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger

	mu    sync.RWMutex
	token string
}

// Option configures a Client during construction.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger configures the logger. The default discards all records.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a backend client from cfg.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		log:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Route returns the configured backend base URL, empty when unconfigured.
func (c *Client) Route() string {
	return c.cfg.Route
}

// InstanceID returns the configured backend instance identifier.
func (c *Client) InstanceID() string {
	return c.cfg.InstanceID
}

// IsAuthenticated reports whether a backend session token is held.
func (c *Client) IsAuthenticated(ctx context.Context) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}

// Authenticate establishes the backend session and caches its token for
// subsequent calls.
func (c *Client) Authenticate(ctx context.Context) error {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.post(ctx, c.endpoint("sessions"), &out); err != nil {
		return fmt.Errorf("backend authenticate: %w", err)
	}
	if out.Token == "" {
		return fmt.Errorf("backend authenticate: %w: empty session token", ErrUnexpectedStatus)
	}

	c.mu.Lock()
	c.token = out.Token
	c.mu.Unlock()

	c.log.DebugContext(ctx, "backend session established", logger.Component("backend"))
	return nil
}

// RequestAuthorizationHeader performs the token exchange. The identity on
// the response is nil when the backend has no identity-provider method
// configured; the coordinator decides what that means.
func (c *Client) RequestAuthorizationHeader(ctx context.Context) (*session.Authorization, error) {
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("authorization"), nil)
	if err != nil {
		return nil, fmt.Errorf("token exchange: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token exchange: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token exchange: %w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var auth session.Authorization
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return nil, fmt.Errorf("token exchange decode: %w", err)
	}
	return &auth, nil
}

func (c *Client) post(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) endpoint(path string) string {
	return strings.TrimSuffix(c.cfg.Route, "/") + "/v1/apps/" + c.cfg.InstanceID + "/" + path
}

// Compile-time contract assertions.
var (
	_ session.BackendClient = (*Client)(nil)
	_ session.Authorizer    = (*Client)(nil)
)
