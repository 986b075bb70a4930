package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/appforge/sessionkit/pkg/async"
	"github.com/appforge/sessionkit/pkg/broadcast"
	"github.com/appforge/sessionkit/pkg/docstore"
	"github.com/appforge/sessionkit/pkg/kv"
	"github.com/appforge/sessionkit/pkg/logger"
)

// Social-login configuration placeholders that ship in SDK templates. A
// configuration still carrying them has never been filled in.
const (
	placeholderAppID     = "123456789"
	placeholderURLScheme = "fb123456789"
	urlSchemePrefix      = "fb"
)

// Coordinator drives the login sequence against its collaborators and owns
// the process-wide Session. All collaborator mutations of the Session and the
// key-value store go through the coordinator; there is no other writer.
type Coordinator struct {
	backend    BackendClient
	authorizer Authorizer
	provider   ProviderConfig
	store      kv.Store
	profiles   docstore.Syncer

	events *broadcast.Memory[Notice]
	log    *slog.Logger

	mu      sync.RWMutex
	session Session

	authInFlight atomic.Bool
}

// Option configures a Coordinator during construction.
type Option func(*Coordinator)

// WithLogger configures the logger. The default discards all records.
func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.log = l
		}
	}
}

// WithEventBuffer sets the per-subscriber event buffer size.
func WithEventBuffer(size int) Option {
	return func(c *Coordinator) {
		c.events = broadcast.NewMemory[Notice](size)
	}
}

// New constructs a Coordinator over its collaborators. The Session starts
// empty; call Resume on startup to restore persisted state.
func New(backend BackendClient, authorizer Authorizer, provider ProviderConfig, store kv.Store, profiles docstore.Syncer, opts ...Option) *Coordinator {
	c := &Coordinator{
		backend:    backend,
		authorizer: authorizer,
		provider:   provider,
		store:      store,
		profiles:   profiles,
		events:     broadcast.NewMemory[Notice](8),
		log:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns a copy of the current session state.
func (c *Coordinator) Session() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// Subscribe registers an event subscriber. The subscription ends when ctx is
// canceled, the subscriber is closed, or the coordinator is closed.
func (c *Coordinator) Subscribe(ctx context.Context) broadcast.Subscriber[Notice] {
	return c.events.Subscribe(ctx)
}

// Close shuts down the event sink. Detached tasks already in flight finish
// on their own; their events are dropped.
func (c *Coordinator) Close() error {
	return c.events.Close()
}

// Authenticate performs a login attempt: configuration preconditions, token
// exchange, session update, state persistence, and detached profile
// reconciliation, in that order. Persistence completes before Authenticate
// returns; reconciliation is started before it returns but not awaited.
//
// Overlapping calls are rejected with ErrAuthInProgress rather than queued
// or superseded.
func (c *Coordinator) Authenticate(ctx context.Context) error {
	if !c.authInFlight.CompareAndSwap(false, true) {
		return ErrAuthInProgress
	}
	defer c.authInFlight.Store(false)

	// Preconditions fail closed before any network call.
	if c.backend.Route() == "" || c.backend.InstanceID() == "" {
		return ErrBackendUnconfigured
	}
	if err := c.validateConfiguration(); err != nil {
		return err
	}

	auth, err := c.authorizer.RequestAuthorizationHeader(ctx)
	if err != nil {
		c.log.WarnContext(ctx, "token exchange failed",
			logger.Component("session"),
			logger.Error(err),
		)
		return errors.Join(ErrTokenExchange, err)
	}

	if auth == nil || auth.Identity == nil {
		// No identity at all means no identity-provider method is
		// configured on the backend, not a transient failure.
		return ErrIdentityMissing
	}
	identity := *auth.Identity
	if identity.ID == "" || identity.DisplayName == "" {
		return ErrIdentityIncomplete
	}

	c.mu.Lock()
	c.session.UserID = identity.ID
	c.session.UserDisplayName = identity.DisplayName
	c.session.LoggedIn = true
	c.mu.Unlock()

	// Persisted state and the in-memory session stay eventually consistent:
	// both are written before success is reported. Persistence failures are
	// logged but do not revoke the login.
	if err := c.store.Set(ctx, KeyUserID, identity.ID); err != nil {
		c.log.ErrorContext(ctx, "failed to persist user id",
			logger.Component("session"),
			logger.UserID(identity.ID),
			logger.Error(err),
		)
	}
	if err := c.store.Set(ctx, KeyUserName, identity.DisplayName); err != nil {
		c.log.ErrorContext(ctx, "failed to persist user name",
			logger.Component("session"),
			logger.UserID(identity.ID),
			logger.Error(err),
		)
	}

	async.Detach(ctx, func(taskCtx context.Context) error {
		c.ReconcileProfile(taskCtx)
		return nil
	})

	c.log.InfoContext(ctx, "user authenticated",
		logger.Component("session"),
		logger.UserID(identity.ID),
	)
	return nil
}

// AuthenticateAsync runs Authenticate on its own goroutine and returns a
// future resolving to the resulting session state.
func (c *Coordinator) AuthenticateAsync(ctx context.Context) *async.Future[Session] {
	return async.Run(ctx, func(ctx context.Context) (Session, error) {
		if err := c.Authenticate(ctx); err != nil {
			return Session{}, err
		}
		return c.Session(), nil
	})
}

// ValidateConfiguration checks the social-login provider configuration and,
// when valid, caches the app id and display name into the Session. Repeated
// calls with the same configuration are idempotent.
func (c *Coordinator) ValidateConfiguration() bool {
	return c.validateConfiguration() == nil
}

func (c *Coordinator) validateConfiguration() error {
	appID := c.provider.AppID()
	displayName := c.provider.DisplayName()
	scheme := c.provider.URLScheme()

	switch {
	case appID == "" || appID == placeholderAppID:
		return fmt.Errorf("%w: app id missing or placeholder", ErrConfigInvalid)
	case displayName == "":
		return fmt.Errorf("%w: display name missing", ErrConfigInvalid)
	case scheme == "" || scheme == placeholderURLScheme || !strings.HasPrefix(scheme, urlSchemePrefix):
		return fmt.Errorf("%w: url scheme missing or malformed", ErrConfigInvalid)
	}

	c.mu.Lock()
	c.session.AppID = appID
	c.session.AppDisplayName = displayName
	c.mu.Unlock()
	return nil
}

// ReconcileProfile ensures a profile document exists for the authenticated
// user, creating and pushing one if absent. Failures surface only through
// the event sink: authentication stands regardless of the outcome here.
func (c *Coordinator) ReconcileProfile(ctx context.Context) {
	c.mu.RLock()
	id, name := c.session.UserID, c.session.UserDisplayName
	c.mu.RUnlock()

	if id == "" {
		return
	}

	exists, err := c.profiles.Exists(ctx, id)
	if err != nil {
		c.emit(ctx, EventProfileCreateFailed, err)
		return
	}
	if exists {
		return
	}

	if err := c.profiles.CreateProfile(ctx, id, name); err != nil {
		// A concurrent create by another device is the state we wanted.
		if !errors.Is(err, docstore.ErrProfileExists) {
			c.emit(ctx, EventProfileCreateFailed, err)
			return
		}
	}

	if err := c.profiles.PushToRemote(ctx); err != nil {
		c.emit(ctx, EventProfilePushFailed, err)
	}
}

// Resume orchestrates app-start behavior: establish the backend session,
// kick off a best-effort remote data pull, then either restore the persisted
// session, proceed without login if the user deferred it, or signal that the
// login screen is needed. Outcomes are reported through the event sink.
func (c *Coordinator) Resume(ctx context.Context) error {
	if !c.backend.IsAuthenticated(ctx) {
		if err := c.backend.Authenticate(ctx); err != nil {
			c.emit(ctx, EventBackendAuthFailed, err)
			return fmt.Errorf("backend authenticate: %w", err)
		}
	}

	// Failure here degrades startup, it does not block the login check.
	async.Detach(ctx, func(taskCtx context.Context) error {
		if err := c.profiles.PullFromRemote(taskCtx); err != nil {
			c.emit(taskCtx, EventPullFailed, err)
			return err
		}
		return nil
	})

	userID, idErr := c.store.Get(ctx, KeyUserID)
	userName, nameErr := c.store.Get(ctx, KeyUserName)
	if idErr == nil && nameErr == nil && userID != "" && userName != "" {
		c.mu.Lock()
		c.session.UserID = userID
		c.session.UserDisplayName = userName
		c.mu.Unlock()

		c.log.InfoContext(ctx, "session restored",
			logger.Component("session"),
			logger.UserID(userID),
		)
		c.emit(ctx, EventLoginChecked, nil)
		return nil
	}

	deferred, err := c.store.GetBool(ctx, KeyPressedLater)
	if err != nil {
		// An unreadable flag reads as unset: prompting for login again is
		// the safer degradation.
		deferred = false
	}
	if deferred {
		c.emit(ctx, EventLoginChecked, nil)
	} else {
		c.emit(ctx, EventLoginRequired, nil)
	}
	return nil
}

// DeferLogin records that the user chose to skip login. Subsequent Resume
// calls proceed without prompting until Logout clears the session.
func (c *Coordinator) DeferLogin(ctx context.Context) error {
	return c.store.SetBool(ctx, KeyPressedLater, true)
}

// Logout clears the in-memory session and the persisted user state. Cached
// provider configuration survives: it was validated independently of the
// user.
func (c *Coordinator) Logout(ctx context.Context) error {
	c.mu.Lock()
	c.session.UserID = ""
	c.session.UserDisplayName = ""
	c.session.LoggedIn = false
	c.mu.Unlock()

	return errors.Join(
		c.store.Delete(ctx, KeyUserID),
		c.store.Delete(ctx, KeyUserName),
	)
}

// ProfilePictureURL derives the profile picture URL for the current user,
// or returns an empty string when nobody is logged in or restored.
func (c *Coordinator) ProfilePictureURL() string {
	return c.Session().ProfilePictureURL()
}

func (c *Coordinator) emit(ctx context.Context, event Event, cause error) {
	if cause != nil {
		c.log.WarnContext(ctx, "session event",
			logger.Component("session"),
			logger.Event(event.String()),
			logger.Error(cause),
		)
	} else {
		c.log.DebugContext(ctx, "session event",
			logger.Component("session"),
			logger.Event(event.String()),
		)
	}
	_ = c.events.Broadcast(ctx, broadcast.Message[Notice]{Data: Notice{Event: event, Err: cause}})
}
