package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/appforge/sessionkit/pkg/broadcast"
	"github.com/appforge/sessionkit/pkg/kv"
	"github.com/appforge/sessionkit/session"
)

// collectEvents drains the subscriber until the timeout elapses and returns
// every event seen.
func collectEvents(sub broadcast.Subscriber[session.Notice], timeout time.Duration) []session.Event {
	var events []session.Event
	deadline := time.After(timeout)
	for {
		select {
		case msg, ok := <-sub.Receive():
			if !ok {
				return events
			}
			events = append(events, msg.Data.Event)
		case <-deadline:
			return events
		}
	}
}

// awaitEvent blocks until the given event arrives or the timeout elapses.
func awaitEvent(t *testing.T, sub broadcast.Subscriber[session.Notice], want session.Event) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case msg, ok := <-sub.Receive():
			require.True(t, ok, "event channel closed while waiting for %s", want)
			if msg.Data.Event == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event %s", want)
		}
	}
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("fails fast on missing backend route", func(t *testing.T) {
		t.Parallel()

		backend := &MockBackend{}
		backend.On("Route").Return("")
		authorizer := &MockAuthorizer{}

		coord := session.New(backend, authorizer, validProvider(), kv.NewMemory(), &MockSyncer{})
		defer coord.Close()

		err := coord.Authenticate(ctx)
		assert.ErrorIs(t, err, session.ErrBackendUnconfigured)
		authorizer.AssertNotCalled(t, "RequestAuthorizationHeader", mock.Anything)
	})

	t.Run("fails fast on missing instance id", func(t *testing.T) {
		t.Parallel()

		backend := &MockBackend{}
		backend.On("Route").Return("https://mobile.example.com")
		backend.On("InstanceID").Return("")
		authorizer := &MockAuthorizer{}

		coord := session.New(backend, authorizer, validProvider(), kv.NewMemory(), &MockSyncer{})
		defer coord.Close()

		err := coord.Authenticate(ctx)
		assert.ErrorIs(t, err, session.ErrBackendUnconfigured)
		authorizer.AssertNotCalled(t, "RequestAuthorizationHeader", mock.Anything)
	})

	t.Run("fails fast on invalid configuration", func(t *testing.T) {
		t.Parallel()

		authorizer := &MockAuthorizer{}
		provider := fakeProvider{appID: "123456789", displayName: "MyApp", urlScheme: "fb987654321"}

		coord := session.New(configuredBackend(), authorizer, provider, kv.NewMemory(), &MockSyncer{})
		defer coord.Close()

		err := coord.Authenticate(ctx)
		assert.ErrorIs(t, err, session.ErrConfigInvalid)
		authorizer.AssertNotCalled(t, "RequestAuthorizationHeader", mock.Anything)
	})

	t.Run("token exchange error", func(t *testing.T) {
		t.Parallel()

		authorizer := &MockAuthorizer{}
		authorizer.On("RequestAuthorizationHeader", mock.Anything).Return(nil, errors.New("network down"))

		coord := session.New(configuredBackend(), authorizer, validProvider(), kv.NewMemory(), &MockSyncer{})
		defer coord.Close()

		err := coord.Authenticate(ctx)
		assert.ErrorIs(t, err, session.ErrTokenExchange)
		assert.False(t, coord.Session().LoggedIn)
	})

	t.Run("missing identity", func(t *testing.T) {
		t.Parallel()

		authorizer := &MockAuthorizer{}
		authorizer.On("RequestAuthorizationHeader", mock.Anything).
			Return(&session.Authorization{Header: "Bearer x"}, nil)

		coord := session.New(configuredBackend(), authorizer, validProvider(), kv.NewMemory(), &MockSyncer{})
		defer coord.Close()

		err := coord.Authenticate(ctx)
		assert.ErrorIs(t, err, session.ErrIdentityMissing)
		assert.False(t, coord.Session().LoggedIn)
	})

	t.Run("incomplete identity leaves session logged out", func(t *testing.T) {
		t.Parallel()

		authorizer := &MockAuthorizer{}
		authorizer.On("RequestAuthorizationHeader", mock.Anything).
			Return(&session.Authorization{
				Header:   "Bearer x",
				Identity: &session.Identity{DisplayName: "Ann"},
			}, nil)

		store := kv.NewMemory()
		coord := session.New(configuredBackend(), authorizer, validProvider(), store, &MockSyncer{})
		defer coord.Close()

		err := coord.Authenticate(ctx)
		assert.ErrorIs(t, err, session.ErrIdentityIncomplete)
		assert.False(t, coord.Session().LoggedIn)

		_, err = store.Get(ctx, session.KeyUserID)
		assert.ErrorIs(t, err, kv.ErrKeyNotFound)
	})

	t.Run("success updates session and persists state", func(t *testing.T) {
		t.Parallel()

		authorizer := &MockAuthorizer{}
		authorizer.On("RequestAuthorizationHeader", mock.Anything).
			Return(&session.Authorization{
				Header:   "Bearer x",
				Identity: &session.Identity{ID: "42", DisplayName: "Ann"},
			}, nil)

		reconcileStarted := make(chan struct{})
		profiles := &MockSyncer{}
		profiles.On("Exists", mock.Anything, "42").
			Run(func(mock.Arguments) { close(reconcileStarted) }).
			Return(true, nil)

		store := kv.NewMemory()
		coord := session.New(configuredBackend(), authorizer, validProvider(), store, profiles)
		defer coord.Close()

		require.NoError(t, coord.Authenticate(ctx))

		state := coord.Session()
		assert.True(t, state.LoggedIn)
		assert.Equal(t, "42", state.UserID)
		assert.Equal(t, "Ann", state.UserDisplayName)

		// Persistence completed before Authenticate returned.
		id, err := store.Get(ctx, session.KeyUserID)
		require.NoError(t, err)
		assert.Equal(t, "42", id)
		name, err := store.Get(ctx, session.KeyUserName)
		require.NoError(t, err)
		assert.Equal(t, "Ann", name)

		// Reconciliation runs detached.
		select {
		case <-reconcileStarted:
		case <-time.After(2 * time.Second):
			t.Fatal("profile reconciliation never started")
		}
		profiles.AssertExpectations(t)
	})

	t.Run("overlapping attempt is rejected", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		entered := make(chan struct{})
		authorizer := &MockAuthorizer{}
		authorizer.On("RequestAuthorizationHeader", mock.Anything).
			Run(func(mock.Arguments) {
				close(entered)
				<-release
			}).
			Return(&session.Authorization{
				Header:   "Bearer x",
				Identity: &session.Identity{ID: "42", DisplayName: "Ann"},
			}, nil)

		profiles := &MockSyncer{}
		profiles.On("Exists", mock.Anything, "42").Return(true, nil).Maybe()

		coord := session.New(configuredBackend(), authorizer, validProvider(), kv.NewMemory(), profiles)
		defer coord.Close()

		first := coord.AuthenticateAsync(ctx)
		<-entered

		err := coord.Authenticate(ctx)
		assert.ErrorIs(t, err, session.ErrAuthInProgress)

		close(release)
		state, err := first.Await()
		require.NoError(t, err)
		assert.True(t, state.LoggedIn)
	})
}

func TestValidateConfiguration(t *testing.T) {
	t.Parallel()

	invalid := []struct {
		name     string
		provider fakeProvider
	}{
		{"empty app id", fakeProvider{appID: "", displayName: "MyApp", urlScheme: "fb987654321"}},
		{"placeholder app id", fakeProvider{appID: "123456789", displayName: "MyApp", urlScheme: "fb987654321"}},
		{"empty display name", fakeProvider{appID: "987654321", displayName: "", urlScheme: "fb987654321"}},
		{"empty url scheme", fakeProvider{appID: "987654321", displayName: "MyApp", urlScheme: ""}},
		{"placeholder url scheme", fakeProvider{appID: "987654321", displayName: "MyApp", urlScheme: "fb123456789"}},
		{"url scheme without fb prefix", fakeProvider{appID: "987654321", displayName: "MyApp", urlScheme: "myapp987"}},
	}

	for _, tc := range invalid {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			coord := session.New(configuredBackend(), &MockAuthorizer{}, tc.provider, kv.NewMemory(), &MockSyncer{})
			defer coord.Close()

			assert.False(t, coord.ValidateConfiguration())

			state := coord.Session()
			assert.Empty(t, state.AppID)
			assert.Empty(t, state.AppDisplayName)
		})
	}

	t.Run("valid configuration caches app id and display name", func(t *testing.T) {
		t.Parallel()

		coord := session.New(configuredBackend(), &MockAuthorizer{}, validProvider(), kv.NewMemory(), &MockSyncer{})
		defer coord.Close()

		require.True(t, coord.ValidateConfiguration())

		state := coord.Session()
		assert.Equal(t, "987654321", state.AppID)
		assert.Equal(t, "MyApp", state.AppDisplayName)

		// Idempotent under repeated calls.
		require.True(t, coord.ValidateConfiguration())
		assert.Equal(t, state, coord.Session())
	})
}

func TestProfilePictureURL(t *testing.T) {
	t.Parallel()

	t.Run("derives url from user id", func(t *testing.T) {
		t.Parallel()

		s := session.Session{UserID: "42"}
		assert.Equal(t, "https://graph.facebook.com/42/picture?type=large", s.ProfilePictureURL())
	})

	t.Run("empty without user id", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, session.Session{}.ProfilePictureURL())
	})
}

func TestLogoutAndDefer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("defer login sets the persisted flag", func(t *testing.T) {
		t.Parallel()

		store := kv.NewMemory()
		coord := session.New(configuredBackend(), &MockAuthorizer{}, validProvider(), store, &MockSyncer{})
		defer coord.Close()

		require.NoError(t, coord.DeferLogin(ctx))

		deferred, err := store.GetBool(ctx, session.KeyPressedLater)
		require.NoError(t, err)
		assert.True(t, deferred)
	})

	t.Run("logout clears session and persisted user state", func(t *testing.T) {
		t.Parallel()

		authorizer := &MockAuthorizer{}
		authorizer.On("RequestAuthorizationHeader", mock.Anything).
			Return(&session.Authorization{
				Header:   "Bearer x",
				Identity: &session.Identity{ID: "42", DisplayName: "Ann"},
			}, nil)

		profiles := &MockSyncer{}
		profiles.On("Exists", mock.Anything, "42").Return(true, nil).Maybe()

		store := kv.NewMemory()
		coord := session.New(configuredBackend(), authorizer, validProvider(), store, profiles)
		defer coord.Close()

		require.NoError(t, coord.Authenticate(ctx))
		require.NoError(t, coord.Logout(ctx))

		state := coord.Session()
		assert.False(t, state.LoggedIn)
		assert.Empty(t, state.UserID)
		assert.Empty(t, state.UserDisplayName)
		// Validated provider configuration survives logout.
		assert.Equal(t, "987654321", state.AppID)

		_, err := store.Get(ctx, session.KeyUserID)
		assert.ErrorIs(t, err, kv.ErrKeyNotFound)
		_, err = store.Get(ctx, session.KeyUserName)
		assert.ErrorIs(t, err, kv.ErrKeyNotFound)
	})
}
