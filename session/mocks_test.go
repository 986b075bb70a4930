package session_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/appforge/sessionkit/pkg/docstore"
	"github.com/appforge/sessionkit/session"
)

// MockBackend is a mock implementation of session.BackendClient.
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Route() string {
	return m.Called().String(0)
}

func (m *MockBackend) InstanceID() string {
	return m.Called().String(0)
}

func (m *MockBackend) IsAuthenticated(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

func (m *MockBackend) Authenticate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockAuthorizer is a mock implementation of session.Authorizer.
type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) RequestAuthorizationHeader(ctx context.Context) (*session.Authorization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Authorization), args.Error(1)
}

// MockSyncer is a mock implementation of docstore.Syncer.
type MockSyncer struct {
	mock.Mock
}

func (m *MockSyncer) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSyncer) CreateProfile(ctx context.Context, id, name string) error {
	return m.Called(ctx, id, name).Error(0)
}

func (m *MockSyncer) Get(ctx context.Context, id string) (*docstore.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docstore.Profile), args.Error(1)
}

func (m *MockSyncer) PullFromRemote(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSyncer) PushToRemote(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// fakeProvider is a plain value implementation of session.ProviderConfig.
type fakeProvider struct {
	appID       string
	displayName string
	urlScheme   string
}

func (p fakeProvider) AppID() string       { return p.appID }
func (p fakeProvider) DisplayName() string { return p.displayName }
func (p fakeProvider) URLScheme() string   { return p.urlScheme }

func validProvider() fakeProvider {
	return fakeProvider{
		appID:       "987654321",
		displayName: "MyApp",
		urlScheme:   "fb987654321",
	}
}

// configuredBackend returns a backend mock with non-empty route and instance
// id expectations already set.
func configuredBackend() *MockBackend {
	backend := &MockBackend{}
	backend.On("Route").Return("https://mobile.example.com").Maybe()
	backend.On("InstanceID").Return("instance-1").Maybe()
	return backend
}
