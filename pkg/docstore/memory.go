package docstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-memory Syncer holding both sides of the replication pair.
// Suitable for development and testing.
type Memory struct {
	local  map[string]Profile
	remote map[string]Profile
	mu     sync.RWMutex

	now func() time.Time
}

// NewMemory creates an empty in-memory syncer.
func NewMemory() *Memory {
	return &Memory{
		local:  make(map[string]Profile),
		remote: make(map[string]Profile),
		now:    time.Now,
	}
}

func (m *Memory) Exists(ctx context.Context, id string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.local[id]
	return ok, nil
}

func (m *Memory) CreateProfile(ctx context.Context, id, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.local[id]; ok {
		return ErrProfileExists
	}

	m.local[id] = Profile{
		ID:        id,
		Name:      name,
		Rev:       uuid.NewString(),
		UpdatedAt: m.now(),
	}
	return nil
}

func (m *Memory) Get(ctx context.Context, id string) (*Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.local[id]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return &p, nil
}

func (m *Memory) PullFromRemote(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, remote := range m.remote {
		local, ok := m.local[id]
		if !ok || remote.UpdatedAt.After(local.UpdatedAt) {
			m.local[id] = remote
		}
	}
	return nil
}

func (m *Memory) PushToRemote(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, local := range m.local {
		remote, ok := m.remote[id]
		if !ok || local.UpdatedAt.After(remote.UpdatedAt) {
			m.remote[id] = local
		}
	}
	return nil
}

// SeedRemote places a profile directly into the remote side. Test helper for
// simulating documents created by other devices.
func (m *Memory) SeedRemote(p Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.Rev == "" {
		p.Rev = uuid.NewString()
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = m.now()
	}
	m.remote[p.ID] = p
}

// RemoteProfile returns the remote copy of id, if any. Test helper.
func (m *Memory) RemoteProfile(id string) (Profile, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.remote[id]
	return p, ok
}

var _ Syncer = (*Memory)(nil)
