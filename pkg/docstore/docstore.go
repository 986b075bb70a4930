package docstore

import (
	"context"
	"time"
)

// Profile is the per-user document the coordinator reconciles: created
// locally the first time a user id is observed without one, then pushed to
// the remote store.
type Profile struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Rev       string    `bson:"rev" json:"rev"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Syncer replicates profile documents between a local store and a remote
// one. Pull and Push are whole-store, last-writer-wins by UpdatedAt; per-field
// conflict resolution is out of scope.
type Syncer interface {
	// Exists reports whether a profile document with the given id is present
	// in the local store.
	Exists(ctx context.Context, id string) (bool, error)

	// CreateProfile creates a local profile document for id. Returns
	// ErrProfileExists if one is already present.
	CreateProfile(ctx context.Context, id, name string) error

	// Get returns the local profile for id, or ErrProfileNotFound.
	Get(ctx context.Context, id string) (*Profile, error)

	// PullFromRemote copies remote documents into the local store where the
	// remote copy is newer or the local one is missing.
	PullFromRemote(ctx context.Context) error

	// PushToRemote copies local documents into the remote store where the
	// local copy is newer or the remote one is missing.
	PushToRemote(ctx context.Context) error
}
