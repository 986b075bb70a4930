package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Mongo is a Syncer backed by two MongoDB collections: the local replica the
// coordinator reads and writes, and the remote one documents replicate to.
type Mongo struct {
	local  *mongo.Collection
	remote *mongo.Collection

	now func() time.Time
}

// NewMongo creates a Syncer over existing collections.
func NewMongo(local, remote *mongo.Collection) *Mongo {
	return &Mongo{local: local, remote: remote, now: time.Now}
}

// Connect establishes a MongoDB connection per cfg, retrying up to
// cfg.RetryAttempts with cfg.RetryInterval between attempts, and returns a
// Syncer over the configured collections.
func Connect(ctx context.Context, cfg Config) (*Mongo, error) {
	var client *mongo.Client
	for i := 0; i < cfg.RetryAttempts; i++ {
		c, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.ConnectionURL).
				SetConnectTimeout(cfg.ConnectTimeout).
				SetMaxPoolSize(cfg.MaxPoolSize).
				SetMinPoolSize(cfg.MinPoolSize),
		)
		if err == nil {
			if err := c.Ping(ctx, nil); err == nil {
				client = c
				break
			}
			_ = c.Disconnect(ctx)
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrFailedToConnect, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}
	if client == nil {
		return nil, ErrFailedToConnect
	}

	db := client.Database(cfg.Database)
	return NewMongo(db.Collection(cfg.LocalCollection), db.Collection(cfg.RemoteCollection)), nil
}

func (m *Mongo) Exists(ctx context.Context, id string) (bool, error) {
	count, err := m.local.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("count profile %q: %w", id, err)
	}
	return count > 0, nil
}

func (m *Mongo) CreateProfile(ctx context.Context, id, name string) error {
	profile := Profile{
		ID:        id,
		Name:      name,
		Rev:       uuid.NewString(),
		UpdatedAt: m.now(),
	}

	if _, err := m.local.InsertOne(ctx, profile); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrProfileExists
		}
		return fmt.Errorf("create profile %q: %w", id, err)
	}
	return nil
}

func (m *Mongo) Get(ctx context.Context, id string) (*Profile, error) {
	var profile Profile
	err := m.local.FindOne(ctx, bson.M{"_id": id}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile %q: %w", id, err)
	}
	return &profile, nil
}

func (m *Mongo) PullFromRemote(ctx context.Context) error {
	return m.replicate(ctx, m.remote, m.local)
}

func (m *Mongo) PushToRemote(ctx context.Context) error {
	return m.replicate(ctx, m.local, m.remote)
}

// replicate copies every document from src into dst where the src copy is
// newer or dst has none. Last writer wins by UpdatedAt.
func (m *Mongo) replicate(ctx context.Context, src, dst *mongo.Collection) error {
	cursor, err := src.Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("replicate: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	for cursor.Next(ctx) {
		var profile Profile
		if err := cursor.Decode(&profile); err != nil {
			return fmt.Errorf("replicate decode: %w", err)
		}

		filter := bson.M{
			"_id": profile.ID,
			"updated_at": bson.M{
				"$lt": profile.UpdatedAt,
			},
		}
		_, err := dst.ReplaceOne(ctx, filter, profile, options.Replace().SetUpsert(true))
		if err != nil {
			// Upsert races with an existing, newer document; nothing to copy.
			if mongo.IsDuplicateKeyError(err) {
				continue
			}
			return fmt.Errorf("replicate %q: %w", profile.ID, err)
		}
	}

	return cursor.Err()
}

var _ Syncer = (*Mongo)(nil)
