package docstore

import "time"

// Config represents the MongoDB connection settings for the profile store.
type Config struct {
	ConnectionURL    string        `env:"MONGODB_URL,required"`                               // ConnectionURL is the URL of the database.
	Database         string        `env:"MONGODB_DATABASE" envDefault:"sessionkit"`           // Database holding both replication collections.
	LocalCollection  string        `env:"MONGODB_LOCAL_COLLECTION" envDefault:"profiles"`     // LocalCollection is the device-side replica.
	RemoteCollection string        `env:"MONGODB_REMOTE_COLLECTION" envDefault:"profiles_rs"` // RemoteCollection is the shared replica set.
	ConnectTimeout   time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`           // ConnectTimeout is the timeout for connecting to the database.
	MaxPoolSize      uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`             // MaxPoolSize is the maximum number of pooled connections.
	MinPoolSize      uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`               // MinPoolSize is the minimum number of pooled connections.
	RetryAttempts    int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`              // RetryAttempts is the number of connection attempts before giving up.
	RetryInterval    time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`             // RetryInterval is the wait between connection attempts.
}
