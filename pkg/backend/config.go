package backend

import "time"

// Config holds the mobile-backend connection settings. Route and InstanceID
// are the values the session coordinator checks before attempting a login.
type Config struct {
	Route          string        `env:"BACKEND_ROUTE,required"`                    // Route is the base URL of the mobile backend.
	InstanceID     string        `env:"BACKEND_INSTANCE_ID,required"`              // InstanceID identifies the provisioned backend instance.
	RequestTimeout time.Duration `env:"BACKEND_REQUEST_TIMEOUT" envDefault:"10s"`  // RequestTimeout bounds each HTTP call.
}
