package broadcast

import "context"

// Message wraps data of type T for type-safe broadcasting.
type Message[T any] struct {
	Data T
}

// Subscriber receives messages from a Broadcaster.
// Implementations must be safe for concurrent use.
type Subscriber[T any] interface {
	// Receive returns the channel broadcast messages arrive on. The channel
	// is closed when the subscriber closes.
	Receive() <-chan Message[T]

	// Close closes the subscriber and releases its resources.
	// Close is idempotent.
	Close() error
}

// Broadcaster delivers each broadcast message to every active subscriber at
// most once. Implementations must not block on slow consumers; dropping the
// message for that consumer is the expected behavior.
type Broadcaster[T any] interface {
	// Subscribe registers a new subscriber. The subscription is cleaned up
	// when ctx is canceled or the subscriber is closed.
	Subscribe(ctx context.Context) Subscriber[T]

	// Broadcast sends msg to all active subscribers.
	Broadcast(ctx context.Context, msg Message[T]) error

	// Close shuts down the broadcaster and closes all subscribers.
	Close() error
}
