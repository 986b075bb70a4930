package broadcast

import (
	"context"
	"sync"
)

type subscriber[T any] struct {
	ch     chan Message[T]
	closed bool
	mu     sync.Mutex
}

func (s *subscriber[T]) Receive() <-chan Message[T] {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

// send delivers msg without blocking. Returns false if the subscriber is
// closed or its buffer is full.
func (s *subscriber[T]) send(msg Message[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- msg:
		return true
	default:
		return false
	}
}

// Memory is an in-process Broadcaster. Each subscriber gets a buffered
// channel; when the buffer is full new messages are dropped for that
// subscriber rather than blocking the broadcast. All methods are safe for
// concurrent use.
type Memory[T any] struct {
	subscribers map[*subscriber[T]]struct{}
	bufferSize  int
	closed      bool
	done        chan struct{}
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
}

// NewMemory creates an in-process broadcaster with the given per-subscriber
// buffer size. A minimum buffer of 1 is enforced so sends never block.
func NewMemory[T any](bufferSize int) *Memory[T] {
	return &Memory[T]{
		subscribers: make(map[*subscriber[T]]struct{}),
		bufferSize:  max(bufferSize, 1),
		done:        make(chan struct{}),
	}
}

// Subscribe registers a subscriber that receives all subsequent broadcasts.
// The subscription is removed automatically when ctx is canceled. Subscribing
// to a closed broadcaster returns an already-closed subscriber.
func (b *Memory[T]) Subscribe(ctx context.Context) Subscriber[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &subscriber[T]{ch: make(chan Message[T], b.bufferSize)}
	if b.closed {
		_ = sub.Close()
		return sub
	}

	b.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		b.cleanupWg.Add(1)
		go func() {
			defer b.cleanupWg.Done()
			select {
			case <-ctx.Done():
				b.unsubscribe(sub)
			case <-b.done:
				// Close already handled the subscriber.
			}
		}()
	}

	return sub
}

// Broadcast sends msg to every active subscriber at most once. Subscribers
// whose buffers are full miss the message and are unsubscribed.
func (b *Memory[T]) Broadcast(ctx context.Context, msg Message[T]) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil
	}

	for sub := range b.subscribers {
		if !sub.send(msg) {
			// Unsubscribe asynchronously: we hold the read lock here.
			go b.unsubscribe(sub)
		}
	}

	return nil
}

// Close shuts down the broadcaster and closes all subscribers. Safe to call
// multiple times.
func (b *Memory[T]) Close() error {
	b.mu.Lock()

	if b.closed {
		b.mu.Unlock()
		return nil
	}

	b.closed = true
	close(b.done)
	for sub := range b.subscribers {
		_ = sub.Close()
	}
	clear(b.subscribers)
	b.mu.Unlock()

	// Let in-flight context-cancellation cleanups finish before returning.
	b.cleanupWg.Wait()
	return nil
}

func (b *Memory[T]) unsubscribe(sub *subscriber[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subscribers, sub)
	_ = sub.Close()
}

var _ Broadcaster[struct{}] = (*Memory[struct{}])(nil)
