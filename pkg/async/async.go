package async

import (
	"context"
	"time"
)

// Future represents the eventual result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await blocks until the computation completes and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout blocks until the computation completes or the timeout
// elapses, in which case it returns ErrTimeout.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports without blocking whether the computation has finished.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Run executes fn on its own goroutine and returns a Future for its result.
// A pre-canceled context completes the Future immediately with the context
// error without invoking fn.
func Run[U any](ctx context.Context, fn func(context.Context) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.result, f.err = fn(ctx)
	}()

	return f
}

// Detach runs fn on its own goroutine, detached from the caller's lifetime:
// the context passed to fn keeps the caller's values but never its
// cancellation, so a returning caller cannot abort the task. The returned
// Future carries only the task's error and exists so that tests and shutdown
// paths can wait for completion; production callers are free to ignore it.
func Detach(ctx context.Context, fn func(context.Context) error) *Future[struct{}] {
	detached := context.WithoutCancel(ctx)
	return Run(detached, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
}
