// Package async provides the small concurrency primitives the session
// coordinator is built on: a generic Future started with Run, and Detach for
// fire-and-forget side flows.
//
// Run starts a computation on its own goroutine and returns a *Future that
// can be waited on with Await or AwaitWithTimeout, or polled with IsComplete.
//
// Detach is the primitive behind best-effort background work (remote profile
// reconciliation, startup data pull): the task inherits the caller's context
// values but not its cancellation, and its outcome is observable only through
// the returned Future or whatever events the task itself emits.
package async
