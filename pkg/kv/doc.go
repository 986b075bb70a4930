// Package kv provides the key-value store the session coordinator persists
// minimal session state through: the authenticated user's id and display
// name, and the "pressed later" deferred-login flag.
//
// Two implementations are provided: Memory for tests and single-process use,
// and Redis for deployments where the bookkeeping lives server side. Both
// satisfy Store; the coordinator only sees the interface.
package kv
