// Package docstore provides the document-sync collaborator the session
// coordinator reconciles user profiles through: an existence check, first-time
// profile creation, and best-effort pull/push replication between a local and
// a remote document store.
//
// Replication is whole-store and last-writer-wins by update time. The
// coordinator never depends on replication succeeding: a failed pull or push
// is reported through the event sink and authentication stands regardless.
package docstore
