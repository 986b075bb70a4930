// Package session coordinates a mobile application's authentication
// bookkeeping. Every substantive operation is delegated to a collaborator:
// the social-login provider supplies configuration and identity, the backend
// client performs the token exchange, the document-sync client replicates
// profile documents, and the key-value store persists minimal session state.
// What this package owns is the sequencing: verify configuration, obtain a
// token, persist session state, reconcile the remote profile, and notify
// subscribers of outcomes.
//
// The Coordinator is an explicitly constructed, dependency-injected object.
// Synchronous preconditions fail closed: an unconfigured backend or invalid
// provider configuration denies the login attempt before any network call.
// Post-login side flows fail open: profile reconciliation and the startup
// data pull run detached, and their failures are observable only as events.
//
//	coord := session.New(backend, backend, providerCfg, store, profiles,
//		session.WithLogger(log),
//	)
//	defer coord.Close()
//
//	sub := coord.Subscribe(ctx)
//	if err := coord.Resume(ctx); err != nil { ... }
//
//	switch notice := <-sub.Receive(); notice.Data.Event {
//	case session.EventLoginRequired:
//		// present login UI, then coord.Authenticate(ctx)
//	case session.EventLoginChecked:
//		// proceed
//	}
package session
