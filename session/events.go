package session

// Event identifies a session outcome broadcast to subscribers. Consumers key
// off event identity alone; the optional cause on a Notice exists for
// logging, not for control flow.
type Event int

const (
	// EventBackendAuthFailed fires when startup backend authentication fails.
	EventBackendAuthFailed Event = iota + 1
	// EventLoginChecked fires when startup resolved the login question:
	// either a previous session was restored or the user had deferred login.
	EventLoginChecked
	// EventLoginRequired fires when no session could be restored and the
	// user never deferred login; the UI should present the login screen.
	EventLoginRequired
	// EventPullFailed fires when the best-effort startup data pull fails.
	EventPullFailed
	// EventProfileCreateFailed fires when creating the local profile
	// document fails during reconciliation.
	EventProfileCreateFailed
	// EventProfilePushFailed fires when pushing the profile document to the
	// remote store fails during reconciliation.
	EventProfilePushFailed
)

func (e Event) String() string {
	switch e {
	case EventBackendAuthFailed:
		return "backend_auth_failed"
	case EventLoginChecked:
		return "login_checked"
	case EventLoginRequired:
		return "login_required"
	case EventPullFailed:
		return "pull_failed"
	case EventProfileCreateFailed:
		return "profile_create_failed"
	case EventProfilePushFailed:
		return "profile_push_failed"
	default:
		return "unknown"
	}
}

// Notice is the message delivered to event subscribers.
type Notice struct {
	Event Event
	// Err carries the underlying cause for failure events, nil otherwise.
	Err error
}
