package session

// Profile picture URL shape for the social-login provider. Derivation is
// pure: nothing checks that the URL resolves.
const (
	pictureURLPrefix = "https://graph.facebook.com/"
	pictureURLSuffix = "/picture?type=large"
)

// Keys the coordinator persists session state under in the key-value store.
const (
	KeyUserID       = "user_id"
	KeyUserName     = "user_name"
	KeyPressedLater = "hasPressedLater"
)

// Session is the in-memory record of the current user's authentication
// state. It is created empty, populated by a successful token exchange or by
// restoring persisted values on startup, and cleared only by Logout.
type Session struct {
	// UserID is the unique identifier from the social-login provider.
	UserID string
	// UserDisplayName is the human-readable name from the provider.
	UserDisplayName string
	// LoggedIn is true once a token exchange has succeeded in the current
	// process lifetime. LoggedIn implies UserID and UserDisplayName are set.
	LoggedIn bool

	// AppID and AppDisplayName cache the provider configuration. They are
	// set only after the configuration has passed validation.
	AppID          string
	AppDisplayName string
}

// ProfilePictureURL derives the user's profile picture URL from the stored
// user id, or returns an empty string when no user is known.
func (s Session) ProfilePictureURL() string {
	if s.UserID == "" {
		return ""
	}
	return pictureURLPrefix + s.UserID + pictureURLSuffix
}
