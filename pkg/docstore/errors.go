package docstore

import "errors"

var (
	// ErrProfileExists is returned by CreateProfile when a document with the
	// same id is already present locally.
	ErrProfileExists = errors.New("docstore: profile already exists")

	// ErrProfileNotFound is returned by Get for unknown profile ids.
	ErrProfileNotFound = errors.New("docstore: profile not found")

	// ErrFailedToConnect is returned when the MongoDB server cannot be
	// reached within the configured retry budget.
	ErrFailedToConnect = errors.New("docstore: failed to connect to mongo")
)
