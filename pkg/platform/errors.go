package platform

import "errors"

// Sentinel errors for platform operations.
var (
	// ErrKindNotFound is returned when no factory is registered for a peer kind.
	ErrKindNotFound = errors.New("platform: peer kind not registered")

	// ErrIncompatibleBackend is returned when a backend is older than required.
	ErrIncompatibleBackend = errors.New("platform: incompatible backend version")
)
