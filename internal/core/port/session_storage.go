package port

import "context"

// SessionStorage persists per-session string keys. It is the server-side
// counterpart of browser local storage: each visitor session owns an
// isolated key space. Implementations must be safe for concurrent use and
// give Set overwrite semantics.
type SessionStorage interface {
	// Get returns the value stored under key and whether it exists.
	Get(ctx context.Context, sessionID string, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, sessionID string, key string, value string) error
	// Delete removes the given keys in one operation. Missing keys are
	// ignored.
	Delete(ctx context.Context, sessionID string, keys []string) error
}
