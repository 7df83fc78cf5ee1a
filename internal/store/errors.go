package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned when a lookup targets a key that has never
	// been written (or has been cleared).
	ErrKeyNotFound = errors.New("key not found in local store")
)
