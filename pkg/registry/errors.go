package registry

import "errors"

var (
	// ErrNotFound indicates a device is not in the store.
	ErrNotFound = errors.New("device not found")
)
