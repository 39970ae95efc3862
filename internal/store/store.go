// Package store provides the persistence gateway: an opaque key-value
// store the session uses to durably save and load the whole project tree
// as a single serialized blob under a fixed key.
package store

import (
	"context"
)

// Store defines the interface for the persistence gateway.
type Store interface {
	// Get returns the value stored under key. A missing key is not an
	// error; it reports found == false.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// Close releases the underlying resources.
	Close() error
}
