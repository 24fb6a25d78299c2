// Package objectstore abstracts retrieval of uploaded batch objects.
//
// The pipeline only ever needs to fetch one object's bytes per notification,
// so the interface is a single Get. Concrete backends live in subpackages
// (objectstore/fs).
package objectstore

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates the object does not exist in the store.
	ErrNotFound = errors.New("object not found")

	// ErrAccessDenied indicates the store refused access to the object.
	ErrAccessDenied = errors.New("access denied")
)

// Reader fetches the raw content of one stored object.
// Implementations must be thread-safe for concurrent use.
type Reader interface {
	// Get returns the full content of the object under bucket/key.
	// Returns ErrNotFound or ErrAccessDenied (possibly wrapped) on the
	// corresponding store failures.
	Get(ctx context.Context, bucket, key string) ([]byte, error)
}
