package storage

import (
	"context"

	"github.com/poiesic/carelog/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// Close closes the repository and releases resources.
	Close() error
}

// TriageRepository provides operations for persisted triage items.
type TriageRepository interface {
	Repository

	// PutTriageItems writes the items in one logical batch, chunked
	// internally if the backend enforces a per-request item limit.
	// The write is all-or-nothing: on error no durability may be assumed.
	PutTriageItems(ctx context.Context, items ...*core.TriageItem) error

	// GetTriageItem retrieves one item by its (batch, record) composite key.
	// Returns ErrNotFound if the item doesn't exist.
	GetTriageItem(ctx context.Context, batchID string, recordID core.ID) (*core.TriageItem, error)

	// GetTriageItemsByBatch retrieves all items persisted for a batch,
	// ordered by key.
	GetTriageItemsByBatch(ctx context.Context, batchID string) ([]*core.TriageItem, error)
}

// DigestRepository provides operations for persisted client digests.
type DigestRepository interface {
	Repository

	// PutClientDigests writes the digests in one logical batch, chunked
	// internally if the backend enforces a per-request item limit.
	PutClientDigests(ctx context.Context, digests ...*core.ClientDigest) error

	// GetClientDigest retrieves one digest by its (batch, client) composite key.
	// Returns ErrNotFound if the digest doesn't exist.
	GetClientDigest(ctx context.Context, batchID string, clientID core.ID) (*core.ClientDigest, error)

	// GetClientDigestsByBatch retrieves all digests persisted for a batch,
	// ordered by key.
	GetClientDigestsByBatch(ctx context.Context, batchID string) ([]*core.ClientDigest, error)
}
