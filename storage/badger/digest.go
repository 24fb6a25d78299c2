package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/carelog/core"
	"github.com/poiesic/carelog/storage"
)

// DigestRepository implements storage.DigestRepository for BadgerDB.
type DigestRepository struct {
	backend *Backend
}

var _ storage.DigestRepository = (*DigestRepository)(nil)

// NewDigestRepository creates a new DigestRepository.
func NewDigestRepository(backend *Backend) *DigestRepository {
	return &DigestRepository{backend: backend}
}

// Close is a no-op; the backend owns the database handle.
func (r *DigestRepository) Close() error {
	return nil
}

// PutClientDigests writes the digests in chunks of PutChunkSize, one
// transaction per chunk.
func (r *DigestRepository) PutClientDigests(ctx context.Context, digests ...*core.ClientDigest) error {
	for start := 0; start < len(digests); start += PutChunkSize {
		end := min(start+PutChunkSize, len(digests))

		err := r.backend.WithTx(func(tx *badger.Txn) error {
			for _, digest := range digests[start:end] {
				key := makeDigestKey(digest.BatchID, digest.ClientID)
				if err := tx.Set(key, storage.MarshalClientDigest(digest)); err != nil {
					return err
				}
			}
			return tx.Commit()
		}, true)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetClientDigest retrieves one digest by its (batch, client) composite key.
func (r *DigestRepository) GetClientDigest(ctx context.Context, batchID string, clientID core.ID) (*core.ClientDigest, error) {
	var digest *core.ClientDigest

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		entry, err := tx.Get(makeDigestKey(batchID, clientID))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return entry.Value(func(val []byte) error {
			digest, err = storage.UnmarshalClientDigest(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}

	return digest, nil
}

// GetClientDigestsByBatch retrieves all digests persisted for a batch, ordered by key.
func (r *DigestRepository) GetClientDigestsByBatch(ctx context.Context, batchID string) ([]*core.ClientDigest, error) {
	var digests []*core.ClientDigest

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeDigestBatchPrefix(batchID)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				digest, err := storage.UnmarshalClientDigest(val)
				if err != nil {
					return err
				}
				digests = append(digests, digest)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return digests, nil
}
