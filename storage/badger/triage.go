package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/carelog/core"
	"github.com/poiesic/carelog/storage"
)

// PutChunkSize is the per-transaction item limit for batch writes. Larger
// batches are split into consecutive transactions of at most this many items.
const PutChunkSize = 25

// TriageRepository implements storage.TriageRepository for BadgerDB.
type TriageRepository struct {
	backend *Backend
}

var _ storage.TriageRepository = (*TriageRepository)(nil)

// NewTriageRepository creates a new TriageRepository.
func NewTriageRepository(backend *Backend) *TriageRepository {
	return &TriageRepository{backend: backend}
}

// Close is a no-op; the backend owns the database handle.
func (r *TriageRepository) Close() error {
	return nil
}

// PutTriageItems writes the items in chunks of PutChunkSize, one transaction
// per chunk. An error aborts the remaining chunks; chunks already committed
// stay durable, so callers must treat any error as total failure of the call.
func (r *TriageRepository) PutTriageItems(ctx context.Context, items ...*core.TriageItem) error {
	for start := 0; start < len(items); start += PutChunkSize {
		end := min(start+PutChunkSize, len(items))

		err := r.backend.WithTx(func(tx *badger.Txn) error {
			for _, item := range items[start:end] {
				key := makeTriageKey(item.BatchID, item.RecordID)
				if err := tx.Set(key, storage.MarshalTriageItem(item)); err != nil {
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

// GetTriageItem retrieves one item by its (batch, record) composite key.
func (r *TriageRepository) GetTriageItem(ctx context.Context, batchID string, recordID core.ID) (*core.TriageItem, error) {
	var item *core.TriageItem

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		entry, err := tx.Get(makeTriageKey(batchID, recordID))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return entry.Value(func(val []byte) error {
			item, err = storage.UnmarshalTriageItem(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}

	return item, nil
}

// GetTriageItemsByBatch retrieves all items persisted for a batch, ordered by key.
func (r *TriageRepository) GetTriageItemsByBatch(ctx context.Context, batchID string) ([]*core.TriageItem, error) {
	var items []*core.TriageItem

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeTriageBatchPrefix(batchID)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				item, err := storage.UnmarshalTriageItem(val)
				if err != nil {
					return err
				}
				items = append(items, item)
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

	return items, nil
}
