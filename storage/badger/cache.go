package badger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/readnext/core"
	"github.com/poiesic/readnext/storage"
)

// EmbeddingCache implements storage.EmbeddingCache on BadgerDB.
// Vectors are keyed by a BLAKE2b fingerprint of the embedded text, so a
// rebuild only pays for descriptions that actually changed.
type EmbeddingCache struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.EmbeddingCache = (*EmbeddingCache)(nil)

// NewEmbeddingCache creates an embedding cache on the given backend.
func NewEmbeddingCache(backend *Backend) (*EmbeddingCache, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &EmbeddingCache{
		backend: backend,
		logger:  slog.Default().With("component", "embedding-cache"),
	}, nil
}

// GetEmbedding retrieves a cached vector, or storage.ErrNotFound on a miss.
func (c *EmbeddingCache) GetEmbedding(ctx context.Context, fp core.Fingerprint) ([]float32, error) {
	var vector []float32
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeEmbeddingKey(fp))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			vector, err = storage.UnmarshalVector(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return vector, nil
}

// PutEmbedding stores a vector under the fingerprint.
func (c *EmbeddingCache) PutEmbedding(ctx context.Context, fp core.Fingerprint, vector []float32) error {
	value := storage.MarshalVector(vector)
	return c.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeEmbeddingKey(fp), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Close releases cache resources. The shared backend is closed by its owner.
func (c *EmbeddingCache) Close() error {
	return nil
}
