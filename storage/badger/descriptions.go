package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/readnext/core"
	"github.com/poiesic/readnext/storage"
)

// DescriptionRepository implements storage.DescriptionRepository on BadgerDB.
// Similarity search is a brute-force cosine scan over all stored entries,
// which is plenty for a catalog of a few thousand descriptions.
type DescriptionRepository struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.DescriptionRepository = (*DescriptionRepository)(nil)

// NewDescriptionRepository creates a description index on the given backend.
func NewDescriptionRepository(backend *Backend) (*DescriptionRepository, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &DescriptionRepository{
		backend: backend,
		logger:  slog.Default().With("component", "description-repository"),
	}, nil
}

// AddEntries stores embedded description entries. Vectors are expected to be
// unit-normalized already; an entry without a vector is rejected.
func (r *DescriptionRepository) AddEntries(ctx context.Context, entries ...*core.DescriptionEntry) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			if err := core.ValidateDescriptionEntry(entry); err != nil {
				return err
			}
			if len(entry.Vector) == 0 {
				return fmt.Errorf("%w: isbn %d", storage.ErrMissingVector, entry.ISBN)
			}
			if err := tx.Set(makeDescriptionKey(entry.ISBN), storage.MarshalDescriptionEntry(entry)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// FindSimilar returns up to limit entries most similar to the query vector.
// Results are ordered by descending cosine similarity; equal scores break
// deterministically on ascending ISBN.
func (r *DescriptionRepository) FindSimilar(ctx context.Context, vector []float32, limit int) ([]*core.Match, error) {
	var matches []*core.Match

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(descriptionPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				entry, err := storage.UnmarshalDescriptionEntry(val)
				if err != nil {
					return err
				}
				if len(entry.Vector) == 0 {
					return nil
				}
				matches = append(matches, &core.Match{
					ISBN:  entry.ISBN,
					Score: dotProduct(vector, entry.Vector),
				})
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

	slices.SortFunc(matches, func(a, b *core.Match) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		if a.ISBN < b.ISBN {
			return -1
		}
		if a.ISBN > b.ISBN {
			return 1
		}
		return 0
	})

	if limit >= 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}

// Count returns the number of stored entries.
func (r *DescriptionRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(descriptionPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Close releases repository resources. The shared backend is closed by its owner.
func (r *DescriptionRepository) Close() error {
	return nil
}
