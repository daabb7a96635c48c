package badger

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/readnext/core"
	"github.com/poiesic/readnext/storage"
)

// BookRepository implements storage.BookRepository on BadgerDB.
type BookRepository struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.BookRepository = (*BookRepository)(nil)

// NewBookRepository creates a catalog repository on the given backend.
func NewBookRepository(backend *Backend) (*BookRepository, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &BookRepository{
		backend: backend,
		logger:  slog.Default().With("component", "book-repository"),
	}, nil
}

// PutBooks stores catalog records, replacing any existing record per ISBN.
func (r *BookRepository) PutBooks(ctx context.Context, records ...*core.BookRecord) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			if err := core.ValidateBookRecord(record); err != nil {
				return err
			}
			if err := tx.Set(makeBookKey(record.ISBN), storage.MarshalBookRecord(record)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetBook retrieves a single record by ISBN.
func (r *BookRepository) GetBook(ctx context.Context, isbn core.ISBN) (*core.BookRecord, error) {
	var record *core.BookRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeBookKey(isbn))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			record, err = storage.UnmarshalBookRecord(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// GetBooks retrieves records for the given ISBNs, preserving input order.
// Duplicates collapse to the first occurrence; ISBNs with no catalog row are
// silently omitted.
func (r *BookRepository) GetBooks(ctx context.Context, isbns ...core.ISBN) ([]*core.BookRecord, error) {
	records := make([]*core.BookRecord, 0, len(isbns))
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		seen := make(map[core.ISBN]bool, len(isbns))
		for _, isbn := range isbns {
			if seen[isbn] {
				continue
			}
			seen[isbn] = true

			item, err := tx.Get(makeBookKey(isbn))
			if errors.Is(err, badger.ErrKeyNotFound) {
				r.logger.Debug("isbn not in catalog, dropping", "isbn", isbn)
				continue
			}
			if err != nil {
				return err
			}

			var record *core.BookRecord
			err = item.Value(func(val []byte) error {
				record, err = storage.UnmarshalBookRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Categories returns the sorted set of distinct category values present.
// Empty categories are skipped.
func (r *BookRepository) Categories(ctx context.Context) ([]string, error) {
	set := make(map[string]bool)
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(bookRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				record, err := storage.UnmarshalBookRecord(val)
				if err != nil {
					return err
				}
				if record.Category != "" {
					set[record.Category] = true
				}
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

	categories := make([]string, 0, len(set))
	for category := range set {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories, nil
}

// Close releases repository resources. The shared backend is closed by its owner.
func (r *BookRepository) Close() error {
	return nil
}
