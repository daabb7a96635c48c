package storage

import (
	"context"

	"github.com/poiesic/readnext/core"
)

// BookRepository provides metadata lookup over the book catalog.
// Implementations must be thread-safe and support concurrent reads; after
// startup the catalog is never written again.
type BookRepository interface {
	// PutBooks stores one or more catalog records. A record with an ISBN
	// already present replaces the previous record.
	PutBooks(ctx context.Context, records ...*core.BookRecord) error

	// GetBook retrieves a single record by ISBN.
	// Returns ErrNotFound if the record doesn't exist.
	GetBook(ctx context.Context, isbn core.ISBN) (*core.BookRecord, error)

	// GetBooks retrieves records for the given ISBNs, preserving the input
	// order. Duplicate ISBNs collapse to their first occurrence and ISBNs
	// with no catalog row are silently omitted (no error for misses).
	GetBooks(ctx context.Context, isbns ...core.ISBN) ([]*core.BookRecord, error)

	// Categories returns the sorted set of distinct category values present.
	Categories(ctx context.Context) ([]string, error)

	// Close closes the repository and releases resources.
	Close() error
}

// DescriptionRepository is the nearest-neighbor search index over embedded
// book descriptions. Entries are written once during the startup build and
// are read-only afterwards.
type DescriptionRepository interface {
	// AddEntries stores embedded description entries. Entries must carry a
	// unit-normalized vector; an entry without a vector is rejected.
	AddEntries(ctx context.Context, entries ...*core.DescriptionEntry) error

	// FindSimilar returns up to limit entries most similar to the query
	// vector, most similar first. Ties break deterministically on ISBN.
	FindSimilar(ctx context.Context, vector []float32, limit int) ([]*core.Match, error)

	// Count returns the number of stored entries.
	Count(ctx context.Context) (int, error)

	// Close closes the repository and releases resources.
	Close() error
}

// EmbeddingCache stores computed embedding vectors keyed by a content
// fingerprint, so rebuilding the index skips provider calls for texts that
// have not changed. The cache must be cleared when the embedding model
// changes; fingerprints cover content only.
type EmbeddingCache interface {
	// GetEmbedding retrieves a cached vector.
	// Returns ErrNotFound on a cache miss.
	GetEmbedding(ctx context.Context, fp core.Fingerprint) ([]float32, error)

	// PutEmbedding stores a vector under the fingerprint.
	PutEmbedding(ctx context.Context, fp core.Fingerprint, vector []float32) error

	// Close closes the cache and releases resources.
	Close() error
}
