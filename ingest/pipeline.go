package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/readnext/ai"
	"github.com/poiesic/readnext/catalog"
	"github.com/poiesic/readnext/core"
	"github.com/poiesic/readnext/corpus"
	"github.com/poiesic/readnext/storage"
	"github.com/poiesic/readnext/storage/badger"
)

const defaultBatchSize = 32

// Pipeline performs the one-time startup build: loading the catalog into the
// book repository and embedding the tagged description corpus into the
// description index. Embedding runs concurrently on a worker pool; everything
// else is sequential.
type Pipeline struct {
	books     storage.BookRepository
	descs     storage.DescriptionRepository
	cache     storage.EmbeddingCache
	embedder  ai.Embedder
	pool      *ants.Pool
	batchSize int
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many descriptions are embedded per provider call.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithEmbeddingCache sets a cache for computed embeddings so rebuilds skip
// provider calls for unchanged descriptions. Default is no cache.
func WithEmbeddingCache(cache storage.EmbeddingCache) Option {
	return func(p *Pipeline) error {
		p.cache = cache
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new startup pipeline.
func NewPipeline(
	books storage.BookRepository,
	descs storage.DescriptionRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Pipeline, error) {
	if books == nil {
		return nil, ErrBookRepositoryRequired
	}
	if descs == nil {
		return nil, ErrDescriptionRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		books:     books,
		descs:     descs,
		embedder:  provider.Embedder(),
		pool:      pool,
		batchSize: defaultBatchSize,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Release frees the worker pool. The pipeline must not be used afterwards.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// LoadCatalog parses catalog CSV rows and stores them in the book repository.
// Returns the number of records loaded. Any parse failure aborts the load.
func (p *Pipeline) LoadCatalog(ctx context.Context, r io.Reader) (int, error) {
	records, err := catalog.Load(r)
	if err != nil {
		p.logger.Error("catalog load failed", "err", err)
		return 0, err
	}

	if err := p.books.PutBooks(ctx, records...); err != nil {
		p.logger.Error("storing catalog records failed", "err", err)
		return 0, err
	}

	p.logger.Info("catalog loaded", "records", len(records))
	return len(records), nil
}

// IndexDescriptions parses the tagged description corpus, embeds every entry,
// and stores the result in the description index. Returns the number of
// entries indexed. A provider failure aborts the build; the index is unusable
// without it.
func (p *Pipeline) IndexDescriptions(ctx context.Context, r io.Reader) (int, error) {
	entries, err := corpus.Load(r)
	if err != nil {
		p.logger.Error("corpus load failed", "err", err)
		return 0, err
	}
	if len(entries) == 0 {
		p.logger.Warn("corpus is empty, description index will have no entries")
		return 0, nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for start := 0; start < len(entries); start += p.batchSize {
		end := start + p.batchSize
		if end > len(entries) {
			end = len(entries)
		}
		batch := entries[start:end]

		wg.Add(1)
		if err := p.pool.Submit(func() {
			defer wg.Done()
			if err := p.embedBatch(ctx, batch); err != nil {
				fail(err)
			}
		}); err != nil {
			wg.Done()
			fail(err)
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return 0, fmt.Errorf("building description index: %w", firstErr)
	}

	p.logger.Info("description index built", "entries", len(entries))
	return len(entries), nil
}

// embedBatch fills in vectors for one batch of entries and stores them.
// Cached embeddings are reused; only cache misses hit the provider.
func (p *Pipeline) embedBatch(ctx context.Context, batch []*core.DescriptionEntry) error {
	missing := make([]int, 0, len(batch))
	for i, entry := range batch {
		if vector, ok := p.cachedVector(ctx, entry.Text); ok {
			entry.Vector = vector
			continue
		}
		missing = append(missing, i)
	}

	if len(missing) > 0 {
		texts := make([]string, len(missing))
		for i, idx := range missing {
			texts[i] = batch[idx].Text
		}

		vectors, err := p.embedder.EmbedTexts(ctx, texts)
		if err != nil {
			return err
		}
		if len(vectors) != len(texts) {
			return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(texts), len(vectors))
		}

		for i, idx := range missing {
			entry := batch[idx]
			entry.Vector = badger.NormalizeVector(vectors[i])
			if p.cache != nil {
				if err := p.cache.PutEmbedding(ctx, core.FingerprintOf(entry.Text), entry.Vector); err != nil {
					p.logger.Warn("failed to cache embedding", "isbn", entry.ISBN, "err", err)
				}
			}
		}
	}

	return p.descs.AddEntries(ctx, batch...)
}

func (p *Pipeline) cachedVector(ctx context.Context, text string) ([]float32, bool) {
	if p.cache == nil {
		return nil, false
	}
	vector, err := p.cache.GetEmbedding(ctx, core.FingerprintOf(text))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			p.logger.Warn("embedding cache read failed", "err", err)
		}
		return nil, false
	}
	return vector, true
}
